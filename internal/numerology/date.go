package numerology

import (
	"time"

	"github.com/Alias1177/NumerIA/models"
)

// ForDate derives every numeric signal NumerIA reads from a calendar date.
// The base sum adds the three calendar fields as numbers, it is not a digit
// sum of the formatted date.
func ForDate(t time.Time) models.DateNumerology {
	year, month, day := t.Date()

	baseSum := year + int(month) + day
	dayOfYear := t.YearDay()

	return models.DateNumerology{
		DateStr:          t.Format("2006-01-02"),
		Year:             year,
		Month:            int(month),
		Day:              day,
		BaseSum:          baseSum,
		Reduced:          Reduce(baseSum),
		DayOfYear:        dayOfYear,
		DayOfYearReduced: Reduce(dayOfYear),
		DaysLeftInYear:   daysInYear(year) - dayOfYear,
	}
}

// daysInYear applies the Gregorian leap rule: divisible by 4, except
// centuries unless divisible by 400.
func daysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}
