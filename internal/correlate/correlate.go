// Package correlate looks for the numeric value that recurs across
// independently computed signals: name encodings on one side, date
// numerology on the other.
package correlate

import (
	"fmt"

	"github.com/Alias1177/NumerIA/models"
)

// Source labels for the date-derived signals.
const (
	sourceDateReduced      = "date_reduced"
	sourceDayOfYearReduced = "day_of_year_reduced"
	modeReduction          = "reduction"
)

// Find collects every numeric signal in a fixed order (roles × modes, then
// the two date reductions), highlights the most frequent value and reports
// each signal that produced it. Ties go to the value encountered first, so
// the collection order is part of the contract. A value occurring once is
// still reported; only an empty signal set yields an empty result.
func Find(date models.DateNumerology, gematria map[string]models.GematriaEntry, _ models.PredictionResult) models.CorrelationResult {
	var signals []models.CorrelationMatch

	add := func(source, mode string, value int) {
		if value != 0 {
			signals = append(signals, models.CorrelationMatch{Source: source, Mode: mode, Value: value})
		}
	}

	for _, role := range models.RoleOrder {
		entry, ok := gematria[role]
		if !ok {
			continue
		}
		add(role, models.ModeOrdinal, entry.Ordinal)
		add(role, models.ModeFullReduction, entry.FullReduction)
		add(role, models.ModeReverseOrdinal, entry.ReverseOrdinal)
		add(role, models.ModeReverseFullReduction, entry.ReverseFullReduction)
	}

	add(sourceDateReduced, modeReduction, date.Reduced)
	add(sourceDayOfYearReduced, modeReduction, date.DayOfYearReduced)

	top, ok := mostCommon(signals)
	if !ok {
		return models.CorrelationResult{}
	}

	var involved []models.CorrelationMatch
	for _, s := range signals {
		if s.Value == top {
			involved = append(involved, s)
		}
	}

	return models.CorrelationResult{
		PrimaryCorrelations: []models.Correlation{
			{
				Number:  top,
				Matches: involved,
				Explanation: fmt.Sprintf(
					"El número %d aparece repetido en la combinación de nombres/fecha. "+
						"Cuando un mismo número se repite en equipos/jugador y fecha, se interpreta "+
						"como un patrón numérico relevante que refuerza la lectura estadística.",
					top,
				),
			},
		},
	}
}

// mostCommon returns the most frequent value; ties go to the value first
// encountered in signal order.
func mostCommon(signals []models.CorrelationMatch) (int, bool) {
	if len(signals) == 0 {
		return 0, false
	}

	counts := make(map[int]int, len(signals))
	maxCount := 0
	for _, s := range signals {
		counts[s.Value]++
		if counts[s.Value] > maxCount {
			maxCount = counts[s.Value]
		}
	}

	for _, s := range signals {
		if counts[s.Value] == maxCount {
			return s.Value, true
		}
	}
	return 0, false
}
