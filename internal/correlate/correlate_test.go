package correlate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/NumerIA/models"
)

func TestFindRepeatedValue(t *testing.T) {
	// team1 contributes 5, 5, 7, 2 — the repeated 5 must win and both
	// occurrences must be reported in encounter order.
	gematria := map[string]models.GematriaEntry{
		models.RoleTeam1: {
			Name:                 "Stub",
			Ordinal:              5,
			FullReduction:        5,
			ReverseOrdinal:       7,
			ReverseFullReduction: 2,
		},
	}

	result := Find(models.DateNumerology{}, gematria, models.PredictionResult{})
	require.Len(t, result.PrimaryCorrelations, 1)

	corr := result.PrimaryCorrelations[0]
	assert.Equal(t, 5, corr.Number)
	require.Len(t, corr.Matches, 2)
	assert.Equal(t, models.CorrelationMatch{Source: models.RoleTeam1, Mode: models.ModeOrdinal, Value: 5}, corr.Matches[0])
	assert.Equal(t, models.CorrelationMatch{Source: models.RoleTeam1, Mode: models.ModeFullReduction, Value: 5}, corr.Matches[1])
	assert.Contains(t, corr.Explanation, "El número 5")
}

func TestFindDateSignalsParticipate(t *testing.T) {
	gematria := map[string]models.GematriaEntry{
		models.RoleTeam1: {Ordinal: 23, FullReduction: 5, ReverseOrdinal: 31, ReverseFullReduction: 4},
	}
	date := models.DateNumerology{Reduced: 5, DayOfYearReduced: 9}

	result := Find(date, gematria, models.PredictionResult{})
	require.Len(t, result.PrimaryCorrelations, 1)

	corr := result.PrimaryCorrelations[0]
	assert.Equal(t, 5, corr.Number)
	require.Len(t, corr.Matches, 2)
	assert.Equal(t, models.RoleTeam1, corr.Matches[0].Source)
	assert.Equal(t, "date_reduced", corr.Matches[1].Source)
}

func TestFindTieKeepsFirstEncountered(t *testing.T) {
	tests := []struct {
		name     string
		gematria map[string]models.GematriaEntry
		date     models.DateNumerology
		expected int
	}{
		{
			name: "contiguous pairs",
			// Two pairs with the same count: 3 appears before 7, so 3 wins.
			gematria: map[string]models.GematriaEntry{
				models.RoleTeam1: {Ordinal: 3, FullReduction: 3, ReverseOrdinal: 7, ReverseFullReduction: 7},
			},
			expected: 3,
		},
		{
			name: "interleaved pairs",
			// Signals collect as [12, 3, 42, 6, 16, 7, 38, 2, 7, 3]:
			// 3 and 7 both occur twice, but 7 completes its pair first.
			// 3 is encountered first, so 3 must still win.
			gematria: map[string]models.GematriaEntry{
				models.RoleTeam1: {Ordinal: 12, FullReduction: 3, ReverseOrdinal: 42, ReverseFullReduction: 6},
				models.RoleTeam2: {Ordinal: 16, FullReduction: 7, ReverseOrdinal: 38, ReverseFullReduction: 2},
			},
			date:     models.DateNumerology{Reduced: 7, DayOfYearReduced: 3},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Find(tt.date, tt.gematria, models.PredictionResult{})
			require.Len(t, result.PrimaryCorrelations, 1)
			assert.Equal(t, tt.expected, result.PrimaryCorrelations[0].Number)
		})
	}
}

func TestFindSingleOccurrenceStillReported(t *testing.T) {
	date := models.DateNumerology{Reduced: 8}

	result := Find(date, nil, models.PredictionResult{})
	require.Len(t, result.PrimaryCorrelations, 1)
	corr := result.PrimaryCorrelations[0]
	assert.Equal(t, 8, corr.Number)
	require.Len(t, corr.Matches, 1)
	assert.Equal(t, "date_reduced", corr.Matches[0].Source)
}

func TestFindNoSignals(t *testing.T) {
	result := Find(models.DateNumerology{}, nil, models.PredictionResult{})
	assert.Empty(t, result.PrimaryCorrelations)
}

func TestFindRoleOrderIsStable(t *testing.T) {
	// team2's value must always be collected after team1's, map iteration
	// order notwithstanding.
	gematria := map[string]models.GematriaEntry{
		models.RoleTeam2: {Ordinal: 9, FullReduction: 9, ReverseOrdinal: 18, ReverseFullReduction: 9},
		models.RoleTeam1: {Ordinal: 4, FullReduction: 4, ReverseOrdinal: 23, ReverseFullReduction: 5},
	}

	for i := 0; i < 20; i++ {
		result := Find(models.DateNumerology{}, gematria, models.PredictionResult{})
		require.Len(t, result.PrimaryCorrelations, 1)
		// team1's pair of 4s comes first in collection order, so the tie
		// between 4 (x2) and 9 (x3) resolves by count: 9 wins outright.
		assert.Equal(t, 9, result.PrimaryCorrelations[0].Number)
	}
}
