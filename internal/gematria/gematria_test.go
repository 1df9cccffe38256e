package gematria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alias1177/NumerIA/models"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		ordinal int
		fullRed int
		reverse int
		revRed  int
	}{
		{name: "empty", input: "", ordinal: 0, fullRed: 0, reverse: 0, revRed: 0},
		{name: "non alphabetic", input: "123 !?", ordinal: 0, fullRed: 0, reverse: 0, revRed: 0},
		{name: "abc", input: "abc", ordinal: 6, fullRed: 6, reverse: 75, revRed: 3},
		{name: "mixed case", input: "AbC", ordinal: 6, fullRed: 6, reverse: 75, revRed: 3},
		{name: "liverpool", input: "Liverpool", ordinal: 124, fullRed: 7, reverse: 119, revRed: 2},
		{name: "spaces and accents ignored", input: "Real Madrid", ordinal: 85, fullRed: 4, reverse: 185, revRed: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input)
			assert.Equal(t, tt.input, got.Name)
			assert.Equal(t, tt.ordinal, got.Ordinal)
			assert.Equal(t, tt.fullRed, got.FullReduction)
			assert.Equal(t, tt.reverse, got.ReverseOrdinal)
			assert.Equal(t, tt.revRed, got.ReverseFullReduction)
		})
	}
}

func TestEncodeMirrorInvariant(t *testing.T) {
	// Each letter contributes pos + (27-pos), so ordinal + reverse must be
	// 27 times the alphabetic length.
	tests := []struct {
		input   string
		letters int
	}{
		{"Barcelona", 9},
		{"Manchester City", 14},
		{"a", 1},
		{"vs. 2-1!", 2},
	}

	for _, tt := range tests {
		got := Encode(tt.input)
		assert.Equal(t, 27*tt.letters, got.Ordinal+got.ReverseOrdinal, "input %q", tt.input)
	}
}

func TestSummarize(t *testing.T) {
	sc := models.SportContext{
		Team1Name: "Liverpool",
		Team2Name: "City",
	}

	summary := Summarize(sc)
	assert.Len(t, summary, 2)
	assert.Equal(t, Encode("Liverpool"), summary[models.RoleTeam1])
	assert.Equal(t, Encode("City"), summary[models.RoleTeam2])
	_, ok := summary[models.RolePlayer]
	assert.False(t, ok, "empty player must not be encoded")
}

func TestSummarizeEmptyContext(t *testing.T) {
	assert.Empty(t, Summarize(models.SportContext{RawText: "hola"}))
}
