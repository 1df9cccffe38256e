// Package gematria maps names to integers under four fixed encoding schemes:
// ascending letter value, descending letter value, and the digit reduction of
// each. Deterministic encodings, not occult numerology.
package gematria

import (
	"github.com/Alias1177/NumerIA/internal/numerology"
	"github.com/Alias1177/NumerIA/models"
)

// Encode computes the four encodings of a name. Non-alphabetic runes are
// discarded and case is folded, so an empty or all-symbol name yields zeros.
func Encode(name string) models.GematriaEntry {
	var ordinal, reverse int
	for _, r := range name {
		pos := letterPos(r)
		if pos == 0 {
			continue
		}
		ordinal += pos
		// a=26 .. z=1, so pos + reverse pos is always 27
		reverse += 27 - pos
	}

	return models.GematriaEntry{
		Name:                 name,
		Ordinal:              ordinal,
		FullReduction:        numerology.Reduce(ordinal),
		ReverseOrdinal:       reverse,
		ReverseFullReduction: numerology.Reduce(reverse),
	}
}

// letterPos returns the 1-based alphabet position of r, or 0 for anything
// outside a-z / A-Z.
func letterPos(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 1
	}
	return 0
}

// Summarize encodes every named entity present in the context, keyed by role.
// Roles with an empty name are left out entirely.
func Summarize(sc models.SportContext) map[string]models.GematriaEntry {
	names := map[string]string{
		models.RoleTeam1:  sc.Team1Name,
		models.RoleTeam2:  sc.Team2Name,
		models.RolePlayer: sc.MainPlayer,
	}

	summary := make(map[string]models.GematriaEntry)
	for _, role := range models.RoleOrder {
		if name := names[role]; name != "" {
			summary[role] = Encode(name)
		}
	}
	return summary
}
