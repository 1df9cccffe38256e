// Package extract recovers teams, sport and raw context from free-form text.
package extract

import (
	"regexp"
	"strings"

	"github.com/Alias1177/NumerIA/models"
)

// separator is a standalone "vs" token, optionally followed by a period.
// It must be a whole word: the "vs" inside "Navstar" never splits a name.
var separator = regexp.MustCompile(`(?i)\bvs\b\.?`)

// Entities splits the text on the first separator occurrence into two team
// names and picks up the sport the gateway detected. Later separators stay
// embedded in team2 verbatim. MainPlayer is reserved for a future DataMind
// field and stays empty.
func Entities(text string, pred models.PredictionResult) models.SportContext {
	sc := models.SportContext{
		Sport:   "unknown",
		RawText: text,
	}
	if sport := pred.Sport(); sport != "" {
		sc.Sport = sport
	}

	trimmed := strings.TrimSpace(text)
	if loc := separator.FindStringIndex(trimmed); loc != nil {
		team1 := strings.TrimSpace(trimmed[:loc[0]])
		team2 := strings.TrimSpace(trimmed[loc[1]:])
		if team1 != "" && team2 != "" {
			sc.Team1Name = team1
			sc.Team2Name = team2
		}
	}

	return sc
}
