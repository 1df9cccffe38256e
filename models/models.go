package models

// Role labels for the named entities a reading can cover.
const (
	RoleTeam1  = "team1"
	RoleTeam2  = "team2"
	RolePlayer = "player"
)

// RoleOrder fixes the iteration order everywhere a gematria map is consumed.
// Correlation output depends on it.
var RoleOrder = []string{RoleTeam1, RoleTeam2, RolePlayer}

// Gematria mode labels used in correlation matches.
const (
	ModeOrdinal              = "ordinal"
	ModeFullReduction        = "full_reduction"
	ModeReverseOrdinal       = "reverse_ordinal"
	ModeReverseFullReduction = "reverse_full_reduction"
)

// PredictionResult is the normalized payload from the DataMind gateway.
// It is always constructible: when the gateway is unreachable or returns
// garbage, Fallback builds a degraded but valid value.
type PredictionResult struct {
	Prediction string         `json:"prediction"`
	Confidence float64        `json:"confidence"`
	Market     string         `json:"market,omitempty"`
	Extra      map[string]any `json:"extra"`
}

// Fallback builds the degraded PredictionResult used when DataMind cannot
// serve a real one. The note ends up in extra and is shown to nobody but us.
func Fallback(text, note string) PredictionResult {
	return PredictionResult{
		Prediction: "Base para: " + text,
		Confidence: 0.5,
		Market:     "general",
		Extra:      map[string]any{"note": note},
	}
}

// Sport reads extra.sport when the gateway supplied one.
func (p PredictionResult) Sport() string {
	if s, ok := p.Extra["sport"].(string); ok && s != "" {
		return s
	}
	return ""
}

// SuggestedMarkets reads extra.suggested_markets, tolerating both []string
// and the []any a generic JSON decode produces.
func (p PredictionResult) SuggestedMarkets() []string {
	switch v := p.Extra["suggested_markets"].(type) {
	case []string:
		return v
	case []any:
		var markets []string
		for _, m := range v {
			if s, ok := m.(string); ok {
				markets = append(markets, s)
			}
		}
		return markets
	}
	return nil
}

// AvgGoalsH2H reads extra.avg_goals_h2h if present.
func (p PredictionResult) AvgGoalsH2H() (float64, bool) {
	switch v := p.Extra["avg_goals_h2h"].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// WinnerText reads extra.winner_text if present.
func (p PredictionResult) WinnerText() string {
	if s, ok := p.Extra["winner_text"].(string); ok {
		return s
	}
	return ""
}

// DateNumerology carries every numeric signal derived from one calendar date.
// Computed fresh per request, never persisted.
type DateNumerology struct {
	DateStr          string `json:"date_str"`
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	Day              int    `json:"day"`
	BaseSum          int    `json:"base_sum"`
	Reduced          int    `json:"reduced"`
	DayOfYear        int    `json:"day_of_year"`
	DayOfYearReduced int    `json:"day_of_year_reduced"`
	DaysLeftInYear   int    `json:"days_left_in_year"`
}

// GematriaEntry holds the four encodings of one name.
type GematriaEntry struct {
	Name                 string `json:"name"`
	Ordinal              int    `json:"ordinal"`
	FullReduction        int    `json:"full_reduction"`
	ReverseOrdinal       int    `json:"reverse_ordinal"`
	ReverseFullReduction int    `json:"reverse_full_reduction"`
}

// SportContext is what the extractor recovers from the inbound text plus the
// prediction's extra field. Empty string means "not detected".
type SportContext struct {
	Sport      string `json:"sport"`
	Team1Name  string `json:"team1_name,omitempty"`
	Team2Name  string `json:"team2_name,omitempty"`
	MainPlayer string `json:"main_player,omitempty"`
	RawText    string `json:"raw_text"`
}

// HasTeams reports whether both team names were detected.
func (s SportContext) HasTeams() bool {
	return s.Team1Name != "" && s.Team2Name != ""
}

// CorrelationMatch is one labeled numeric signal that hit the highlighted value.
type CorrelationMatch struct {
	Source string `json:"source"`
	Mode   string `json:"mode"`
	Value  int    `json:"value"`
}

// Correlation names the most frequent value across all collected signals and
// every signal that produced it.
type Correlation struct {
	Number      int                `json:"number"`
	Matches     []CorrelationMatch `json:"matches"`
	Explanation string             `json:"explanation"`
}

// CorrelationResult is empty when there were no numeric signals at all.
type CorrelationResult struct {
	PrimaryCorrelations []Correlation `json:"primary_correlations"`
}

// DigitMeaning is one row of the digit → archetype lookup table the
// formatter renders from.
type DigitMeaning struct {
	Archetype string `json:"archetype"`
	Message   string `json:"message"`
}
