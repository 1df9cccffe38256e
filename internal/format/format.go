// Package format assembles the final NumerIA reply from the pipeline's
// intermediate results. Pure text composition: no I/O, no failure mode. A
// block whose backing data is absent is dropped from the join, never left as
// a gap.
package format

import (
	"fmt"
	"strings"

	"github.com/Alias1177/NumerIA/models"
)

// Disclaimer closes every reading, verbatim and unconditional.
const Disclaimer = "⚠️ *Aviso:* NumerIA utiliza datos reales, estadística avanzada y análisis numérico, " +
	"pero ningún modelo puede garantizar resultados. Usa esta información como guía inteligente."

// Formatter renders the six reply blocks. Meanings is data, not behavior:
// swapping the table changes the archetype line and nothing else.
type Formatter struct {
	Meanings MeaningTable
}

// New returns a Formatter over the canonical meaning table.
func New() *Formatter {
	return &Formatter{Meanings: CanonicalMeanings}
}

// Format joins the blocks with blank lines: header, prediction summary,
// numeric summary, correlations, pick, disclaimer.
func (f *Formatter) Format(
	userText string,
	sc models.SportContext,
	date models.DateNumerology,
	gematria map[string]models.GematriaEntry,
	corr models.CorrelationResult,
	pred models.PredictionResult,
) string {
	blocks := []string{
		headerBlock(userText, sc),
		predictionBlock(pred),
		f.numericBlock(date, gematria),
		correlationBlock(corr),
		pickBlock(pred, sc),
		Disclaimer,
	}

	nonEmpty := blocks[:0]
	for _, b := range blocks {
		if b != "" {
			nonEmpty = append(nonEmpty, b)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func headerBlock(userText string, sc models.SportContext) string {
	if sc.HasTeams() {
		return fmt.Sprintf("🔥 *PREDICCIÓN NUMERIA – %s vs %s*", sc.Team1Name, sc.Team2Name)
	}
	return fmt.Sprintf("🔥 *Lectura NumerIA para:* %s", userText)
}

func predictionBlock(pred models.PredictionResult) string {
	prediction := pred.Prediction
	if prediction == "" {
		prediction = "Sin predicción específica."
	}

	lines := []string{
		"📊 *Análisis deportivo (DataMind)*",
		"• Tendencia principal: " + prediction,
		"• Confianza modelo: " + confidencePercent(pred.Confidence),
	}

	if pred.Market != "" {
		lines = append(lines, "• Mercado de referencia: "+pred.Market)
	}
	if avg, ok := pred.AvgGoalsH2H(); ok {
		lines = append(lines, fmt.Sprintf("• Goles promedio en H2H: %.2f", avg))
	}
	if winner := pred.WinnerText(); winner != "" {
		lines = append(lines, "• Ventaja histórica: "+winner)
	}
	if suggested := pred.SuggestedMarkets(); len(suggested) > 0 {
		lines = append(lines, "• Mercados interesantes: "+strings.Join(suggested, ", "))
	}

	return strings.Join(lines, "\n")
}

func (f *Formatter) numericBlock(date models.DateNumerology, gematria map[string]models.GematriaEntry) string {
	lines := []string{"🔢 *Resumen numérico técnico*"}

	if date.DateStr != "" {
		lines = append(lines, "• Fecha de análisis (UTC): "+date.DateStr)
		lines = append(lines, fmt.Sprintf("• Suma numerológica de la fecha: %d → reducción: %d", date.BaseSum, date.Reduced))
		lines = append(lines, fmt.Sprintf(
			"• Día del año: %d → reducción: %d | Días restantes del año: %d",
			date.DayOfYear, date.DayOfYearReduced, date.DaysLeftInYear,
		))
		if meaning, ok := f.Meanings[date.Reduced]; ok {
			lines = append(lines, fmt.Sprintf("• Arquetipo del día (%d): %s, %s", date.Reduced, meaning.Archetype, meaning.Message))
		}
	}

	if len(gematria) > 0 {
		lines = append(lines, "• Gematría técnica (equipos/jugador):")
		for _, role := range models.RoleOrder {
			entry, ok := gematria[role]
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf(
				"   - %s: Ord=%d, FR=%d, Rev=%d, RFR=%d",
				entry.Name, entry.Ordinal, entry.FullReduction, entry.ReverseOrdinal, entry.ReverseFullReduction,
			))
		}
	}

	if len(lines) == 1 {
		return ""
	}
	return strings.Join(lines, "\n")
}

func correlationBlock(corr models.CorrelationResult) string {
	if len(corr.PrimaryCorrelations) == 0 {
		return "📈 *Patrones numéricos:* Sin correlaciones fuertes detectadas, se prioriza principalmente el modelo estadístico."
	}

	lines := []string{"📈 *Patrones numéricos relevantes*"}
	for _, c := range corr.PrimaryCorrelations {
		var labels []string
		for _, m := range c.Matches {
			labels = append(labels, fmt.Sprintf("%s (%s=%d)", m.Source, m.Mode, m.Value))
		}
		lines = append(lines, fmt.Sprintf("• Número destacado: %d aparece en: %s", c.Number, strings.Join(labels, ", ")))
		if c.Explanation != "" {
			lines = append(lines, "  "+c.Explanation)
		}
	}

	return strings.Join(lines, "\n")
}

func pickBlock(pred models.PredictionResult, sc models.SportContext) string {
	mainPick := pred.Prediction
	if mainPick == "" {
		mainPick = "Lectura general."
	}
	if suggested := pred.SuggestedMarkets(); len(suggested) > 0 {
		mainPick = suggested[0]
	}

	title := sc.RawText
	if sc.HasTeams() {
		title = sc.Team1Name + " vs " + sc.Team2Name
	}
	if title == "" {
		title = "Evento"
	}

	lines := []string{
		"🔥 *Pick NumerIA*",
		"• Partido / Evento: " + title,
		fmt.Sprintf("• Recomendación principal: *%s*", mainPick),
		"• Basado en: tendencia estadística + patrones numéricos técnicos.",
		"• Nivel de confianza NumerIA: " + confidencePercent(pred.Confidence),
	}

	return strings.Join(lines, "\n")
}

// confidencePercent treats values <= 1 as fractions and anything above as an
// already-scaled percentage. A confidence of exactly 1.0 therefore reads as
// 100%, which matches how the gateway reports it.
func confidencePercent(confidence float64) string {
	pct := confidence
	if pct <= 1 {
		pct *= 100
	}
	return fmt.Sprintf("%.1f%%", pct)
}
