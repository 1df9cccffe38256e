package format

import "github.com/Alias1177/NumerIA/models"

// MeaningTable maps a reduced digit to its archetype line. It is plain data:
// call sites share one canonical table instead of re-declaring variants.
type MeaningTable map[int]models.DigitMeaning

// CanonicalMeanings is the single table every reading renders from.
var CanonicalMeanings = MeaningTable{
	1: {Archetype: "Iniciador", Message: "energía de arranque; favorece al que golpea primero."},
	2: {Archetype: "Equilibrio", Message: "tendencia a marcadores ajustados y fases de estudio."},
	3: {Archetype: "Expansión", Message: "jornadas abiertas, con volumen ofensivo por encima de la media."},
	4: {Archetype: "Estructura", Message: "orden táctico; los planteamientos disciplinados pesan más."},
	5: {Archetype: "Cambio", Message: "giros de guion; cuidado con remontadas y expulsiones."},
	6: {Archetype: "Armonía", Message: "favorece al bloque más compacto, no al más brillante."},
	7: {Archetype: "Análisis", Message: "día de detalles finos; las estadísticas de nicho rinden."},
	8: {Archetype: "Poder", Message: "el favorito suele imponer su jerarquía física."},
	9: {Archetype: "Cierre", Message: "ciclos que terminan; ojo con rachas a punto de romperse."},
}
