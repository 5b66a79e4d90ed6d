package service

import (
	"strings"

	"smartdna/internal/domain"
)

// TraitKeywords asocia un rasgo con las palabras que lo evidencian.
type TraitKeywords struct {
	Trait    domain.TraitID
	Keywords []string
}

// CountKeywords puntua un texto en [0,1]: cuenta cuantas palabras del set
// aparecen (presencia, no frecuencia) y normaliza con min(n/len*2, 1).
// La coincidencia es por subcadena y no distingue mayusculas.
func CountKeywords(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	present := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			present++
		}
	}
	score := float64(present) / float64(len(keywords)) * 2
	if score > 1 {
		return 1
	}
	return score
}

// ScoreTraits aplica CountKeywords a cada set y devuelve el vector resultante.
func ScoreTraits(text string, sets []TraitKeywords) domain.TraitVector {
	out := make(domain.TraitVector, len(sets))
	for _, set := range sets {
		out[set.Trait] = CountKeywords(text, set.Keywords)
	}
	return out
}

// sumScores suma en el orden de los sets para que el resultado sea estable.
func sumScores(traits domain.TraitVector, sets []TraitKeywords) float64 {
	total := 0.0
	for _, set := range sets {
		total += traits.Value(set.Trait)
	}
	return total
}
