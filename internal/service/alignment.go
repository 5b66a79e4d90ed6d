package service

import (
	"strings"

	"smartdna/internal/domain"
)

const (
	alignmentBase      = 85.0
	alignmentIncrement = 2.5
	alignmentCap       = 99.0
	professionalWords  = 100
)

var innovationKeywords = []string{"innovative", "cutting-edge", "revolutionary"}

// AlignmentScore estima que tan alineado esta el contenido con el DNA.
func AlignmentScore(content string, dna domain.DNAContext) float64 {
	lower := strings.ToLower(content)
	score := alignmentBase

	for _, value := range dna.CoreValues {
		if value != "" && strings.Contains(lower, strings.ToLower(value)) {
			score += alignmentIncrement
		}
	}

	tone := strings.ToLower(dna.CommunicationTone)
	if strings.Contains(tone, "professional") && len(strings.Fields(content)) > professionalWords {
		score += alignmentIncrement
	}
	if strings.Contains(tone, "innovative") {
		for _, kw := range innovationKeywords {
			if strings.Contains(lower, kw) {
				score += alignmentIncrement
				break
			}
		}
	}

	if score > alignmentCap {
		return alignmentCap
	}
	return score
}
