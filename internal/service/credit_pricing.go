package service

import "smartdna/internal/domain"

const (
	defaultContentCredits = 10
	neutralHubScore       = 50.0
)

var baseCredits = map[string]int{
	"text":         5,
	"email":        7,
	"social":       10,
	"presentation": 15,
	"document":     20,
	"image":        25,
}

// ContentCredits calcula los creditos de un contenido segun el tipo y la
// alineacion con el hub. El superadmin paga el precio base.
func ContentCredits(subject domain.AccessSubject, hub domain.Hub, contentType string) int {
	credits, ok := baseCredits[contentType]
	if !ok {
		credits = defaultContentCredits
	}
	if subject.SuperAdmin {
		return credits
	}

	score, ok := subject.HubAlignments[hub]
	if !ok {
		score = neutralHubScore
	}
	switch {
	case score >= 90:
		return int(float64(credits) * 0.8)
	case score >= 75:
		return int(float64(credits) * 0.9)
	case score < 50:
		return int(float64(credits) * 1.2)
	default:
		return credits
	}
}
