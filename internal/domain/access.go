package domain

import "time"

// Codigos de razon de una decision de acceso.
const (
	ReasonSuperAdmin            = "SUPERADMIN_ACCESS"
	ReasonDNAAssessmentRequired = "DNA_ASSESSMENT_REQUIRED"
	ReasonDNAExpired            = "DNA_EXPIRED"
	ReasonLowHubAlignment       = "LOW_HUB_ALIGNMENT"
	ReasonDNAValid              = "DNA_VALID"
)

// AccessSubject es lo que el control de acceso necesita saber del llamador.
type AccessSubject struct {
	UserID                string
	SuperAdmin            bool
	AssessmentCompleted   bool
	AssessmentCompletedAt *time.Time
	HubAlignments         map[Hub]float64
}

// AccessDecision se calcula por cada chequeo y nunca se persiste.
type AccessDecision struct {
	Access          bool            `json:"access"`
	Reason          string          `json:"reason"`
	Message         string          `json:"message,omitempty"`
	Action          string          `json:"action,omitempty"`
	HubScore        *float64        `json:"hub_score,omitempty"`
	RecommendedHubs []Hub           `json:"recommended_hubs,omitempty"`
	HubScores       map[Hub]float64 `json:"hub_scores,omitempty"`
	DaysRemaining   int             `json:"days_remaining,omitempty"`
}
