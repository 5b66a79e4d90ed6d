package service

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"smartdna/internal/domain"
)

const superAdminHubScore = 99.0

// AccessControl decide si un usuario puede generar contenido para un hub.
type AccessControl struct {
	minHubScore  float64
	validityDays int
	now          func() time.Time
	logger       *zap.Logger
}

func NewAccessControl(minHubScore float64, validityDays int, logger *zap.Logger) *AccessControl {
	if validityDays <= 0 {
		validityDays = 365
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccessControl{
		minHubScore:  minHubScore,
		validityDays: validityDays,
		now:          time.Now,
		logger:       logger,
	}
}

// MinHubScore expone el umbral configurado.
func (a *AccessControl) MinHubScore() float64 {
	return a.minHubScore
}

// CheckAccess evalua en orden: superadmin, evaluacion completa, vigencia y
// alineacion con el hub pedido. hub vacio omite el ultimo chequeo.
func (a *AccessControl) CheckAccess(subject domain.AccessSubject, hub domain.Hub) domain.AccessDecision {
	decision := a.decide(subject, hub)
	a.logger.Info("dna access check",
		zap.String("user_id", subject.UserID),
		zap.String("hub", string(hub)),
		zap.Bool("granted", decision.Access),
		zap.String("reason", decision.Reason),
	)
	return decision
}

func (a *AccessControl) decide(subject domain.AccessSubject, hub domain.Hub) domain.AccessDecision {
	if subject.SuperAdmin {
		scores := make(map[domain.Hub]float64, len(domain.Hubs))
		for _, h := range domain.Hubs {
			scores[h] = superAdminHubScore
		}
		decision := domain.AccessDecision{
			Access:    true,
			Reason:    domain.ReasonSuperAdmin,
			Message:   "SuperAdmin access",
			HubScores: scores,
		}
		if hub != "" {
			score := superAdminHubScore
			decision.HubScore = &score
		}
		return decision
	}

	if !subject.AssessmentCompleted {
		return domain.AccessDecision{
			Access:  false,
			Reason:  domain.ReasonDNAAssessmentRequired,
			Message: "Complete CorePersonaDNA assessment to unlock content generation",
			Action:  "/assessment/start",
		}
	}

	daysRemaining := a.validityDays
	if subject.AssessmentCompletedAt != nil {
		days := int(a.now().Sub(*subject.AssessmentCompletedAt).Hours() / 24)
		if days > a.validityDays {
			return domain.AccessDecision{
				Access:  false,
				Reason:  domain.ReasonDNAExpired,
				Message: fmt.Sprintf("Your DNA profile is %d days old. Please refresh your assessment.", days),
				Action:  "/assessment/refresh",
			}
		}
		daysRemaining = a.validityDays - days
	}

	if hub != "" {
		score := subject.HubAlignments[hub]
		if score < a.minHubScore {
			return domain.AccessDecision{
				Access: false,
				Reason: domain.ReasonLowHubAlignment,
				Message: fmt.Sprintf("Your DNA alignment with %s is %s%%. Minimum %s%% required.",
					hub, formatScore(score), formatScore(a.minHubScore)),
				HubScore:        &score,
				RecommendedHubs: a.RecommendedHubs(subject.HubAlignments),
			}
		}
	}

	scores := make(map[domain.Hub]float64, len(subject.HubAlignments))
	for h, s := range subject.HubAlignments {
		scores[h] = s
	}
	return domain.AccessDecision{
		Access:        true,
		Reason:        domain.ReasonDNAValid,
		HubScores:     scores,
		DaysRemaining: daysRemaining,
	}
}

// RecommendedHubs lista, en orden de enumeracion, los hubs que superan el umbral.
func (a *AccessControl) RecommendedHubs(scores map[domain.Hub]float64) []domain.Hub {
	var out []domain.Hub
	for _, h := range domain.Hubs {
		if s, ok := scores[h]; ok && s >= a.minHubScore {
			out = append(out, h)
		}
	}
	return out
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
