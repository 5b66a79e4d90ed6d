package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"smartdna/internal/domain"
	"smartdna/internal/repository"
)

// AssessmentService corre el motor DNA y persiste el resultado.
type AssessmentService struct {
	engine   *DNAEngine
	profiles repository.DNAProfileRepository
	users    repository.UserRepository
	access   *AccessControl
	logger   *zap.Logger
}

func NewAssessmentService(
	engine *DNAEngine,
	profiles repository.DNAProfileRepository,
	users repository.UserRepository,
	access *AccessControl,
	logger *zap.Logger,
) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		engine:   engine,
		profiles: profiles,
		users:    users,
		access:   access,
		logger:   logger,
	}
}

type AssessmentResult struct {
	Profile domain.DNAProfile `json:"dna_profile"`
	Report  DNAReport         `json:"report"`
}

// Analyze valida, calcula y guarda el perfil; marca al usuario como evaluado.
func (s *AssessmentService) Analyze(ctx context.Context, userID, companyName string, transcripts []domain.Transcript) (AssessmentResult, error) {
	if strings.TrimSpace(userID) == "" {
		return AssessmentResult{}, &ValidationError{Field: "user_id", Reason: "is required"}
	}
	if strings.TrimSpace(companyName) == "" {
		return AssessmentResult{}, &ValidationError{Field: "company_name", Reason: "is required"}
	}

	profile, err := s.engine.Analyze(userID, companyName, transcripts)
	if err != nil {
		return AssessmentResult{}, err
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return AssessmentResult{}, fmt.Errorf("save dna profile: %w", err)
	}
	if err := s.users.MarkAssessmentCompleted(ctx, userID, profile.AssessedAt, profile.HubAlignments); err != nil {
		return AssessmentResult{}, fmt.Errorf("mark assessment completed: %w", err)
	}

	s.logger.Info("assessment stored", zap.String("user_id", userID), zap.String("profile_id", profile.ID))
	return AssessmentResult{Profile: profile, Report: BuildDNAReport(profile)}, nil
}

// Profile devuelve el ultimo perfil del usuario; ok=false si nunca se evaluo.
func (s *AssessmentService) Profile(ctx context.Context, userID string) (domain.DNAProfile, bool, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DNAProfile{}, false, nil
	}
	if err != nil {
		return domain.DNAProfile{}, false, fmt.Errorf("load dna profile: %w", err)
	}
	return p, true, nil
}

type HubAccess struct {
	Access bool    `json:"access"`
	Score  float64 `json:"score"`
}

type DNAStatus struct {
	Status         string                   `json:"status"`
	AssessmentDate *time.Time               `json:"assessment_date"`
	HubAccess      map[domain.Hub]HubAccess `json:"hub_access"`
	DaysRemaining  int                      `json:"days_remaining"`
}

// Status resume el estado DNA del usuario con el acceso por hub.
func (s *AssessmentService) Status(user domain.User) DNAStatus {
	status := DNAStatus{
		Status:         "pending",
		AssessmentDate: user.AssessmentCompletedAt,
		HubAccess:      make(map[domain.Hub]HubAccess, len(user.HubAlignments)),
	}
	if user.AssessmentCompleted {
		status.Status = "completed"
	}
	for hub, score := range user.HubAlignments {
		status.HubAccess[hub] = HubAccess{Access: score >= s.access.MinHubScore(), Score: score}
	}

	decision := s.access.CheckAccess(user.AccessSubject(), "")
	status.DaysRemaining = decision.DaysRemaining
	if status.DaysRemaining == 0 && decision.Reason != domain.ReasonDNAValid {
		status.DaysRemaining = s.access.validityDays
	}
	return status
}
