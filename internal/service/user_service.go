package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"smartdna/internal/domain"
	"smartdna/internal/repository"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("rate limited")
)

// UserService coordina el alta de usuarios, la resolucion del llamador y el
// login de superadmin.
type UserService struct {
	logger        *zap.Logger
	users         repository.UserRepository
	superAdminKey string
	superKeyHash  []byte
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, superAdminKey, superAdminKeyHash string) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		logger:        logger,
		users:         users,
		superAdminKey: superAdminKey,
		superKeyHash:  []byte(strings.TrimSpace(superAdminKeyHash)),
	}
}

type CreateUserInput struct {
	Email       string
	FullName    string
	CompanyName string
}

func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	email := normalizeEmail(input.Email)
	if _, err := mail.ParseAddress(email); email == "" || err != nil {
		return domain.User{}, ErrInvalidEmail
	}

	user := domain.User{
		ID:            uuid.NewString(),
		Email:         email,
		FullName:      strings.TrimSpace(input.FullName),
		CompanyName:   strings.TrimSpace(input.CompanyName),
		HubAlignments: map[domain.Hub]float64{},
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info("user created", zap.String("user_id", user.ID))
	return user, nil
}

// Resolve obtiene el usuario del token. El superadmin no vive en la base:
// se arma con el DNA completo y 99 en todos los hubs.
func (s *UserService) Resolve(ctx context.Context, userID string, superAdmin bool) (domain.User, error) {
	if superAdmin {
		return SuperAdminUser(), nil
	}
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// SuperAdminUser es el usuario sintetico de las sesiones de superadmin.
func SuperAdminUser() domain.User {
	hubs := make(map[domain.Hub]float64, len(domain.Hubs))
	for _, h := range domain.Hubs {
		hubs[h] = superAdminHubScore
	}
	return domain.User{
		ID:                  SuperAdminUserID,
		FullName:            "SuperAdmin",
		SuperAdmin:          true,
		AssessmentCompleted: true,
		HubAlignments:       hubs,
	}
}

// VerifySuperAdminKey compara contra el hash bcrypt si esta configurado, si
// no contra la clave en texto plano.
func (s *UserService) VerifySuperAdminKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidCredentials
	}
	if len(s.superKeyHash) > 0 {
		if err := bcrypt.CompareHashAndPassword(s.superKeyHash, []byte(key)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}
	if s.superAdminKey == "" {
		return ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.superAdminKey)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
