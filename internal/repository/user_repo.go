package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"smartdna/internal/db"
	"smartdna/internal/domain"
)

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	MarkAssessmentCompleted(ctx context.Context, userID string, at time.Time, hubs map[domain.Hub]float64) error
}

// PgUserRepository implementa UserRepository sobre Postgres.
type PgUserRepository struct {
	pool db.Querier
}

func NewPgUserRepository(pool db.Querier) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	hubs, err := marshalHubs(user.HubAlignments)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO users (id, email, full_name, company_name, is_superadmin, dna_assessment_completed, assessment_completed_at, hub_alignments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.FullName,
		user.CompanyName,
		user.SuperAdmin,
		user.AssessmentCompleted,
		user.AssessmentCompletedAt,
		hubs,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", user.ID, err)
	}
	return nil
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `
		SELECT id, email, full_name, company_name, is_superadmin, dna_assessment_completed, assessment_completed_at, hub_alignments, created_at
		FROM users
		WHERE id = $1
	`
	var (
		u           domain.User
		completedAt sql.NullTime
		hubs        []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.CompanyName,
		&u.SuperAdmin,
		&u.AssessmentCompleted,
		&completedAt,
		&hubs,
		&u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	if completedAt.Valid {
		at := completedAt.Time
		u.AssessmentCompletedAt = &at
	}
	if u.HubAlignments, err = unmarshalHubs(hubs); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// MarkAssessmentCompleted deja al usuario con el DNA vigente y sus alineaciones.
func (r *PgUserRepository) MarkAssessmentCompleted(ctx context.Context, userID string, at time.Time, hubs map[domain.Hub]float64) error {
	payload, err := marshalHubs(hubs)
	if err != nil {
		return err
	}
	const query = `
		UPDATE users
		SET dna_assessment_completed = TRUE, assessment_completed_at = $2, hub_alignments = $3
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, userID, at, payload)
	if err != nil {
		return fmt.Errorf("mark assessment completed for %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalHubs(hubs map[domain.Hub]float64) ([]byte, error) {
	if hubs == nil {
		hubs = map[domain.Hub]float64{}
	}
	b, err := json.Marshal(hubs)
	if err != nil {
		return nil, fmt.Errorf("marshal hub alignments: %w", err)
	}
	return b, nil
}

func unmarshalHubs(raw []byte) (map[domain.Hub]float64, error) {
	hubs := map[domain.Hub]float64{}
	if len(raw) == 0 {
		return hubs, nil
	}
	if err := json.Unmarshal(raw, &hubs); err != nil {
		return nil, fmt.Errorf("unmarshal hub alignments: %w", err)
	}
	return hubs, nil
}
