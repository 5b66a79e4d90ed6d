package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"

	"smartdna/internal/db"
	"smartdna/internal/domain"
)

// DNAProfileRepository guarda el ultimo perfil DNA de cada usuario.
type DNAProfileRepository interface {
	Upsert(ctx context.Context, profile domain.DNAProfile) error
	GetByUserID(ctx context.Context, userID string) (domain.DNAProfile, error)
}

type PgDNAProfileRepository struct {
	pool db.Querier
}

func NewPgDNAProfileRepository(pool db.Querier) *PgDNAProfileRepository {
	return &PgDNAProfileRepository{pool: pool}
}

// Upsert reemplaza el perfil previo del usuario; gana el mas reciente.
func (r *PgDNAProfileRepository) Upsert(ctx context.Context, p domain.DNAProfile) error {
	values, err := json.Marshal(p.CoreValues)
	if err != nil {
		return fmt.Errorf("marshal core values: %w", err)
	}
	rounds, err := json.Marshal(p.RoundScores)
	if err != nil {
		return fmt.Errorf("marshal round scores: %w", err)
	}
	hubs, err := marshalHubs(p.HubAlignments)
	if err != nil {
		return err
	}
	traits, err := json.Marshal(p.Traits)
	if err != nil {
		return fmt.Errorf("marshal traits: %w", err)
	}

	const query = `
		INSERT INTO dna_profiles (
			id, user_id, company_name, assessed_at, leadership_style, communication_tone, decision_making, core_values, cultural_emphasis, round_scores, hub_alignments, personality_traits, trait_embedding
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET
			id = EXCLUDED.id,
			company_name = EXCLUDED.company_name,
			assessed_at = EXCLUDED.assessed_at,
			leadership_style = EXCLUDED.leadership_style,
			communication_tone = EXCLUDED.communication_tone,
			decision_making = EXCLUDED.decision_making,
			core_values = EXCLUDED.core_values,
			cultural_emphasis = EXCLUDED.cultural_emphasis,
			round_scores = EXCLUDED.round_scores,
			hub_alignments = EXCLUDED.hub_alignments,
			personality_traits = EXCLUDED.personality_traits,
			trait_embedding = EXCLUDED.trait_embedding
	`
	_, err = r.pool.Exec(ctx, query,
		p.ID,
		p.UserID,
		p.CompanyName,
		p.AssessedAt,
		string(p.LeadershipStyle),
		string(p.CommunicationTone),
		p.DecisionMaking,
		values,
		p.CulturalEmphasis,
		rounds,
		hubs,
		traits,
		pgvector.NewVector(p.Traits.Embedding()),
	)
	if err != nil {
		return fmt.Errorf("upsert dna profile for %s: %w", p.UserID, err)
	}
	return nil
}

func (r *PgDNAProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.DNAProfile, error) {
	const query = `
		SELECT id, user_id, company_name, assessed_at, leadership_style, communication_tone, decision_making, core_values, cultural_emphasis, round_scores, hub_alignments, personality_traits
		FROM dna_profiles
		WHERE user_id = $1
	`
	var (
		p                    domain.DNAProfile
		style, tone          string
		values, rounds, hubs []byte
		traits               []byte
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.CompanyName,
		&p.AssessedAt,
		&style,
		&tone,
		&p.DecisionMaking,
		&values,
		&p.CulturalEmphasis,
		&rounds,
		&hubs,
		&traits,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DNAProfile{}, ErrNotFound
	}
	if err != nil {
		return domain.DNAProfile{}, fmt.Errorf("get dna profile for %s: %w", userID, err)
	}
	p.LeadershipStyle = domain.LeadershipStyle(style)
	p.CommunicationTone = domain.CommunicationTone(tone)

	if err := json.Unmarshal(values, &p.CoreValues); err != nil {
		return domain.DNAProfile{}, fmt.Errorf("unmarshal core values: %w", err)
	}
	if err := json.Unmarshal(rounds, &p.RoundScores); err != nil {
		return domain.DNAProfile{}, fmt.Errorf("unmarshal round scores: %w", err)
	}
	if p.HubAlignments, err = unmarshalHubs(hubs); err != nil {
		return domain.DNAProfile{}, err
	}
	p.Traits = domain.TraitVector{}
	if len(traits) > 0 {
		if err := json.Unmarshal(traits, &p.Traits); err != nil {
			return domain.DNAProfile{}, fmt.Errorf("unmarshal traits: %w", err)
		}
	}
	return p, nil
}
