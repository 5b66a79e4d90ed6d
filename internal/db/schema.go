package db

import (
	"context"
	"fmt"
)

// schemaStatements crea las tablas si no existen. Se aplican en orden.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS vector`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL DEFAULT '',
		company_name TEXT NOT NULL DEFAULT '',
		is_superadmin BOOLEAN NOT NULL DEFAULT FALSE,
		dna_assessment_completed BOOLEAN NOT NULL DEFAULT FALSE,
		assessment_completed_at TIMESTAMPTZ,
		hub_alignments JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS dna_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		company_name TEXT NOT NULL,
		assessed_at TIMESTAMPTZ NOT NULL,
		leadership_style TEXT NOT NULL,
		communication_tone TEXT NOT NULL,
		decision_making TEXT NOT NULL,
		core_values JSONB NOT NULL,
		cultural_emphasis TEXT NOT NULL,
		round_scores JSONB NOT NULL,
		hub_alignments JSONB NOT NULL,
		personality_traits JSONB NOT NULL,
		trait_embedding vector(19)
	)`,
}

// EnsureSchema aplica el esquema base de forma idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	for i, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
