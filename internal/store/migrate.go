package store

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id         UUID PRIMARY KEY,
		owner_id   UUID NOT NULL,
		name       TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL,
		phone      TEXT NOT NULL DEFAULT '',
		skills     TEXT[] NOT NULL DEFAULT '{}',
		experience JSONB NOT NULL DEFAULT '[]',
		education  JSONB NOT NULL DEFAULT '[]',
		summary    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS profiles_owner_created_idx ON profiles (owner_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS scores (
		profile_id       UUID PRIMARY KEY REFERENCES profiles (id) ON DELETE CASCADE,
		overall_score    INT NOT NULL,
		structural_score INT NOT NULL,
		content_score    INT NOT NULL,
		suggestions      TEXT[] NOT NULL DEFAULT '{}',
		computed_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id              UUID PRIMARY KEY,
		owner_id        UUID NOT NULL,
		title           TEXT NOT NULL,
		organization    TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		location        TEXT NOT NULL DEFAULT '',
		compensation    TEXT NOT NULL DEFAULT '',
		url             TEXT NOT NULL DEFAULT '',
		match_score     INT NOT NULL,
		match_reasons   TEXT[] NOT NULL DEFAULT '{}',
		delivered       BOOLEAN NOT NULL DEFAULT FALSE,
		delivered_at    TIMESTAMPTZ,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS matches_pending_idx ON matches (owner_id, match_score DESC) WHERE delivered = FALSE`,
	`CREATE TABLE IF NOT EXISTS preferences (
		owner_id         UUID PRIMARY KEY,
		skills           TEXT[] NOT NULL DEFAULT '{}',
		job_titles       TEXT[] NOT NULL DEFAULT '{}',
		location         TEXT NOT NULL DEFAULT '',
		experience_level TEXT NOT NULL DEFAULT ''
	)`,
}

// Migrate creates the schema when it does not already exist
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
