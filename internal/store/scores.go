package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ethanmills/resumatch/internal/types"
)

// UpsertScore stores the score record for a profile, overwriting any
// previous record. At most one score exists per profile.
func (s *Store) UpsertScore(ctx context.Context, record *types.ScoreRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO scores (profile_id, overall_score, structural_score, content_score, suggestions, computed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (profile_id) DO UPDATE SET
		   overall_score = EXCLUDED.overall_score,
		   structural_score = EXCLUDED.structural_score,
		   content_score = EXCLUDED.content_score,
		   suggestions = EXCLUDED.suggestions,
		   computed_at = EXCLUDED.computed_at`,
		record.ProfileID, record.OverallScore, record.StructuralScore,
		record.ContentScore, record.Suggestions, record.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert score: %w", err)
	}
	return nil
}

// GetScore retrieves the score record for a profile
func (s *Store) GetScore(ctx context.Context, profileID uuid.UUID) (*types.ScoreRecord, error) {
	var record types.ScoreRecord
	err := s.pool.QueryRow(ctx,
		`SELECT profile_id, overall_score, structural_score, content_score, suggestions, computed_at
		 FROM scores WHERE profile_id = $1`,
		profileID,
	).Scan(&record.ProfileID, &record.OverallScore, &record.StructuralScore,
		&record.ContentScore, &record.Suggestions, &record.ComputedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	return &record, nil
}
