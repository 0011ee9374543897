package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ethanmills/resumatch/internal/types"
)

// SavePreferences stores or replaces an owner's job-search preferences
func (s *Store) SavePreferences(ctx context.Context, prefs *types.Preferences) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO preferences (owner_id, skills, job_titles, location, experience_level)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (owner_id) DO UPDATE SET
		   skills = EXCLUDED.skills,
		   job_titles = EXCLUDED.job_titles,
		   location = EXCLUDED.location,
		   experience_level = EXCLUDED.experience_level`,
		prefs.OwnerID, prefs.Skills, prefs.JobTitles, prefs.Location, prefs.ExperienceLevel,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// GetPreferences retrieves an owner's stated preferences
func (s *Store) GetPreferences(ctx context.Context, ownerID uuid.UUID) (*types.Preferences, error) {
	var prefs types.Preferences
	err := s.pool.QueryRow(ctx,
		`SELECT owner_id, skills, job_titles, location, experience_level
		 FROM preferences WHERE owner_id = $1`,
		ownerID,
	).Scan(&prefs.OwnerID, &prefs.Skills, &prefs.JobTitles, &prefs.Location, &prefs.ExperienceLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &prefs, nil
}
