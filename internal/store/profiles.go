package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ethanmills/resumatch/internal/types"
)

// CreateProfile stores a structured profile as a new document
func (s *Store) CreateProfile(ctx context.Context, profile *types.StructuredProfile) error {
	experience, err := json.Marshal(profile.Experience)
	if err != nil {
		return fmt.Errorf("failed to marshal experience: %w", err)
	}
	education, err := json.Marshal(profile.Education)
	if err != nil {
		return fmt.Errorf("failed to marshal education: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO profiles (id, owner_id, name, email, phone, skills, experience, education, summary, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		profile.ID, profile.OwnerID, profile.Name, profile.Email, profile.Phone,
		profile.Skills, experience, education, profile.Summary, profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by ID
func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (*types.StructuredProfile, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, email, phone, skills, experience, education, summary, created_at
		 FROM profiles WHERE id = $1`,
		id,
	)
	return scanProfile(row)
}

// LatestProfileByOwner retrieves the most recently created profile for an owner
func (s *Store) LatestProfileByOwner(ctx context.Context, ownerID uuid.UUID) (*types.StructuredProfile, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, email, phone, skills, experience, education, summary, created_at
		 FROM profiles WHERE owner_id = $1 ORDER BY created_at DESC LIMIT 1`,
		ownerID,
	)
	return scanProfile(row)
}

func scanProfile(row pgx.Row) (*types.StructuredProfile, error) {
	var profile types.StructuredProfile
	var experience, education []byte

	err := row.Scan(&profile.ID, &profile.OwnerID, &profile.Name, &profile.Email, &profile.Phone,
		&profile.Skills, &experience, &education, &profile.Summary, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	if err := json.Unmarshal(experience, &profile.Experience); err != nil {
		return nil, fmt.Errorf("failed to unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(education, &profile.Education); err != nil {
		return nil, fmt.Errorf("failed to unmarshal education: %w", err)
	}
	profile.Normalize()

	return &profile, nil
}
