package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ethanmills/resumatch/internal/types"
)

// CreateMatch stores a newly computed match record
func (s *Store) CreateMatch(ctx context.Context, match *types.MatchRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO matches (id, owner_id, title, organization, description, required_skills,
		                      location, compensation, url, match_score, match_reasons,
		                      delivered, delivered_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		match.ID, match.OwnerID, match.Title, match.Organization, match.Description,
		match.RequiredSkills, match.Location, match.Compensation, match.URL,
		match.MatchScore, match.MatchReasons, match.Delivered, match.DeliveredAt, match.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

// GetMatch retrieves a match record by ID
func (s *Store) GetMatch(ctx context.Context, id uuid.UUID) (*types.MatchRecord, error) {
	row := s.pool.QueryRow(ctx, matchSelect+` WHERE id = $1`, id)
	match, err := scanMatch(row)
	if err != nil {
		return nil, err
	}
	return match, nil
}

// PendingMatchesByOwner retrieves an owner's undelivered matches ordered by
// descending score
func (s *Store) PendingMatchesByOwner(ctx context.Context, ownerID uuid.UUID) ([]types.MatchRecord, error) {
	rows, err := s.pool.Query(ctx,
		matchSelect+` WHERE owner_id = $1 AND delivered = FALSE ORDER BY match_score DESC, created_at ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending matches: %w", err)
	}
	defer rows.Close()

	var matches []types.MatchRecord
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

// OwnersWithPending returns the distinct owners holding at least one
// undelivered match
func (s *Store) OwnersWithPending(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT owner_id FROM matches WHERE delivered = FALSE`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners with pending matches: %w", err)
	}
	defer rows.Close()

	var owners []uuid.UUID
	for rows.Next() {
		var owner uuid.UUID
		if err := rows.Scan(&owner); err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, owner)
	}
	return owners, rows.Err()
}

// MarkDelivered flips a match from undelivered to delivered. The update is
// conditional on the current delivered flag so concurrent or duplicate
// delivery attempts cannot apply twice; the return value reports whether
// this call performed the flip.
func (s *Store) MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE matches SET delivered = TRUE, delivered_at = $2
		 WHERE id = $1 AND delivered = FALSE`,
		id, at,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark match delivered: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

const matchSelect = `SELECT id, owner_id, title, organization, description, required_skills,
       location, compensation, url, match_score, match_reasons, delivered, delivered_at, created_at
  FROM matches`

func scanMatch(row pgx.Row) (*types.MatchRecord, error) {
	var match types.MatchRecord
	err := row.Scan(&match.ID, &match.OwnerID, &match.Title, &match.Organization,
		&match.Description, &match.RequiredSkills, &match.Location, &match.Compensation,
		&match.URL, &match.MatchScore, &match.MatchReasons, &match.Delivered,
		&match.DeliveredAt, &match.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	if match.RequiredSkills == nil {
		match.RequiredSkills = []string{}
	}
	if match.MatchReasons == nil {
		match.MatchReasons = []string{}
	}
	return &match, nil
}
