// Package pipeline composes extraction, scoring, optimization and matching
// into the operations the application exposes. Each operation is a plain
// method taking a context; persistence and delivery scheduling are injected.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ethanmills/resumatch/internal/catalog"
	"github.com/ethanmills/resumatch/internal/extraction"
	"github.com/ethanmills/resumatch/internal/matching"
	"github.com/ethanmills/resumatch/internal/optimizer"
	"github.com/ethanmills/resumatch/internal/scoring"
	"github.com/ethanmills/resumatch/internal/store"
	"github.com/ethanmills/resumatch/internal/types"
)

// Store is the persistence surface the pipeline needs
type Store interface {
	CreateProfile(ctx context.Context, profile *types.StructuredProfile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*types.StructuredProfile, error)
	LatestProfileByOwner(ctx context.Context, ownerID uuid.UUID) (*types.StructuredProfile, error)
	UpsertScore(ctx context.Context, record *types.ScoreRecord) error
	GetScore(ctx context.Context, profileID uuid.UUID) (*types.ScoreRecord, error)
	GetPreferences(ctx context.Context, ownerID uuid.UUID) (*types.Preferences, error)
	CreateMatch(ctx context.Context, match *types.MatchRecord) error
}

// Notifier schedules delivery of a stored match record
type Notifier interface {
	ScheduleMatch(ctx context.Context, match *types.MatchRecord) error
}

// Pipeline wires the processing stages to storage, the opportunity catalog
// and the notification scheduler
type Pipeline struct {
	store     Store
	optimizer *optimizer.Optimizer
	catalog   catalog.Catalog
	notifier  Notifier
	logger    *slog.Logger
}

// New creates a Pipeline. The notifier may be nil when delivery scheduling
// is not wanted, e.g. one-shot CLI runs.
func New(s Store, opt *optimizer.Optimizer, cat catalog.Catalog, notifier Notifier, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		store:     s,
		optimizer: opt,
		catalog:   cat,
		notifier:  notifier,
		logger:    logger,
	}
}

// ProcessResume extracts a structured profile from raw resume text, persists
// it and its quality score, and returns both. Text without a detectable
// email address is rejected before anything is stored.
func (p *Pipeline) ProcessResume(ctx context.Context, ownerID uuid.UUID, rawText string) (*types.StructuredProfile, *types.ScoreRecord, error) {
	profile, err := extraction.Extract(rawText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract profile: %w", err)
	}

	if profile.Email == "" {
		return nil, nil, &ValidationError{Field: "email", Message: "resume text contains no email address"}
	}

	profile.ID = uuid.New()
	profile.OwnerID = ownerID
	profile.CreatedAt = time.Now().UTC()

	if err := p.store.CreateProfile(ctx, profile); err != nil {
		return nil, nil, fmt.Errorf("failed to store profile: %w", err)
	}

	record := scoring.Score(profile)
	if err := p.store.UpsertScore(ctx, record); err != nil {
		return nil, nil, fmt.Errorf("failed to store score: %w", err)
	}

	p.logger.Info("processed resume",
		slog.String("profile_id", profile.ID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.Int("overall_score", record.OverallScore),
	)
	return profile, record, nil
}

// Optimize produces and persists an improved revision of the given profile
func (p *Pipeline) Optimize(ctx context.Context, profileID uuid.UUID) (*types.StructuredProfile, optimizer.Outcome, error) {
	return p.optimizer.Optimize(ctx, profileID)
}

// Match ranks the opportunity catalog against the owner's latest profile and
// preferences, persists each surviving match and schedules its delivery.
// Owners without stored preferences are matched with an empty preference
// set.
func (p *Pipeline) Match(ctx context.Context, ownerID uuid.UUID) ([]types.MatchRecord, error) {
	profile, err := p.store.LatestProfileByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	prefs, err := p.store.GetPreferences(ctx, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		prefs = &types.Preferences{OwnerID: ownerID}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	opportunities, err := p.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	matches := matching.Match(*prefs, profile, opportunities)
	for i := range matches {
		if err := p.store.CreateMatch(ctx, &matches[i]); err != nil {
			return nil, fmt.Errorf("failed to store match: %w", err)
		}
		if p.notifier != nil {
			if err := p.notifier.ScheduleMatch(ctx, &matches[i]); err != nil {
				return nil, fmt.Errorf("failed to schedule match delivery: %w", err)
			}
		}
	}

	p.logger.Info("matched opportunities",
		slog.String("owner_id", ownerID.String()),
		slog.Int("candidates", len(opportunities)),
		slog.Int("matches", len(matches)),
	)
	return matches, nil
}
