// Package optimizer produces an improved revision of a structured profile.
// It asks the text-generation oracle for a rewrite and falls back to a
// deterministic local optimizer whenever the oracle fails or replies with
// something unparseable. The fallback path never lowers the profile's score;
// that property is enforced by test, not at runtime.
package optimizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ethanmills/resumatch/internal/llm"
	"github.com/ethanmills/resumatch/internal/scoring"
	"github.com/ethanmills/resumatch/internal/store"
	"github.com/ethanmills/resumatch/internal/types"
)

const systemInstruction = `You are a resume optimization assistant. Improve the candidate's resume so it scores higher on completeness and content depth. Strengthen the summary, expand thin experience descriptions with concrete accomplishments, and round out the skills list. Never invent employers, dates, or credentials. Reply with a single JSON object using the same field names as the input profile.`

// Source tags where an optimization result came from
type Source string

// Optimization outcome sources
const (
	SourceOracle   Source = "oracle"
	SourceFallback Source = "fallback"
)

// Outcome records how the revised profile was produced. A fallback outcome
// carries the reason the oracle path was abandoned.
type Outcome struct {
	Source Source
	Reason string
}

// Store is the persistence surface the optimizer needs
type Store interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*types.StructuredProfile, error)
	GetScore(ctx context.Context, profileID uuid.UUID) (*types.ScoreRecord, error)
	CreateProfile(ctx context.Context, profile *types.StructuredProfile) error
	UpsertScore(ctx context.Context, record *types.ScoreRecord) error
}

// Optimizer coordinates the oracle call, reply parsing and local fallback
type Optimizer struct {
	store  Store
	oracle llm.Client
	logger *slog.Logger
}

// New creates an Optimizer. A nil oracle is allowed and forces the
// deterministic fallback path.
func New(st Store, oracle llm.Client, logger *slog.Logger) *Optimizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Optimizer{store: st, oracle: oracle, logger: logger}
}

// Optimize produces a revised profile persisted as a new document. The
// original profile is never mutated. Oracle failures are absorbed into the
// fallback; only missing-profile and persistence errors propagate.
func (o *Optimizer) Optimize(ctx context.Context, profileID uuid.UUID) (*types.StructuredProfile, Outcome, error) {
	profile, err := o.store.GetProfile(ctx, profileID)
	if err != nil {
		return nil, Outcome{}, fmt.Errorf("load profile: %w", err)
	}

	score, err := o.store.GetScore(ctx, profileID)
	if errors.Is(err, store.ErrNotFound) {
		score = scoring.Score(profile)
		if err := o.store.UpsertScore(ctx, score); err != nil {
			return nil, Outcome{}, fmt.Errorf("persist score: %w", err)
		}
	} else if err != nil {
		return nil, Outcome{}, fmt.Errorf("load score: %w", err)
	}

	revised, outcome := o.generate(ctx, profile, score)
	if outcome.Source == SourceFallback {
		o.logger.Warn("oracle optimization unavailable, using deterministic fallback",
			slog.String("profile_id", profileID.String()),
			slog.String("reason", outcome.Reason),
		)
	}

	revised.ID = uuid.New()
	revised.OwnerID = profile.OwnerID
	revised.CreatedAt = time.Now().UTC()
	revised.Normalize()

	if err := o.store.CreateProfile(ctx, revised); err != nil {
		return nil, outcome, fmt.Errorf("persist optimized profile: %w", err)
	}
	if err := o.store.UpsertScore(ctx, scoring.Score(revised)); err != nil {
		return nil, outcome, fmt.Errorf("persist optimized score: %w", err)
	}

	return revised, outcome, nil
}

// generate runs the oracle protocol and degrades to the local fallback
func (o *Optimizer) generate(ctx context.Context, profile *types.StructuredProfile, score *types.ScoreRecord) (*types.StructuredProfile, Outcome) {
	if o.oracle == nil {
		return Fallback(profile), Outcome{Source: SourceFallback, Reason: "no oracle configured"}
	}

	prompt, err := buildPrompt(profile, score)
	if err != nil {
		return Fallback(profile), Outcome{Source: SourceFallback, Reason: "prompt build failed: " + err.Error()}
	}

	reply, err := o.oracle.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: systemInstruction},
		{Role: llm.RoleUser, Content: prompt},
	})
	if err != nil {
		return Fallback(profile), Outcome{Source: SourceFallback, Reason: "oracle call failed: " + err.Error()}
	}

	parsed, err := parseOracleReply(reply)
	if err != nil {
		return Fallback(profile), Outcome{Source: SourceFallback, Reason: "reply parse failed: " + err.Error()}
	}

	return merge(profile, parsed), Outcome{Source: SourceOracle}
}

// buildPrompt embeds the profile and its current suggestions into a
// natural-language optimization request
func buildPrompt(profile *types.StructuredProfile, score *types.ScoreRecord) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Here is a candidate's structured resume profile (current score %d/100):

%s

The scoring rubric produced these improvement suggestions:
`, score.OverallScore, profileJSON)

	for i, s := range score.Suggestions {
		prompt += fmt.Sprintf("%d. %s\n", i+1, s)
	}
	prompt += "\nReturn the improved profile as a single JSON object."

	return prompt, nil
}

// merge prefers the oracle's value over the original for every field the
// oracle filled in; empty oracle fields keep the original value.
func merge(original *types.StructuredProfile, oracle *oracleProfile) *types.StructuredProfile {
	revised := clone(original)

	if oracle.Name != "" {
		revised.Name = oracle.Name
	}
	if oracle.Email != "" {
		revised.Email = oracle.Email
	}
	if oracle.Phone != "" {
		revised.Phone = oracle.Phone
	}
	if oracle.Summary != "" {
		revised.Summary = oracle.Summary
	}
	if len(oracle.Skills) > 0 {
		revised.Skills = oracle.Skills
	}
	if len(oracle.Experience) > 0 {
		revised.Experience = oracle.Experience
	}
	if len(oracle.Education) > 0 {
		revised.Education = oracle.Education
	}

	return revised
}

// clone deep-copies a profile so revisions never alias the original
func clone(p *types.StructuredProfile) *types.StructuredProfile {
	out := *p
	out.Skills = append([]string{}, p.Skills...)
	out.Experience = append([]types.ExperienceEntry{}, p.Experience...)
	out.Education = append([]types.EducationEntry{}, p.Education...)
	return &out
}
