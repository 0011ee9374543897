// Package scoring computes heuristic quality scores for structured profiles.
// Scoring is a pure function of the profile; the same input always produces
// the same scores.
package scoring

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/ethanmills/resumatch/internal/types"
)

// Rubric thresholds shared by the structural and content scores
const (
	maxScore             = 100
	minNameLen           = 4
	minSummaryLen        = 51
	skillBonusCount      = 5
	skillDepthCount      = 10
	experienceBonusMin   = 2
	experienceDepthMin   = 3
	shortDescriptionLen  = 20
	improvementThreshold = 70
)

var validate = validator.New()

// Score computes a ScoreRecord for the profile. Overall is the rounded mean
// of the structural and content sub-scores.
func Score(profile *types.StructuredProfile) *types.ScoreRecord {
	structural := structuralScore(profile)
	content := contentScore(profile)

	return &types.ScoreRecord{
		ProfileID:       profile.ID,
		StructuralScore: structural,
		ContentScore:    content,
		OverallScore:    int(math.Round(float64(structural+content) / 2)),
		Suggestions:     suggestions(profile, structural, content),
		ComputedAt:      time.Now().UTC(),
	}
}

// structuralScore measures presence of the expected resume sections
func structuralScore(p *types.StructuredProfile) int {
	score := 0

	if p.Email != "" {
		score += 20
	}
	if p.Phone != "" {
		score += 10
	}
	if len(p.Skills) >= 1 {
		score += 15
		if len(p.Skills) >= skillBonusCount {
			score += 10
		}
	}
	if len(p.Experience) >= 1 {
		score += 15
		if len(p.Experience) >= experienceBonusMin {
			score += 10
		}
	}
	if len(p.Education) >= 1 {
		score += 15
		score += 5
	}

	return cap100(score)
}

// contentScore measures depth and quality of what the sections contain
func contentScore(p *types.StructuredProfile) int {
	score := 0

	if utf8.RuneCountInString(p.Name) >= minNameLen {
		score += 10
	}
	if validEmail(p.Email) {
		score += 10
	}

	if len(p.Skills) >= 1 {
		score += 10
		if len(p.Skills) >= skillBonusCount {
			score += 10
		}
		if len(p.Skills) >= skillDepthCount {
			score += 5
		}
	}

	if len(p.Experience) >= 1 {
		score += 15
		if anyCompleteExperience(p.Experience) {
			score += 10
		}
		if len(p.Experience) >= experienceDepthMin {
			score += 5
		}
	}

	if len(p.Education) >= 1 {
		score += 10
		if anyCompleteEducation(p.Education) {
			score += 5
		}
	}

	if utf8.RuneCountInString(p.Summary) >= minSummaryLen {
		score += 10
	}

	return cap100(score)
}

// validEmail applies strict RFC-style validation, stricter than the
// extraction regex that found the address.
func validEmail(email string) bool {
	if email == "" {
		return false
	}
	return validate.Var(email, "email") == nil
}

func anyCompleteExperience(entries []types.ExperienceEntry) bool {
	for _, e := range entries {
		if e.Complete() {
			return true
		}
	}
	return false
}

func anyCompleteEducation(entries []types.EducationEntry) bool {
	for _, e := range entries {
		if e.Complete() {
			return true
		}
	}
	return false
}

func cap100(score int) int {
	if score > maxScore {
		return maxScore
	}
	return score
}
