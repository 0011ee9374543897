package types

import (
	"time"

	"github.com/google/uuid"
)

// MaxSuggestions caps the number of improvement suggestions per score record
const MaxSuggestions = 5

// ScoreRecord holds the quality scores computed for a profile.
// Exactly one record exists per profile; recomputing overwrites it.
type ScoreRecord struct {
	ProfileID       uuid.UUID `json:"profile_id"`
	OverallScore    int       `json:"overall_score"`
	StructuralScore int       `json:"structural_score"`
	ContentScore    int       `json:"content_score"`
	Suggestions     []string  `json:"suggestions"`
	ComputedAt      time.Time `json:"computed_at"`
}
