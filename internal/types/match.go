package types

import (
	"time"

	"github.com/google/uuid"
)

// MatchFloor is the minimum score a candidate opportunity must reach to be
// persisted and notified.
const MatchFloor = 50

// MatchRecord represents a qualifying opportunity matched against a user's
// profile and preferences. Records are created undelivered and flip to
// delivered exactly once.
type MatchRecord struct {
	ID             uuid.UUID  `json:"id"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	Title          string     `json:"title"`
	Organization   string     `json:"organization"`
	Description    string     `json:"description"`
	RequiredSkills []string   `json:"required_skills"`
	Location       string     `json:"location"`
	Compensation   string     `json:"compensation,omitempty"`
	URL            string     `json:"url,omitempty"`
	MatchScore     int        `json:"match_score"`
	MatchReasons   []string   `json:"match_reasons"`
	Delivered      bool       `json:"delivered"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Opportunity represents one entry from the external opportunity catalog
type Opportunity struct {
	Title           string   `json:"title"`
	Organization    string   `json:"organization"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	Location        string   `json:"location"`
	ExperienceLevel string   `json:"experience_level"`
	Compensation    string   `json:"compensation,omitempty"`
	URL             string   `json:"url,omitempty"`
}

// Preferences holds a user's stated job-search preferences. Empty fields
// mean "no preference".
type Preferences struct {
	OwnerID         uuid.UUID `json:"owner_id"`
	Skills          []string  `json:"skills"`
	JobTitles       []string  `json:"job_titles"`
	Location        string    `json:"location"`
	ExperienceLevel string    `json:"experience_level"`
}
