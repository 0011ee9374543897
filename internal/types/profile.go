// Package types provides type definitions for structured data used throughout the resumatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// StructuredProfile represents a resume parsed into structured fields.
// Skills, Experience and Education are always non-nil slices, possibly empty.
type StructuredProfile struct {
	ID         uuid.UUID         `json:"id"`
	OwnerID    uuid.UUID         `json:"owner_id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone,omitempty"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Summary    string            `json:"summary,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// ExperienceEntry represents a single position held by the candidate
type ExperienceEntry struct {
	Organization string `json:"organization"`
	Title        string `json:"title"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	Description  string `json:"description"`
}

// EducationEntry represents a single degree or credential
type EducationEntry struct {
	Institution    string `json:"institution"`
	Credential     string `json:"credential"`
	Field          string `json:"field"`
	CompletionDate string `json:"completion_date"`
}

// NewStructuredProfile returns an empty profile with all sequence fields initialized
func NewStructuredProfile() *StructuredProfile {
	return &StructuredProfile{
		Skills:     []string{},
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
	}
}

// Normalize ensures the sequence invariants hold after JSON decoding,
// where absent arrays decode to nil.
func (p *StructuredProfile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
}

// Complete reports whether every field of the entry is populated
func (e ExperienceEntry) Complete() bool {
	return e.Organization != "" && e.Title != "" && e.StartDate != "" && e.Description != ""
}

// Complete reports whether every field of the entry is populated
func (e EducationEntry) Complete() bool {
	return e.Institution != "" && e.Credential != "" && e.Field != "" && e.CompletionDate != ""
}
