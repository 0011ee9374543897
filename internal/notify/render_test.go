package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ethanmills/resumatch/internal/types"
)

func sampleMatch() *types.MatchRecord {
	return &types.MatchRecord{
		Title:        "Backend Engineer",
		Organization: "Acme",
		Location:     "Remote",
		Compensation: "$150k",
		URL:          "https://jobs.example.com/123",
		MatchScore:   85,
		MatchReasons: []string{"Matches 3 of 3 required skills: Go, PostgreSQL, Docker"},
	}
}

func TestRenderMatch_AllFields(t *testing.T) {
	message := RenderMatch(sampleMatch())

	assert.Contains(t, message, "Backend Engineer at Acme (85% match)")
	assert.Contains(t, message, "Location: Remote")
	assert.Contains(t, message, "Compensation: $150k")
	assert.Contains(t, message, "Why this matches you:")
	assert.Contains(t, message, "Matches 3 of 3 required skills")
	assert.Contains(t, message, "Apply: https://jobs.example.com/123")
}

func TestRenderMatch_OptionalFieldsOmitted(t *testing.T) {
	match := sampleMatch()
	match.Location = ""
	match.Compensation = ""
	match.URL = ""
	match.MatchReasons = nil

	message := RenderMatch(match)

	assert.NotContains(t, message, "Location:")
	assert.NotContains(t, message, "Compensation:")
	assert.NotContains(t, message, "Apply:")
	assert.NotContains(t, message, "Why this matches you:")
}

func TestRenderDigest_ListsAllWhenUnderLimit(t *testing.T) {
	matches := []types.MatchRecord{
		{Title: "Role A", Organization: "Acme", MatchScore: 90},
		{Title: "Role B", Organization: "Initech", MatchScore: 70},
	}

	message := RenderDigest(matches)

	assert.Contains(t, message, "You have 2 pending job matches:")
	assert.Contains(t, message, "1. Role A at Acme (90% match)")
	assert.Contains(t, message, "2. Role B at Initech (70% match)")
	assert.NotContains(t, message, "more")
}

func TestRenderDigest_TruncatesPastLimit(t *testing.T) {
	matches := make([]types.MatchRecord, DigestLimit+3)
	for i := range matches {
		matches[i] = types.MatchRecord{Title: "Role", Organization: "Org", MatchScore: 60}
	}

	message := RenderDigest(matches)

	assert.Contains(t, message, "... and 3 more")
	assert.NotContains(t, message, "6. Role")
}

func TestRenderDigest_SingleMatchSingular(t *testing.T) {
	message := RenderDigest([]types.MatchRecord{{Title: "Role", Organization: "Org", MatchScore: 55}})
	assert.Contains(t, message, "You have 1 pending job match:")
}
