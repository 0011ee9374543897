package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanmills/resumatch/internal/types"
)

func fullProfile() *types.StructuredProfile {
	p := types.NewStructuredProfile()
	p.Name = "Jane Doe"
	p.Email = "jane.doe@example.com"
	p.Phone = "(415) 555-0123"
	p.Skills = []string{"Go", "Python", "PostgreSQL", "Docker", "Kubernetes", "AWS", "Redis", "Kafka", "Terraform", "Linux"}
	p.Experience = []types.ExperienceEntry{
		{Organization: "Acme", Title: "Staff Engineer", StartDate: "2019", Description: "Led the storage platform team across three regions"},
		{Organization: "Initech", Title: "Engineer", StartDate: "2015", EndDate: "2019", Description: "Built event ingestion pipelines handling billions of events"},
		{Organization: "Hooli", Title: "Junior Engineer", StartDate: "2013", EndDate: "2015", Description: "Maintained internal build tooling for forty developers"},
	}
	p.Education = []types.EducationEntry{
		{Institution: "State University", Credential: "Bachelor's Degree", Field: "Computer Science", CompletionDate: "2013"},
	}
	p.Summary = strings.Repeat("Senior engineer with broad systems experience. ", 3)
	return p
}

func TestScore_EmailOnlyProfile(t *testing.T) {
	p := types.NewStructuredProfile()
	p.Name = "Jane Doe"
	p.Email = "jane@example.com"

	record := Score(p)

	assert.Equal(t, 20, record.StructuralScore)
	assert.Equal(t, 20, record.ContentScore)
	assert.Equal(t, 20, record.OverallScore)

	require.Len(t, record.Suggestions, types.MaxSuggestions)
	assert.Contains(t, record.Suggestions[1], "skills")
	assert.Contains(t, record.Suggestions[2], "experience")
	assert.Contains(t, record.Suggestions[3], "education")
}

func TestScore_CompleteProfileMaxesStructural(t *testing.T) {
	record := Score(fullProfile())

	assert.Equal(t, 100, record.StructuralScore)
	assert.Equal(t, 100, record.ContentScore)
	assert.Equal(t, 100, record.OverallScore)
	assert.Empty(t, record.Suggestions)
}

func TestScore_OverallRoundsMean(t *testing.T) {
	// Phone only: structural 10, content 0, mean 5.
	p := types.NewStructuredProfile()
	p.Phone = "555-123-4567"

	record := Score(p)

	assert.Equal(t, 10, record.StructuralScore)
	assert.Equal(t, 0, record.ContentScore)
	assert.Equal(t, 5, record.OverallScore)
}

func TestScore_Deterministic(t *testing.T) {
	p := fullProfile()

	first := Score(p)
	second := Score(p)

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.Suggestions, second.Suggestions)
}

func TestContentScore_StrictEmailValidation(t *testing.T) {
	p := types.NewStructuredProfile()
	p.Name = "Jane Doe"
	p.Email = "not-an-email@"

	// Structural only checks presence; content requires a valid address.
	assert.Equal(t, 20, structuralScore(p))
	assert.Equal(t, 10, contentScore(p))
}

func TestContentScore_NameLengthCountsRunes(t *testing.T) {
	p := types.NewStructuredProfile()

	// Two runes, six bytes. Must not earn the name credit.
	p.Name = "李明"
	assert.Equal(t, 0, contentScore(p))

	p.Name = "李明宇轩"
	assert.Equal(t, 10, contentScore(p))
}

func TestContentScore_SummaryLengthThreshold(t *testing.T) {
	p := types.NewStructuredProfile()
	p.Summary = strings.Repeat("a", 50)
	assert.Equal(t, 0, contentScore(p))

	p.Summary = strings.Repeat("a", 51)
	assert.Equal(t, 10, contentScore(p))

	// Fifty multibyte runes stay under the threshold regardless of bytes.
	p.Summary = strings.Repeat("长", 50)
	assert.Equal(t, 0, contentScore(p))
}

func TestSuggestions_CappedAtFive(t *testing.T) {
	p := types.NewStructuredProfile()

	got := suggestions(p, 0, 0)

	assert.Len(t, got, types.MaxSuggestions)
}

func TestSuggestions_ShortDescriptionRule(t *testing.T) {
	p := fullProfile()
	p.Experience[0].Description = "Worked"

	record := Score(p)

	require.NotEmpty(t, record.Suggestions)
	assert.Contains(t, record.Suggestions[0], "Expand short experience descriptions")
}
