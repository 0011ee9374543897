package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanSections_SynonymHeaders(t *testing.T) {
	lines := []string{
		"Professional Summary:",
		"Engineer of things.",
		"Tech Stack",
		"Go, Rust",
		"Work History:",
		"Engineer, 2019 - 2021",
	}

	parsed := scanSections(lines)

	assert.Equal(t, "Engineer of things.", parsed.text(SectionSummary))
	assert.Equal(t, "Go, Rust", parsed.text(SectionSkills))
	assert.Equal(t, "Engineer, 2019 - 2021", parsed.text(SectionExperience))
}

func TestScanSections_UnknownHeaderClosesSection(t *testing.T) {
	lines := []string{
		"Skills:",
		"Go",
		"References:",
		"Available on request",
	}

	parsed := scanSections(lines)

	assert.Equal(t, "Go", parsed.text(SectionSkills))
	assert.NotContains(t, parsed.text(SectionSkills), "Available on request")
}

func TestScanSections_LinesBeforeFirstHeaderIgnored(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"jane@example.com",
		"Skills:",
		"Python",
	}

	parsed := scanSections(lines)

	assert.Equal(t, "Python", parsed.text(SectionSkills))
	assert.Empty(t, parsed.text(SectionSummary))
}

func TestHeaderSection_LongLineIsNotHeader(t *testing.T) {
	line := "Responsible for the following systems and services across the org:"

	_, ok := headerSection(line)
	assert.False(t, ok)
}

func TestHeaderSection_CaseInsensitive(t *testing.T) {
	sec, ok := headerSection("EDUCATION")

	assert.True(t, ok)
	assert.Equal(t, SectionEducation, sec)
}

func TestContainsTerm_WordBoundaries(t *testing.T) {
	assert.True(t, containsTerm("Go, Python", "Go"))
	assert.False(t, containsTerm("Google Cloud", "Go"))
	assert.True(t, containsTerm("C++ and C#", "C++"))
	assert.True(t, containsTerm("node.js developer", "Node.js"))
	assert.False(t, containsTerm("PostgreSQL", "SQL"))
}
