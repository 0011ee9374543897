// Package extraction turns raw resume text into a structured profile using
// regex and heuristic section parsing. It never fails on malformed content;
// fields the heuristics cannot locate are left empty.
package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ethanmills/resumatch/internal/types"
)

const (
	maxNameLen    = 100
	maxSummaryLen = 500
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	// Date ranges like "2019 - 2021" or "2019 - present" mark one
	// experience entry each.
	dateRangePattern = regexp.MustCompile(`((?:19|20)\d{2})\s*[-–—]\s*((?:19|20)\d{2}|[Pp]resent)`)
	yearPattern      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// degreeKeywords maps detectable degree markers to the credential recorded
// in the placeholder education entry.
var degreeKeywords = []struct {
	keyword    string
	credential string
}{
	{"phd", "PhD"},
	{"ph.d", "PhD"},
	{"doctorate", "PhD"},
	{"master", "Master's Degree"},
	{"m.s.", "Master's Degree"},
	{"m.a.", "Master's Degree"},
	{"msc", "Master's Degree"},
	{"mba", "MBA"},
	{"bachelor", "Bachelor's Degree"},
	{"b.s.", "Bachelor's Degree"},
	{"b.a.", "Bachelor's Degree"},
	{"bsc", "Bachelor's Degree"},
	{"associate", "Associate Degree"},
}

// Extract parses raw resume text into a StructuredProfile. The returned
// profile always has non-nil Skills/Experience/Education. An error is
// returned only for input the extractor cannot decode; callers are
// responsible for rejecting profiles without an email before persisting.
func Extract(rawText string) (*types.StructuredProfile, error) {
	if !utf8.ValidString(rawText) {
		return nil, &ExtractionError{Message: "source text is not valid UTF-8"}
	}

	profile := types.NewStructuredProfile()

	lines := normalizeLines(rawText)
	if len(lines) == 0 {
		return profile, nil
	}

	profile.Name = truncateRunes(lines[0], maxNameLen)
	profile.Email = emailPattern.FindString(rawText)
	profile.Phone = strings.TrimSpace(phonePattern.FindString(rawText))

	parsed := scanSections(lines)
	profile.Skills = extractSkills(parsed.text(SectionSkills))
	profile.Experience = extractExperience(parsed.text(SectionExperience))
	profile.Education = extractEducation(parsed.text(SectionEducation))
	profile.Summary = extractSummary(parsed.text(SectionSummary))

	return profile, nil
}

// normalizeLines splits the text into trimmed, non-empty lines
func normalizeLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// extractSkills intersects the skill vocabulary with the skills section text
func extractSkills(sectionText string) []string {
	skills := []string{}
	if sectionText == "" {
		return skills
	}
	for _, term := range skillVocabulary {
		if containsTerm(sectionText, term) {
			skills = append(skills, term)
		}
	}
	return skills
}

// extractExperience yields one placeholder entry per date range found in the
// experience section. Organization and title are placeholders: the source
// heuristic only detects the presence of a dated position, not its details.
func extractExperience(sectionText string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	if sectionText == "" {
		return entries
	}

	for _, match := range dateRangePattern.FindAllStringSubmatch(sectionText, -1) {
		entry := types.ExperienceEntry{
			Organization: "Company Name",
			Title:        "Position",
			StartDate:    match[1],
		}
		if !strings.EqualFold(match[2], "present") {
			entry.EndDate = match[2]
		}
		entries = append(entries, entry)
	}
	return entries
}

// extractEducation yields a single placeholder entry when the education
// section mentions a degree keyword, dated from the first year found.
func extractEducation(sectionText string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	if sectionText == "" {
		return entries
	}

	lowered := strings.ToLower(sectionText)
	for _, degree := range degreeKeywords {
		if !strings.Contains(lowered, degree.keyword) {
			continue
		}
		year := yearPattern.FindString(sectionText)
		if year == "" {
			year = strconv.Itoa(time.Now().Year())
		}
		entries = append(entries, types.EducationEntry{
			Institution:    "Institution",
			Credential:     degree.credential,
			Field:          "General Studies",
			CompletionDate: year,
		})
		break
	}
	return entries
}

// extractSummary returns the leading portion of the summary section
func extractSummary(sectionText string) string {
	if sectionText == "" {
		return ""
	}
	summary := strings.ReplaceAll(sectionText, "\n", " ")
	return truncateRunes(summary, maxSummaryLen)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
