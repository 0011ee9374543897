package extraction

import (
	"strings"
	"unicode"
)

// Section identifies the resume section a line belongs to
type Section string

// Section labels assigned by the scanner
const (
	SectionNone       Section = "none"
	SectionSummary    Section = "summary"
	SectionSkills     Section = "skills"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionOther      Section = "other"
)

// maxHeaderLen bounds how long a line can be and still count as a section
// header. Longer lines are body text even when they end with a colon.
const maxHeaderLen = 40

// sectionSynonyms maps normalized header text to the section it opens
var sectionSynonyms = map[string]Section{
	"summary":                 SectionSummary,
	"objective":               SectionSummary,
	"profile":                 SectionSummary,
	"about":                   SectionSummary,
	"about me":                SectionSummary,
	"professional summary":    SectionSummary,
	"career objective":        SectionSummary,
	"skills":                  SectionSkills,
	"technical skills":        SectionSkills,
	"technologies":            SectionSkills,
	"core competencies":       SectionSkills,
	"key skills":              SectionSkills,
	"tech stack":              SectionSkills,
	"experience":              SectionExperience,
	"work experience":         SectionExperience,
	"professional experience": SectionExperience,
	"employment":              SectionExperience,
	"employment history":      SectionExperience,
	"work history":            SectionExperience,
	"education":               SectionEducation,
	"academic background":     SectionEducation,
	"academics":               SectionEducation,
	"qualifications":          SectionEducation,
	"certifications":          SectionEducation,
}

// sections holds the body lines collected under each section label
type sections map[Section][]string

// text returns the joined body text of a section, empty when absent
func (s sections) text(sec Section) string {
	lines, ok := s[sec]
	if !ok {
		return ""
	}
	return strings.Join(lines, "\n")
}

// scanSections classifies each line into a section using a single forward
// scan: a known header synonym opens its section, any other header-shaped
// line closes the current one. Body lines accumulate under the open section.
func scanSections(lines []string) sections {
	result := make(sections)
	current := SectionNone

	for _, line := range lines {
		if sec, ok := headerSection(line); ok {
			current = sec
			continue
		}
		if current == SectionNone || current == SectionOther {
			continue
		}
		result[current] = append(result[current], line)
	}

	return result
}

// headerSection reports whether a line is a section header, and which
// section it opens. Unknown headers open SectionOther, which terminates
// whatever section was being collected.
func headerSection(line string) (Section, bool) {
	if len(line) > maxHeaderLen {
		return SectionNone, false
	}

	normalized := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(line, ":")))
	if sec, ok := sectionSynonyms[normalized]; ok {
		return sec, true
	}

	// Generic "Header:" form: short, capitalized, trailing colon.
	if strings.HasSuffix(line, ":") && startsUpper(line) {
		return SectionOther, true
	}

	return SectionNone, false
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
