package optimizer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ethanmills/resumatch/internal/types"
)

const (
	minSummaryLen       = 50
	targetSkillCount    = 5
	maxSuggestedSkills  = 3
	shortDescriptionLen = 20
)

// genericAchievement replaces descriptions too short to say anything.
// It starts with an action verb so a second fallback pass leaves it alone.
const genericAchievement = "Delivered measurable improvements to team productivity and product quality in this role"

// actionVerbs are the openers a description may already start with
var actionVerbs = []string{
	"led", "built", "developed", "designed", "implemented", "managed",
	"created", "improved", "launched", "delivered", "architected",
	"optimized", "automated", "migrated", "reduced", "increased",
	"maintained", "shipped",
}

// skillCoOccurrence suggests complementary skills for ones the candidate
// already lists. Keys are lowercase.
var skillCoOccurrence = map[string][]string{
	"javascript": {"Git", "REST APIs", "TypeScript"},
	"typescript": {"Git", "REST APIs", "Node.js"},
	"python":     {"Git", "SQL", "Docker"},
	"java":       {"Git", "Spring", "SQL"},
	"go":         {"Git", "Docker", "PostgreSQL"},
	"react":      {"JavaScript", "CSS", "HTML"},
	"angular":    {"TypeScript", "HTML", "CSS"},
	"node.js":    {"Express", "REST APIs", "MongoDB"},
	"sql":        {"PostgreSQL", "MySQL"},
	"docker":     {"Kubernetes", "CI/CD", "Linux"},
	"kubernetes": {"Docker", "Terraform", "CI/CD"},
	"aws":        {"Terraform", "Docker", "Linux"},
	"django":     {"Python", "PostgreSQL", "REST APIs"},
	"rails":      {"Ruby", "PostgreSQL"},
}

// Fallback deterministically improves a profile without consulting the
// oracle. Every transformation only adds or lengthens content, which is what
// keeps re-scoring monotonic.
func Fallback(profile *types.StructuredProfile) *types.StructuredProfile {
	revised := clone(profile)

	if len(revised.Summary) < minSummaryLen {
		revised.Summary = synthesizeSummary(revised)
	}

	if len(revised.Skills) < targetSkillCount {
		revised.Skills = append(revised.Skills, complementarySkills(revised.Skills)...)
	}

	for i, entry := range revised.Experience {
		revised.Experience[i].Description = improveDescription(entry.Description)
	}

	return revised
}

// synthesizeSummary builds a summary from the first few skills and the
// number of positions held. Always longer than minSummaryLen.
func synthesizeSummary(p *types.StructuredProfile) string {
	highlight := "a broad range of technologies"
	if len(p.Skills) > 0 {
		count := len(p.Skills)
		if count > 3 {
			count = 3
		}
		highlight = strings.Join(p.Skills[:count], ", ")
	}

	return fmt.Sprintf(
		"Results-driven professional with %d %s of hands-on experience, skilled in %s and focused on delivering measurable outcomes.",
		len(p.Experience), pluralize("position", len(p.Experience)), highlight,
	)
}

// complementarySkills returns up to maxSuggestedSkills additions drawn from
// the co-occurrence table, skipping anything already listed
func complementarySkills(existing []string) []string {
	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		have[strings.ToLower(s)] = true
	}

	var additions []string
	for _, skill := range existing {
		for _, suggestion := range skillCoOccurrence[strings.ToLower(skill)] {
			if have[strings.ToLower(suggestion)] {
				continue
			}
			have[strings.ToLower(suggestion)] = true
			additions = append(additions, suggestion)
			if len(additions) == maxSuggestedSkills {
				return additions
			}
		}
	}
	return additions
}

// improveDescription rewrites short descriptions entirely and prefixes the
// rest with an action verb when they lack one
func improveDescription(description string) string {
	if len(description) < shortDescriptionLen {
		return genericAchievement
	}
	if startsWithActionVerb(description) {
		return description
	}
	return "Developed and " + lowerFirst(description)
}

func startsWithActionVerb(description string) bool {
	first := strings.ToLower(firstWord(description))
	for _, verb := range actionVerbs {
		if first == verb {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
