package scoring

import (
	"unicode/utf8"

	"github.com/ethanmills/resumatch/internal/types"
)

// suggestionRule pairs a firing condition with its human-readable message.
// Rules are evaluated in declaration order and the first five that fire win.
type suggestionRule struct {
	applies func(p *types.StructuredProfile, structural, content int) bool
	message string
}

var suggestionRules = []suggestionRule{
	{
		applies: func(p *types.StructuredProfile, _, _ int) bool { return p.Email == "" },
		message: "Add an email address so you can be contacted",
	},
	{
		applies: func(p *types.StructuredProfile, _, _ int) bool { return p.Phone == "" },
		message: "Add a phone number to your contact details",
	},
	{
		applies: func(p *types.StructuredProfile, _, _ int) bool { return len(p.Skills) < skillBonusCount },
		message: "Add more skills to your skills section, aiming for at least five core technologies",
	},
	{
		applies: func(p *types.StructuredProfile, _, _ int) bool { return len(p.Experience) < experienceBonusMin },
		message: "Add more work experience entries with dates and responsibilities",
	},
	{
		applies: func(p *types.StructuredProfile, _, _ int) bool { return len(p.Education) == 0 },
		message: "Add your education history, including degrees and completion dates",
	},
	{
		applies: func(p *types.StructuredProfile, _, _ int) bool {
			return utf8.RuneCountInString(p.Summary) < minSummaryLen
		},
		message: "Write a professional summary of at least a few sentences",
	},
	{
		applies: func(p *types.StructuredProfile, _, _ int) bool { return anyShortDescription(p.Experience) },
		message: "Expand short experience descriptions with concrete accomplishments",
	},
	{
		applies: func(_ *types.StructuredProfile, structural, _ int) bool { return structural < improvementThreshold },
		message: "Fill in the missing resume sections to improve structural completeness",
	},
	{
		applies: func(_ *types.StructuredProfile, _, content int) bool { return content < improvementThreshold },
		message: "Add more detail and measurable results throughout to strengthen content depth",
	},
}

// suggestions returns the first MaxSuggestions messages whose rules fire,
// in rule-declaration order.
func suggestions(p *types.StructuredProfile, structural, content int) []string {
	out := []string{}
	for _, rule := range suggestionRules {
		if !rule.applies(p, structural, content) {
			continue
		}
		out = append(out, rule.message)
		if len(out) == types.MaxSuggestions {
			break
		}
	}
	return out
}

// anyShortDescription reports whether some experience entry has a
// description too short to say anything useful
func anyShortDescription(entries []types.ExperienceEntry) bool {
	for _, e := range entries {
		if len(e.Description) < shortDescriptionLen {
			return true
		}
	}
	return false
}
