package matching

import (
	"fmt"
	"strings"

	"github.com/ethanmills/resumatch/internal/types"
)

// Qualitative score bands for the overall-match note
const (
	strongMatchScore = 80
	goodMatchScore   = 70
)

// maxNamedSkills caps how many matched skills a reason names
const maxNamedSkills = 3

// reasons renders the ordered explanation strings for a retained candidate.
// Reaching the match floor implies at least one contributing factor, so the
// result is never empty.
func reasons(cs candidateScore, score int, opp types.Opportunity) []string {
	out := []string{}

	switch {
	case cs.requiredCount == 0:
		out = append(out, "No specific skills required for this role")
	case len(cs.matchedSkills) > 0:
		named := cs.matchedSkills
		if len(named) > maxNamedSkills {
			named = named[:maxNamedSkills]
		}
		out = append(out, fmt.Sprintf("Matches %d of %d required skills: %s",
			len(cs.matchedSkills), cs.requiredCount, strings.Join(named, ", ")))
	}

	if cs.titleMatched {
		out = append(out, fmt.Sprintf("Title aligns with your preferred roles (%s)", opp.Title))
	}
	if cs.locationHit {
		out = append(out, fmt.Sprintf("Located in your preferred area (%s)", opp.Location))
	}
	if cs.levelExact {
		out = append(out, fmt.Sprintf("Experience level matches (%s)", opp.ExperienceLevel))
	}

	switch {
	case score >= strongMatchScore:
		out = append(out, "Strong overall match")
	case score >= goodMatchScore:
		out = append(out, "Good overall match")
	}

	return out
}
