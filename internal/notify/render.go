package notify

import (
	"fmt"
	"strings"

	"github.com/ethanmills/resumatch/internal/types"
)

// DigestLimit caps how many matches a consolidated digest message describes
const DigestLimit = 5

// RenderMatch renders the notification text for a single match
func RenderMatch(match *types.MatchRecord) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "New job match: %s at %s (%d%% match)\n",
		match.Title, match.Organization, match.MatchScore)
	if match.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", match.Location)
	}
	if match.Compensation != "" {
		fmt.Fprintf(&sb, "Compensation: %s\n", match.Compensation)
	}

	if len(match.MatchReasons) > 0 {
		sb.WriteString("Why this matches you:\n")
		for _, reason := range match.MatchReasons {
			fmt.Fprintf(&sb, "  • %s\n", reason)
		}
	}

	if match.URL != "" {
		fmt.Fprintf(&sb, "Apply: %s\n", match.URL)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// RenderDigest renders one consolidated message for an owner's pending
// matches, describing at most DigestLimit of them. The caller passes matches
// sorted by descending score so the strongest appear first.
func RenderDigest(matches []types.MatchRecord) string {
	var sb strings.Builder

	shown := matches
	if len(shown) > DigestLimit {
		shown = shown[:DigestLimit]
	}

	fmt.Fprintf(&sb, "You have %d pending job %s:\n", len(matches), pluralize("match", len(matches)))
	for i, match := range shown {
		fmt.Fprintf(&sb, "%d. %s at %s (%d%% match", i+1, match.Title, match.Organization, match.MatchScore)
		if match.Location != "" {
			fmt.Fprintf(&sb, ", %s", match.Location)
		}
		sb.WriteString(")\n")
	}
	if len(matches) > DigestLimit {
		fmt.Fprintf(&sb, "... and %d more\n", len(matches)-DigestLimit)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "es"
}
