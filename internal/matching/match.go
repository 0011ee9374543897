// Package matching scores candidate opportunities against a user's profile
// and preferences. Scoring is pure and stateless; persistence and
// notification scheduling belong to the caller.
package matching

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ethanmills/resumatch/internal/types"
)

// Component weights. They sum to 100.
const (
	skillWeight    = 50.0
	titleWeight    = 25.0
	locationWeight = 15.0
	levelWeight    = 10.0

	// Partial credit applied when a component cannot fully match
	titleMissRatio   = 0.3
	titleNoPrefRatio = 0.5
	locationNoPref   = 10.0
	levelPartial     = 5.0

	maxResults = 10
)

// candidateScore carries the per-component results needed for both the
// final score and the reason strings
type candidateScore struct {
	total         float64
	matchedSkills []string
	requiredCount int
	titleMatched  bool
	locationHit   bool
	levelExact    bool
}

// Match scores every catalog opportunity for the given profile/preferences
// pair, drops candidates below the match floor, and returns up to ten
// records ranked by descending score. Ties keep catalog order.
func Match(prefs types.Preferences, profile *types.StructuredProfile, catalog []types.Opportunity) []types.MatchRecord {
	userSkills := combineSkills(profile, prefs)

	records := make([]types.MatchRecord, 0, len(catalog))
	for _, opp := range catalog {
		cs := scoreCandidate(prefs, userSkills, opp)
		score := clamp(int(math.Round(cs.total)), 0, 100)
		if score < types.MatchFloor {
			continue
		}

		records = append(records, types.MatchRecord{
			ID:             uuid.New(),
			OwnerID:        prefs.OwnerID,
			Title:          opp.Title,
			Organization:   opp.Organization,
			Description:    opp.Description,
			RequiredSkills: append([]string{}, opp.RequiredSkills...),
			Location:       opp.Location,
			Compensation:   opp.Compensation,
			URL:            opp.URL,
			MatchScore:     score,
			MatchReasons:   reasons(cs, score, opp),
			CreatedAt:      time.Now().UTC(),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MatchScore > records[j].MatchScore
	})

	if len(records) > maxResults {
		records = records[:maxResults]
	}
	return records
}

// scoreCandidate computes the weighted component scores for one opportunity
func scoreCandidate(prefs types.Preferences, userSkills []string, opp types.Opportunity) candidateScore {
	var cs candidateScore
	cs.requiredCount = len(opp.RequiredSkills)

	// Skill overlap: fraction of required skills covered by the user's
	// skills, substring match in either direction. No requirements means
	// full credit.
	if cs.requiredCount == 0 {
		cs.total += skillWeight
	} else {
		for _, required := range opp.RequiredSkills {
			if skillCovered(required, userSkills) {
				cs.matchedSkills = append(cs.matchedSkills, required)
			}
		}
		cs.total += float64(len(cs.matchedSkills)) / float64(cs.requiredCount) * skillWeight
	}

	// Title affinity
	switch {
	case len(prefs.JobTitles) == 0:
		cs.total += titleWeight * titleNoPrefRatio
	case titleMatches(prefs.JobTitles, opp.Title):
		cs.titleMatched = true
		cs.total += titleWeight
	default:
		cs.total += titleWeight * titleMissRatio
	}

	// Location
	switch {
	case prefs.Location == "":
		cs.total += locationNoPref
	case containsFold(prefs.Location, opp.Location) || containsFold(opp.Location, prefs.Location):
		cs.locationHit = true
		cs.total += locationWeight
	}

	// Experience level: partial credit in every non-exact case, including
	// an unstated preference
	if prefs.ExperienceLevel != "" && strings.EqualFold(prefs.ExperienceLevel, opp.ExperienceLevel) {
		cs.levelExact = true
		cs.total += levelWeight
	} else {
		cs.total += levelPartial
	}

	return cs
}

// combineSkills merges profile skills and stated preference skills,
// dropping duplicates case-insensitively
func combineSkills(profile *types.StructuredProfile, prefs types.Preferences) []string {
	seen := make(map[string]bool)
	var combined []string
	for _, group := range [][]string{profile.Skills, prefs.Skills} {
		for _, skill := range group {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			combined = append(combined, skill)
		}
	}
	return combined
}

// skillCovered reports whether any user skill matches the required skill as
// a case-insensitive substring in either direction
func skillCovered(required string, userSkills []string) bool {
	for _, skill := range userSkills {
		if containsFold(required, skill) || containsFold(skill, required) {
			return true
		}
	}
	return false
}

// titleMatches reports whether any preferred title is a substring of the
// candidate title or vice versa
func titleMatches(preferred []string, title string) bool {
	for _, p := range preferred {
		if containsFold(title, p) || containsFold(p, title) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
