package matching

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanmills/resumatch/internal/types"
)

func reactProfile() *types.StructuredProfile {
	p := types.NewStructuredProfile()
	p.Name = "Jane Doe"
	p.Email = "jane@example.com"
	p.Skills = []string{"React", "JavaScript", "CSS"}
	return p
}

func TestMatch_NoPreferencesPartialCredit(t *testing.T) {
	// A role whose requirements the user fully covers, with no stated
	// preferences: full skill credit plus the no-preference partial
	// credits for title, location and level.
	prefs := types.Preferences{OwnerID: uuid.New()}
	opp := types.Opportunity{
		Title:          "Frontend Engineer",
		Organization:   "Acme",
		RequiredSkills: []string{"React", "JavaScript", "CSS"},
		Location:       "Remote",
	}

	records := Match(prefs, reactProfile(), []types.Opportunity{opp})

	require.Len(t, records, 1)
	// 50 (skills) + 12.5 (title) + 10 (location) + 5 (level) = 77.5 -> 78
	assert.Equal(t, 78, records[0].MatchScore)
}

func TestMatch_PartialSkillOverlap(t *testing.T) {
	// One of four required skills covered, no stated preferences:
	// 12.5 + 12.5 + 10 + 5 = 40, below the floor.
	prefs := types.Preferences{OwnerID: uuid.New()}
	opp := types.Opportunity{
		Title:          "Platform Engineer",
		RequiredSkills: []string{"React", "Go", "Terraform", "Kafka"},
	}

	records := Match(prefs, reactProfile(), []types.Opportunity{opp})

	assert.Empty(t, records)
}

func TestMatch_FloorExcludesWeakCandidates(t *testing.T) {
	prefs := types.Preferences{OwnerID: uuid.New()}
	opp := types.Opportunity{
		Title:          "Data Engineer",
		RequiredSkills: []string{"Python", "Spark", "Airflow"},
	}

	records := Match(prefs, reactProfile(), []types.Opportunity{opp})

	assert.Empty(t, records)
}

func TestMatch_TitlePreferenceFullCredit(t *testing.T) {
	prefs := types.Preferences{
		OwnerID:   uuid.New(),
		JobTitles: []string{"Frontend Engineer"},
	}
	opp := types.Opportunity{
		Title:          "Senior Frontend Engineer",
		RequiredSkills: []string{"React"},
	}

	records := Match(prefs, reactProfile(), []types.Opportunity{opp})

	require.Len(t, records, 1)
	// 50 + 25 + 10 (no location preference) + 5 = 90
	assert.Equal(t, 90, records[0].MatchScore)
	assert.True(t, records[0].MatchScore >= types.MatchFloor)
}

func TestMatch_TitleMatchLiftsWeakSkillOverlapPastFloor(t *testing.T) {
	prefs := types.Preferences{
		OwnerID:   uuid.New(),
		JobTitles: []string{"Frontend"},
	}
	opp := types.Opportunity{
		Title:          "Frontend Developer",
		RequiredSkills: []string{"React", "Vue", "Svelte", "Angular"},
	}

	records := Match(prefs, reactProfile(), []types.Opportunity{opp})

	require.Len(t, records, 1)
	// 12.5 (one of four skills) + 25 (title) + 10 + 5 = 52.5 -> 53
	assert.Equal(t, 53, records[0].MatchScore)
}

func TestMatch_LocationSubstringEitherDirection(t *testing.T) {
	prefs := types.Preferences{
		OwnerID:  uuid.New(),
		Location: "San Francisco",
	}
	opp := types.Opportunity{
		Title:          "Engineer",
		RequiredSkills: []string{"React"},
		Location:       "San Francisco Bay Area",
	}

	records := Match(prefs, reactProfile(), []types.Opportunity{opp})

	require.Len(t, records, 1)
	// 50 + 12.5 + 15 + 5 = 82.5 -> 83
	assert.Equal(t, 83, records[0].MatchScore)
}

func TestMatch_ExperienceLevelExactVsPartial(t *testing.T) {
	prefs := types.Preferences{
		OwnerID:         uuid.New(),
		ExperienceLevel: "Senior",
	}
	exact := types.Opportunity{Title: "A", RequiredSkills: []string{"React"}, ExperienceLevel: "senior"}
	miss := types.Opportunity{Title: "B", RequiredSkills: []string{"React"}, ExperienceLevel: "junior"}

	records := Match(prefs, reactProfile(), []types.Opportunity{exact, miss})

	require.Len(t, records, 2)
	assert.Equal(t, records[0].MatchScore, records[1].MatchScore+5)
}

func TestMatch_PreferenceSkillsAugmentProfile(t *testing.T) {
	prefs := types.Preferences{
		OwnerID: uuid.New(),
		Skills:  []string{"Go"},
	}
	opp := types.Opportunity{
		Title:          "Backend Engineer",
		RequiredSkills: []string{"Go"},
	}

	records := Match(prefs, reactProfile(), []types.Opportunity{opp})

	require.Len(t, records, 1)
	assert.Contains(t, records[0].MatchReasons[0], "Go")
}

func TestMatch_SortedByScoreTiesKeepCatalogOrder(t *testing.T) {
	prefs := types.Preferences{OwnerID: uuid.New()}
	strong := types.Opportunity{Title: "Strong", RequiredSkills: []string{"React"}}
	tieA := types.Opportunity{Title: "Tie A", RequiredSkills: []string{"React", "Go"}}
	tieB := types.Opportunity{Title: "Tie B", RequiredSkills: []string{"JavaScript", "Rust"}}

	records := Match(prefs, reactProfile(), []types.Opportunity{tieA, tieB, strong})

	require.Len(t, records, 3)
	assert.Equal(t, "Strong", records[0].Title)
	assert.Equal(t, "Tie A", records[1].Title)
	assert.Equal(t, "Tie B", records[2].Title)
}

func TestMatch_CapsAtTenResults(t *testing.T) {
	prefs := types.Preferences{OwnerID: uuid.New()}
	catalog := make([]types.Opportunity, 15)
	for i := range catalog {
		catalog[i] = types.Opportunity{
			Title:          fmt.Sprintf("Role %d", i),
			RequiredSkills: []string{"React"},
		}
	}

	records := Match(prefs, reactProfile(), catalog)

	assert.Len(t, records, maxResults)
}

func TestMatch_ReasonsNeverEmpty(t *testing.T) {
	prefs := types.Preferences{OwnerID: uuid.New()}
	catalog := []types.Opportunity{
		{Title: "Open Role"},
		{Title: "Frontend Engineer", RequiredSkills: []string{"React"}},
	}

	records := Match(prefs, reactProfile(), catalog)

	require.NotEmpty(t, records)
	for _, r := range records {
		assert.NotEmpty(t, r.MatchReasons)
	}
}

func TestMatch_NoRequiredSkillsReason(t *testing.T) {
	prefs := types.Preferences{OwnerID: uuid.New()}
	records := Match(prefs, reactProfile(), []types.Opportunity{{Title: "Open Role"}})

	require.Len(t, records, 1)
	assert.Contains(t, records[0].MatchReasons, "No specific skills required for this role")
}

func TestMatch_EmptyCatalog(t *testing.T) {
	records := Match(types.Preferences{}, reactProfile(), nil)
	assert.Empty(t, records)
}

func TestCombineSkills_DeduplicatesCaseInsensitively(t *testing.T) {
	p := types.NewStructuredProfile()
	p.Skills = []string{"Go", "react"}
	prefs := types.Preferences{Skills: []string{"GO", "Python"}}

	combined := combineSkills(p, prefs)

	assert.Equal(t, []string{"Go", "react", "Python"}, combined)
}

func TestReasons_NamesAtMostThreeSkills(t *testing.T) {
	cs := candidateScore{
		matchedSkills: []string{"A", "B", "C", "D", "E"},
		requiredCount: 5,
	}

	out := reasons(cs, 60, types.Opportunity{})

	require.NotEmpty(t, out)
	assert.Equal(t, "Matches 5 of 5 required skills: A, B, C", out[0])
}
