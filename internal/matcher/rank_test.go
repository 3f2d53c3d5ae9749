package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

func TestRankOrdersByScoreDescending(t *testing.T) {
	catalog := []models.Scheme{
		{ID: "unrelated", Title: "Unrelated", Category: "Health"},
		{ID: "match", Title: "Farm Support", Category: "Agriculture"},
	}
	profile := models.UserProfile{Category: []string{"Agriculture"}}

	ranked := Rank(catalog, profile)
	require.Len(t, ranked, 2)
	assert.Equal(t, "match", ranked[0].Scheme.ID)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
}

func TestRankIsStableOnTies(t *testing.T) {
	// Schemes indistinguishable to the profile keep catalog order.
	catalog := []models.Scheme{
		{ID: "first", Title: "First", Category: "Health"},
		{ID: "second", Title: "Second", Category: "Health"},
		{ID: "third", Title: "Third", Category: "Health"},
	}

	ranked := Rank(catalog, models.UserProfile{Category: []string{"Education"}})
	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Scheme.ID)
	assert.Equal(t, "second", ranked[1].Scheme.ID)
	assert.Equal(t, "third", ranked[2].Scheme.ID)
}

func TestRankEmptyCatalog(t *testing.T) {
	ranked := Rank(nil, models.UserProfile{Category: []string{"Agriculture"}})
	assert.Empty(t, ranked)
}

func TestFilterByCategory(t *testing.T) {
	matches := []models.MatchedScheme{
		{Scheme: models.Scheme{ID: "a", Category: "Agriculture"}},
		{Scheme: models.Scheme{ID: "b", Category: "Health"}},
	}

	filtered := FilterByCategory(matches, "agriculture")
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].Scheme.ID)

	assert.Len(t, FilterByCategory(matches, ""), 2)
	assert.Len(t, FilterByCategory(matches, "All"), 2)
	assert.Empty(t, FilterByCategory(matches, "Housing"))
}

func TestSortByNewest(t *testing.T) {
	matches := []models.MatchedScheme{
		{Scheme: models.Scheme{ID: "old", LaunchDate: "April 8, 2015"}},
		{Scheme: models.Scheme{ID: "new", LaunchDate: "February 24, 2019"}},
		{Scheme: models.Scheme{ID: "undated"}},
	}

	SortByNewest(matches)
	assert.Equal(t, "new", matches[0].Scheme.ID)
	assert.Equal(t, "old", matches[1].Scheme.ID)
	assert.Equal(t, "undated", matches[2].Scheme.ID)
}

func TestSortByDeadlinePutsUrgentFirst(t *testing.T) {
	matches := []models.MatchedScheme{
		{Scheme: models.Scheme{ID: "ongoing", Deadline: "Ongoing"}},
		{Scheme: models.Scheme{ID: "soon", Deadline: "2024-12-31"}},
		{Scheme: models.Scheme{ID: "later", Deadline: "2025-10-31"}},
	}

	SortByDeadline(matches)
	assert.Equal(t, "soon", matches[0].Scheme.ID)
	assert.Equal(t, "later", matches[1].Scheme.ID)
	assert.Equal(t, "ongoing", matches[2].Scheme.ID)
}

func TestLaunchTimeLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"February 24, 2019": time.Date(2019, 2, 24, 0, 0, 0, 0, time.UTC),
		"2 January 2006":    time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC),
		"2014-08-28":        time.Date(2014, 8, 28, 0, 0, 0, 0, time.UTC),
		"July 2015":         time.Date(2015, 7, 1, 0, 0, 0, 0, time.UTC),
		"2016":              time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		assert.Equal(t, want, LaunchTime(raw), "layout %q", raw)
	}

	// Unknown spellings sort to the epoch.
	assert.Equal(t, time.Unix(0, 0).UTC(), LaunchTime("sometime soon"))
	assert.Equal(t, time.Unix(0, 0).UTC(), LaunchTime(""))
}

func TestDeadlineTimeSentinels(t *testing.T) {
	far := DeadlineTime("Ongoing")
	assert.Equal(t, 9999, far.Year())
	assert.Equal(t, far, DeadlineTime(""))
	assert.Equal(t, far, DeadlineTime("Seasonal"))
	assert.True(t, DeadlineTime("2024-12-31").Before(far))
}
