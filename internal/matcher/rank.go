package matcher

import (
	"sort"
	"strings"
	"time"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

// Rank scores every scheme in the catalog against the profile and returns
// the list sorted by score descending. The sort is stable: schemes tying on
// score keep their catalog order, so a fixed catalog always ranks
// identically. The full list is returned; truncation is the caller's
// concern.
func Rank(catalog []models.Scheme, profile models.UserProfile) []models.MatchedScheme {
	matches := make([]models.MatchedScheme, 0, len(catalog))
	for _, scheme := range catalog {
		matches = append(matches, Score(scheme, profile))
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// FilterByCategory keeps matches whose scheme category equals the given
// label, compared case-insensitively. An empty or "all" filter returns the
// input unchanged.
func FilterByCategory(matches []models.MatchedScheme, category string) []models.MatchedScheme {
	if category == "" || strings.EqualFold(category, "all") {
		return matches
	}
	filtered := make([]models.MatchedScheme, 0, len(matches))
	for _, m := range matches {
		if strings.EqualFold(m.Scheme.Category, category) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// SortByNewest reorders matches by launch date descending. Missing or
// unparsable launch dates sort as the epoch, i.e. last.
func SortByNewest(matches []models.MatchedScheme) {
	sort.SliceStable(matches, func(i, j int) bool {
		return LaunchTime(matches[i].Scheme.LaunchDate).After(LaunchTime(matches[j].Scheme.LaunchDate))
	})
}

// SortByDeadline reorders matches by deadline ascending so the most urgent
// schemes come first. "Ongoing", missing and unparsable deadlines map to a
// far-future sentinel and sort last.
func SortByDeadline(matches []models.MatchedScheme) {
	sort.SliceStable(matches, func(i, j int) bool {
		return DeadlineTime(matches[i].Scheme.Deadline).Before(DeadlineTime(matches[j].Scheme.Deadline))
	})
}

// SortSchemesByNewest is SortByNewest for plain scheme lists (catalog
// browsing without a profile).
func SortSchemesByNewest(schemes []models.Scheme) {
	sort.SliceStable(schemes, func(i, j int) bool {
		return LaunchTime(schemes[i].LaunchDate).After(LaunchTime(schemes[j].LaunchDate))
	})
}

// SortSchemesByDeadline is SortByDeadline for plain scheme lists.
func SortSchemesByDeadline(schemes []models.Scheme) {
	sort.SliceStable(schemes, func(i, j int) bool {
		return DeadlineTime(schemes[i].Deadline).Before(DeadlineTime(schemes[j].Deadline))
	})
}

// dateLayouts covers the free-text date spellings seen in registry data.
var dateLayouts = []string{
	"January 2, 2006",
	"2 January 2006",
	"2006-01-02",
	"02/01/2006",
	"January 2006",
	"2006",
}

// farFuture is the sentinel deadline for perpetually open schemes.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// LaunchTime parses a free-text launch date, returning the epoch when the
// value is missing or in an unknown format.
func LaunchTime(value string) time.Time {
	if t, ok := parseFlexibleDate(value); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// DeadlineTime parses a free-text deadline, mapping "Ongoing", absence and
// anything unparsable to a far-future sentinel.
func DeadlineTime(value string) time.Time {
	if strings.EqualFold(strings.TrimSpace(value), "ongoing") {
		return farFuture
	}
	if t, ok := parseFlexibleDate(value); ok {
		return t
	}
	return farFuture
}

func parseFlexibleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
