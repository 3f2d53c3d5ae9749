package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"women", "farmers", "loan"}, Tokenize("the women farmers loan"))
	assert.Equal(t, []string{"women", "farmers", "loan"}, Tokenize("  The WOMEN, farmers' loan!  "))
	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize("a i the of"))
}

func TestTokenizeDropsSingleCharacterTokens(t *testing.T) {
	assert.Equal(t, []string{"scheme"}, Tokenize("x scheme y"))
}

func TestQueryTitleWeighting(t *testing.T) {
	catalog := []models.Scheme{
		{ID: "farmer-loan", Title: "Farmer Loan Scheme", Deadline: "Ongoing"},
		{ID: "women-farmer-loan", Title: "Women Farmer Loan Scheme", Deadline: "Ongoing"},
	}

	results := Query(catalog, "the women farmers loan", Filters{})
	require.Len(t, results, 2)
	assert.Equal(t, "women-farmer-loan", results[0].ID)
	assert.Equal(t, "farmer-loan", results[1].ID)
}

func TestQueryDropsIncidentalOverlap(t *testing.T) {
	catalog := []models.Scheme{
		{ID: "housing", Title: "Urban Housing Subsidy", Description: "Housing for urban residents", Deadline: "Ongoing"},
	}

	results := Query(catalog, "fisheries trawler permit", Filters{})
	assert.Empty(t, results)
}

func TestQueryEmptyReturnsPopularFirst(t *testing.T) {
	catalog := []models.Scheme{
		{ID: "plain", Title: "Plain", Deadline: "Ongoing"},
		{ID: "popular", Title: "Popular", Deadline: "Ongoing", IsPopular: true},
	}

	results := Query(catalog, "", Filters{})
	require.Len(t, results, 2)
	assert.Equal(t, "popular", results[0].ID)
	assert.Equal(t, "plain", results[1].ID)
}

func TestQueryFilters(t *testing.T) {
	catalog := []models.Scheme{
		{ID: "ka-farm", Title: "Farm Pond Subsidy", Category: "Agriculture & Farming", State: "Karnataka", Deadline: "Closed"},
		{ID: "national-farm", Title: "Farm Income Support", Category: "Agriculture & Farming", State: "All States", Deadline: "Ongoing"},
		{ID: "health", Title: "Health Cover", Category: "Health", State: "All States", Deadline: "Ongoing"},
	}

	// Category filter matches by substring, case-insensitively.
	byCategory := Query(catalog, "", Filters{Category: "agriculture"})
	require.Len(t, byCategory, 2)

	byState := Query(catalog, "", Filters{State: "karnataka"})
	require.Len(t, byState, 1)
	assert.Equal(t, "ka-farm", byState[0].ID)

	active := true
	activeOnly := Query(catalog, "", Filters{Category: "agriculture", Active: &active})
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "national-farm", activeOnly[0].ID)

	inactive := false
	closedOnly := Query(catalog, "", Filters{Active: &inactive})
	require.Len(t, closedOnly, 1)
	assert.Equal(t, "ka-farm", closedOnly[0].ID)

	// "all" is the UI's no-filter sentinel.
	assert.Len(t, Query(catalog, "", Filters{Category: "All"}), 3)
}

func TestQueryScoresEligibilitySurface(t *testing.T) {
	catalog := []models.Scheme{
		{
			ID:          "structured",
			Title:       "Housing Subsidy",
			Eligibility: `{"maxIncome": 1800000}`,
			EligibilityText: "Urban residents from EWS households",
			Deadline:    "Ongoing",
		},
		{
			ID:          "free-text",
			Title:       "Pension Plan",
			Eligibility: "Senior citizens from EWS households",
			Deadline:    "Ongoing",
		},
	}

	// Both records should surface for an eligibility-text query: the
	// JSON-string eligibility falls back to the display text.
	results := Query(catalog, "ews households", Filters{})
	assert.Len(t, results, 2)
}

func TestQueryStableOnTies(t *testing.T) {
	catalog := []models.Scheme{
		{ID: "first", Title: "Loan Scheme", Deadline: "Ongoing"},
		{ID: "second", Title: "Loan Scheme", Deadline: "Ongoing"},
	}

	results := Query(catalog, "loan", Filters{})
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].ID)
	assert.Equal(t, "second", results[1].ID)
}
