package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

func farmScheme() models.Scheme {
	return models.Scheme{
		ID:              "farm-support",
		Title:           "Farmer Income Support",
		Description:     "Income support for small and marginal farmers in rural areas.",
		Category:        "Agriculture",
		Deadline:        "Ongoing",
		EligibilityText: "All landholding farmers. Small and marginal farmers with holdings up to 2 hectares.",
		Tags:            []string{"farmers", "income support"},
	}
}

func TestEmptyProfileScoresZeroEverywhere(t *testing.T) {
	schemes := []models.Scheme{
		farmScheme(),
		{ID: "popular", Title: "Popular Scheme", Category: "Health", IsPopular: true},
	}

	for _, s := range schemes {
		matched := Score(s, models.UserProfile{})
		assert.Equal(t, 0, matched.Score, "scheme %s", s.ID)
		assert.Empty(t, matched.MatchingFactors, "scheme %s", s.ID)
	}
}

func TestScoreBounds(t *testing.T) {
	profile := models.UserProfile{
		Age:              intp(30),
		Gender:           "female",
		Income:           floatp(80000),
		Location:         "Karnataka",
		Category:         []string{"Agriculture"},
		Occupation:       "farmer",
		Education:        "school",
		MaritalStatus:    "married",
		Disabilities:     []string{"visual impairment"},
		FamilySize:       intp(6),
		EmploymentStatus: "self-employed",
		Interests:        []string{"farmers"},
		IndustrySector:   "agriculture",
		SkillLevel:       []string{"farming"},
		HasLand:          boolp(true),
		LandSize:         floatp(1.5),
		RuralOrUrban:     "rural",
	}

	matched := Score(farmScheme(), profile)
	assert.GreaterOrEqual(t, matched.Score, 0)
	assert.LessOrEqual(t, matched.Score, 100)
	assert.NotEmpty(t, matched.MatchingFactors)
}

func TestScoreDeterminism(t *testing.T) {
	profile := models.UserProfile{
		Age:        intp(30),
		Occupation: "farmer",
		Category:   []string{"Agriculture"},
		HasLand:    boolp(true),
		LandSize:   floatp(1.0),
	}

	first := Score(farmScheme(), profile)
	second := Score(farmScheme(), profile)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.MatchingFactors, second.MatchingFactors)
}

func TestCategoryExactMatch(t *testing.T) {
	scheme := models.Scheme{ID: "s", Title: "S", Category: "Agriculture"}

	matched := Score(scheme, models.UserProfile{Category: []string{"agriculture"}})
	require.Len(t, matched.MatchingFactors, 1)
	assert.Equal(t, "Category", matched.MatchingFactors[0].Factor)
	assert.Equal(t, 25, matched.MatchingFactors[0].Weight)

	// A mismatched category still counts toward the attainable maximum.
	points, maxPossible, factors := rawScore(&scheme, &models.UserProfile{Category: []string{"Education"}})
	assert.Equal(t, 0, points)
	assert.Empty(t, factors)
	// category 25 + popularity 5
	assert.Equal(t, 30, maxPossible)
}

func TestAgeBracketsAreDisjoint(t *testing.T) {
	scheme := models.Scheme{
		ID:              "child-scheme",
		Title:           "Child Welfare",
		Category:        "Social Welfare",
		EligibilityText: "Children below 18 from young families. Youth programs excluded.",
	}

	matched := Score(scheme, models.UserProfile{Age: intp(9)})

	var labels []string
	for _, f := range matched.MatchingFactors {
		labels = append(labels, f.Factor)
	}
	assert.Contains(t, labels, "Child Focused")
	assert.NotContains(t, labels, "Youth Focused")
	assert.NotContains(t, labels, "Senior Citizen")
}

func TestStructuredAgeRange(t *testing.T) {
	scheme := models.Scheme{
		ID:          "skill",
		Title:       "Skill Training",
		Category:    "Skill Development",
		Eligibility: models.EligibilityCriteria{MinAge: intp(15), MaxAge: intp(45)},
	}

	inRange := Score(scheme, models.UserProfile{Age: intp(30)})
	require.Len(t, inRange.MatchingFactors, 1)
	assert.Equal(t, "Age Eligibility", inRange.MatchingFactors[0].Factor)

	outOfRange := Score(scheme, models.UserProfile{Age: intp(50)})
	assert.Empty(t, outOfRange.MatchingFactors)
	assert.Equal(t, 0, outOfRange.Score)
}

func TestPopularityBonusIsExactlyFiveRawPoints(t *testing.T) {
	profile := models.UserProfile{Age: intp(30)}

	plain := farmScheme()
	popular := farmScheme()
	popular.IsPopular = true

	plainPoints, plainMax, _ := rawScore(&plain, &profile)
	popularPoints, popularMax, _ := rawScore(&popular, &profile)

	assert.Equal(t, plainPoints+5, popularPoints)
	assert.Equal(t, plainMax, popularMax)
}

func TestNeutralityOfAbsence(t *testing.T) {
	scheme := farmScheme()

	// Profile B omits marital status; profile A supplies one the scheme
	// says nothing about. The supplied-but-unmatched field may only lower
	// the normalized score, never raise it above the sparse profile's.
	sparse := models.UserProfile{Category: []string{"Agriculture"}}
	extended := sparse
	extended.MaritalStatus = "single"

	sparseScore := Score(scheme, sparse).Score
	extendedScore := Score(scheme, extended).Score

	assert.GreaterOrEqual(t, sparseScore, extendedScore)
}

func TestFactorsSortedByWeightDescending(t *testing.T) {
	profile := models.UserProfile{
		Age:        intp(30),
		Category:   []string{"Agriculture"},
		Occupation: "farmer",
		HasLand:    boolp(true),
		LandSize:   floatp(1.0),
	}

	matched := Score(farmScheme(), profile)
	require.NotEmpty(t, matched.MatchingFactors)
	for i := 1; i < len(matched.MatchingFactors); i++ {
		assert.GreaterOrEqual(t,
			matched.MatchingFactors[i-1].Weight,
			matched.MatchingFactors[i].Weight,
		)
	}
}

func boolp(v bool) *bool { return &v }
