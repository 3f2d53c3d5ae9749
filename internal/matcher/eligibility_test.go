package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

func intp(v int) *int          { return &v }
func floatp(v float64) *float64 { return &v }

func TestNormalizeEligibilityPlainString(t *testing.T) {
	view := NormalizeEligibility("All farmers with cultivable land.", "")

	assert.Equal(t, "All farmers with cultivable land.", view.Text)
	assert.False(t, view.HasAgeRange())
	assert.Nil(t, view.MaxIncome)
}

func TestNormalizeEligibilityTextFieldWins(t *testing.T) {
	view := NormalizeEligibility("short form", "The canonical display text.")

	assert.Equal(t, "The canonical display text.", view.Text)
}

func TestNormalizeEligibilityJSONString(t *testing.T) {
	view := NormalizeEligibility(`{"minAge": 10, "maxAge": 65, "states": ["all"]}`, "Any citizen.")

	require.NotNil(t, view.MinAge)
	require.NotNil(t, view.MaxAge)
	assert.Equal(t, 10, *view.MinAge)
	assert.Equal(t, 65, *view.MaxAge)
	assert.Equal(t, []string{"all"}, view.States)
	assert.Equal(t, "Any citizen.", view.Text)
}

func TestNormalizeEligibilityMalformedJSONDegradesToText(t *testing.T) {
	view := NormalizeEligibility(`{not valid json`, "")

	assert.False(t, view.HasAgeRange())
	assert.Equal(t, `{not valid json`, view.Text)
}

func TestNormalizeEligibilityStructuredCriteria(t *testing.T) {
	criteria := models.EligibilityCriteria{
		MaxIncome: floatp(1800000),
		Category:  []string{"ews", "lig"},
		Gender:    []string{"female"},
	}

	view := NormalizeEligibility(criteria, "")
	require.NotNil(t, view.MaxIncome)
	assert.Equal(t, float64(1800000), *view.MaxIncome)
	assert.Equal(t, []string{"ews", "lig"}, view.Category)
	assert.Equal(t, []string{"female"}, view.Genders)

	// Pointer form resolves identically.
	viewPtr := NormalizeEligibility(&criteria, "")
	assert.Equal(t, view.Category, viewPtr.Category)
}

func TestNormalizeEligibilityBSONDocument(t *testing.T) {
	// The Mongo driver decodes embedded documents as primitive.D with
	// int32 numbers and primitive.A arrays.
	doc := primitive.D{
		{Key: "minAge", Value: int32(60)},
		{Key: "states", Value: primitive.A{"Karnataka", "Kerala"}},
	}

	view := NormalizeEligibility(doc, "")
	require.NotNil(t, view.MinAge)
	assert.Equal(t, 60, *view.MinAge)
	assert.Equal(t, []string{"Karnataka", "Kerala"}, view.States)
}

func TestNormalizeEligibilityGenericMap(t *testing.T) {
	// JSON round trips (the Redis cache) produce map[string]any with
	// float64 numbers.
	m := map[string]any{
		"maxAge":    float64(45),
		"maxIncome": float64(250000),
		"education": []any{"school", "graduate"},
	}

	view := NormalizeEligibility(m, "")
	require.NotNil(t, view.MaxAge)
	require.NotNil(t, view.MaxIncome)
	assert.Equal(t, 45, *view.MaxAge)
	assert.Equal(t, float64(250000), *view.MaxIncome)
	assert.Equal(t, []string{"school", "graduate"}, view.Education)
}

func TestNormalizeEligibilityNil(t *testing.T) {
	view := NormalizeEligibility(nil, "Anyone may apply.")

	assert.Equal(t, "Anyone may apply.", view.Text)
	assert.False(t, view.HasAgeRange())
}
