package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

func TestRelatedPrefersSameCategory(t *testing.T) {
	current := models.Scheme{
		ID:       "pm-kisan",
		Title:    "Farmer Income Support",
		Category: "Agriculture",
		Ministry: "Ministry of Agriculture",
		Tags:     []string{"farmers"},
	}
	catalog := []models.Scheme{
		current,
		{ID: "crop-insurance", Title: "Crop Insurance for Farmers", Category: "Agriculture", Ministry: "Ministry of Agriculture", Tags: []string{"farmers", "insurance"}},
		{ID: "health", Title: "Health Cover", Category: "Health"},
	}

	related := Related(current, catalog, 2)
	require.NotEmpty(t, related)
	assert.Equal(t, "crop-insurance", related[0].ID)
}

func TestRelatedExcludesSelf(t *testing.T) {
	current := models.Scheme{ID: "only", Title: "Only Scheme", Category: "Health"}

	related := Related(current, []models.Scheme{current}, 3)
	assert.Empty(t, related)
}

func TestRelatedDefaultLimit(t *testing.T) {
	current := models.Scheme{ID: "x", Title: "X", Category: "Finance"}
	catalog := []models.Scheme{current}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		catalog = append(catalog, models.Scheme{ID: id, Title: id, Category: "Finance"})
	}

	related := Related(current, catalog, 0)
	assert.Len(t, related, 3)
}
