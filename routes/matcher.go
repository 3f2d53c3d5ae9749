package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prajwalng2/Major-Project-temp/internal/matcher"
	"github.com/Prajwalng2/Major-Project-temp/internal/telemetry"
	"github.com/Prajwalng2/Major-Project-temp/models"
	"github.com/Prajwalng2/Major-Project-temp/services"
	"github.com/Prajwalng2/Major-Project-temp/utils"
)

// MatchRequest carries the citizen's profile plus result refinements.
// The refinements mirror the result page controls: narrow to a category,
// re-sort, cap the list.
type MatchRequest struct {
	Profile    models.UserProfile `json:"profile"`
	Category   string             `json:"category,omitempty"`
	Sort       string             `json:"sort,omitempty"` // score (default), newest, deadline
	Limit      int                `json:"limit,omitempty"`
	ActiveOnly bool               `json:"activeOnly,omitempty"`
}

// SetupMatcherRoutes registers the profile matching endpoint.
func SetupMatcherRoutes(router *gin.Engine, catalog services.Catalog, metrics *telemetry.Metrics) {
	router.POST("/matcher/match", handleMatch(catalog, metrics))
}

func handleMatch(catalog services.Catalog, metrics *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid match request", gin.H{"error": err.Error()})
			return
		}

		schemes, err := catalog.All(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load schemes", nil)
			return
		}
		if req.ActiveOnly {
			schemes = filterActive(schemes)
		}

		if metrics != nil {
			metrics.RecordMatchRequest(len(schemes))
		}

		matches := matcher.Rank(schemes, req.Profile)
		matches = matcher.FilterByCategory(matches, req.Category)

		switch req.Sort {
		case "newest":
			matcher.SortByNewest(matches)
		case "deadline":
			matcher.SortByDeadline(matches)
		}

		if req.Limit > 0 && req.Limit < len(matches) {
			matches = matches[:req.Limit]
		}

		c.JSON(http.StatusOK, gin.H{
			"matches": matches,
			"total":   len(matches),
		})
	}
}
