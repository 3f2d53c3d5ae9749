package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prajwalng2/Major-Project-temp/internal/search"
	"github.com/Prajwalng2/Major-Project-temp/internal/telemetry"
	"github.com/Prajwalng2/Major-Project-temp/services"
	"github.com/Prajwalng2/Major-Project-temp/utils"
)

// SetupSearchRoutes registers the free-text catalog search endpoint.
func SetupSearchRoutes(router *gin.Engine, catalog services.Catalog, metrics *telemetry.Metrics) {
	router.GET("/search", handleSearch(catalog, metrics))
}

func handleSearch(catalog services.Catalog, metrics *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		schemes, err := catalog.All(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load schemes", nil)
			return
		}

		filters := search.Filters{
			Category: c.Query("category"),
			State:    c.Query("state"),
		}
		if active := c.Query("active"); active != "" {
			v := active == "true"
			filters.Active = &v
		}

		query := c.Query("q")
		results := search.Query(schemes, query, filters)

		if limit := parseLimit(c.Query("limit")); limit > 0 && limit < len(results) {
			results = results[:limit]
		}

		if metrics != nil {
			metrics.RecordSearchRequest(len(results))
		}

		c.JSON(http.StatusOK, gin.H{
			"query":   query,
			"schemes": results,
			"total":   len(results),
		})
	}
}
