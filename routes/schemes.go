package routes

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Prajwalng2/Major-Project-temp/internal/matcher"
	"github.com/Prajwalng2/Major-Project-temp/internal/search"
	"github.com/Prajwalng2/Major-Project-temp/models"
	"github.com/Prajwalng2/Major-Project-temp/services"
	"github.com/Prajwalng2/Major-Project-temp/utils"
)

// SetupSchemeRoutes registers the catalog browsing endpoints.
func SetupSchemeRoutes(router *gin.Engine, catalog services.Catalog) {
	router.GET("/schemes", handleListSchemes(catalog))
	router.GET("/schemes/featured", handleFeaturedSchemes(catalog))
	router.GET("/schemes/categories", handleSchemeCategories(catalog))
	router.GET("/schemes/:id", handleGetScheme(catalog))
	router.GET("/schemes/:id/related", handleRelatedSchemes(catalog))
}

// handleListSchemes serves the filtered catalog. Filters: category, state,
// active; sort: newest or deadline (default is popular-first).
func handleListSchemes(catalog services.Catalog) gin.HandlerFunc {
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

		// Empty query: search degrades to filter + popular-first ordering.
		result := search.Query(schemes, "", filters)

		switch c.Query("sort") {
		case "newest":
			matcher.SortSchemesByNewest(result)
		case "deadline":
			matcher.SortSchemesByDeadline(result)
		}

		if limit := parseLimit(c.Query("limit")); limit > 0 && limit < len(result) {
			result = result[:limit]
		}

		c.JSON(http.StatusOK, gin.H{
			"schemes": result,
			"total":   len(result),
		})
	}
}

func handleFeaturedSchemes(catalog services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		featured, err := catalog.Featured(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load featured schemes", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"schemes": featured,
			"total":   len(featured),
		})
	}
}

// handleSchemeCategories returns the distinct categories with counts,
// sorted alphabetically.
func handleSchemeCategories(catalog services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		schemes, err := catalog.All(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load schemes", nil)
			return
		}

		counts := map[string]int{}
		for _, s := range schemes {
			if strings.TrimSpace(s.Category) != "" {
				counts[s.Category]++
			}
		}

		type categoryCount struct {
			Category string `json:"category"`
			Count    int    `json:"count"`
		}
		categories := make([]categoryCount, 0, len(counts))
		for name, count := range counts {
			categories = append(categories, categoryCount{Category: name, Count: count})
		}
		sort.Slice(categories, func(i, j int) bool {
			return categories[i].Category < categories[j].Category
		})

		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func handleGetScheme(catalog services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, err := catalog.ByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load scheme", nil)
			return
		}
		if scheme == nil {
			utils.RespondWithNotFound(c, "Scheme not found")
			return
		}
		c.JSON(http.StatusOK, scheme)
	}
}

func handleRelatedSchemes(catalog services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, err := catalog.ByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load scheme", nil)
			return
		}
		if scheme == nil {
			utils.RespondWithNotFound(c, "Scheme not found")
			return
		}

		schemes, err := catalog.All(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load schemes", nil)
			return
		}

		limit := parseLimit(c.Query("limit"))
		related := matcher.Related(*scheme, schemes, limit)
		c.JSON(http.StatusOK, gin.H{
			"schemes": related,
			"total":   len(related),
		})
	}
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// filterActive keeps only schemes open for applications.
func filterActive(schemes []models.Scheme) []models.Scheme {
	active := make([]models.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if s.IsActive() {
			active = append(active, s)
		}
	}
	return active
}
