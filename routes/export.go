package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Prajwalng2/Major-Project-temp/internal/logger"
	"github.com/Prajwalng2/Major-Project-temp/services"
	"github.com/Prajwalng2/Major-Project-temp/utils"
)

// SetupExportRoutes registers the admin catalog export endpoint.
func SetupExportRoutes(router *gin.Engine, exportService *services.ExportService) {
	router.GET("/admin/export", handleCatalogExport(exportService))
}

func handleCatalogExport(exportService *services.ExportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := exportService.StreamCatalogExport(c); err != nil {
			logger.Error("Catalog export failed", "error", err)
			utils.RespondWithInternalError(c, "Failed to generate export", nil)
		}
	}
}
