package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prajwalng2/Major-Project-temp/internal/config"
	"github.com/Prajwalng2/Major-Project-temp/models"
	"github.com/Prajwalng2/Major-Project-temp/services"
	"github.com/Prajwalng2/Major-Project-temp/utils"
)

// SetupApplicationRoutes registers the application submission endpoints.
func SetupApplicationRoutes(router *gin.Engine, cfg *config.Config, catalog services.Catalog, applications *services.ApplicationService) {
	router.POST("/applications", handleSubmitApplication(catalog, applications))
	router.POST("/applications/:id/documents", handleUploadDocument(cfg, applications))
	router.GET("/applications/:id", handleGetApplication(applications))
}

func handleSubmitApplication(catalog services.Catalog, applications *services.ApplicationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ApplicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid application request", gin.H{"error": err.Error()})
			return
		}

		scheme, err := catalog.ByID(c.Request.Context(), req.SchemeID)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load scheme", nil)
			return
		}
		if scheme == nil {
			utils.RespondWithNotFound(c, "Scheme not found")
			return
		}
		if !scheme.IsActive() {
			utils.RespondWithError(c, http.StatusBadRequest, "scheme_closed",
				"This scheme is not accepting applications", gin.H{"scheme_id": scheme.ID})
			return
		}

		app, err := applications.Submit(c.Request.Context(), req, *scheme)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to submit application", nil)
			return
		}

		c.JSON(http.StatusCreated, app)
	}
}

func handleUploadDocument(cfg *config.Config, applications *services.ApplicationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		applicationID := c.Param("id")

		app, err := applications.GetByID(c.Request.Context(), applicationID)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load application", nil)
			return
		}
		if app == nil {
			utils.RespondWithNotFound(c, "Application not found")
			return
		}

		file, err := c.FormFile("document")
		if err != nil {
			utils.RespondWithBadRequest(c, "No document uploaded", nil)
			return
		}
		if file.Size > cfg.MaxFileSize {
			utils.RespondWithError(c, http.StatusRequestEntityTooLarge, "file_too_large",
				"Document exceeds maximum size", gin.H{"max_size": cfg.MaxFileSize})
			return
		}
		if !isAllowedType(file.Header.Get("Content-Type"), cfg.AllowedTypes) {
			utils.RespondWithBadRequest(c, "Unsupported document type", gin.H{
				"allowed_types": cfg.AllowedTypes,
			})
			return
		}

		src, err := file.Open()
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to read document", nil)
			return
		}
		defer src.Close()

		documentType := c.PostForm("type")
		if documentType == "" {
			documentType = "supporting"
		}

		doc, err := applications.UploadDocument(c.Request.Context(), applicationID, documentType, file.Filename, file.Size, src)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to store document", nil)
			return
		}

		c.JSON(http.StatusCreated, doc)
	}
}

func handleGetApplication(applications *services.ApplicationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		app, err := applications.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load application", nil)
			return
		}
		if app == nil {
			utils.RespondWithNotFound(c, "Application not found")
			return
		}
		c.JSON(http.StatusOK, app)
	}
}

func isAllowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}
