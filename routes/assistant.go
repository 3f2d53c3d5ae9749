package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prajwalng2/Major-Project-temp/internal/ai"
	"github.com/Prajwalng2/Major-Project-temp/internal/search"
	"github.com/Prajwalng2/Major-Project-temp/services"
	"github.com/Prajwalng2/Major-Project-temp/utils"
)

// assistantContextSize caps how many schemes ground the model per question.
const assistantContextSize = 5

type AskRequest struct {
	Question string `json:"question" binding:"required,min=3,max=500"`
}

// SetupAssistantRoutes registers the scheme Q&A endpoint. A nil assistant
// means no API key was configured and the endpoint reports unavailable.
func SetupAssistantRoutes(router *gin.Engine, assistant *ai.Assistant, catalog services.Catalog) {
	router.POST("/assistant/ask", handleAsk(assistant, catalog))
}

func handleAsk(assistant *ai.Assistant, catalog services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if assistant == nil {
			utils.RespondWithServiceUnavailable(c, "Assistant is not configured")
			return
		}

		var req AskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid question", gin.H{"error": err.Error()})
			return
		}

		schemes, err := catalog.All(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load schemes", nil)
			return
		}

		// Ground the model on the schemes most relevant to the question.
		relevant := search.Query(schemes, req.Question, search.Filters{})
		if len(relevant) > assistantContextSize {
			relevant = relevant[:assistantContextSize]
		}

		answer, err := assistant.Ask(c.Request.Context(), req.Question, relevant)
		if err != nil {
			utils.RespondWithInternalError(c, "Assistant request failed", nil)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"answer":  answer,
			"schemes": relevant,
		})
	}
}
