package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
	"github.com/subtrack/subtrack_backend/internal/middleware"
)

// assistantHandler handles HTTP requests for the dashboard assistant.
type assistantHandler struct {
	assistantService portssvc.AssistantSvcFacade
}

// registerAssistantRoutes registers the assistant chat route.
func registerAssistantRoutes(rg *gin.RouterGroup, assistantService portssvc.AssistantSvcFacade) {
	h := &assistantHandler{assistantService: assistantService}

	rg.POST("/assistant/chat", h.chat)
}

// chat godoc
// @Summary Ask the dashboard assistant
// @Description Answers a business question with current entity data as context
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "User message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Assistant request failed"
// @Router /assistant/chat [post]
func (h *assistantHandler) chat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for assistant chat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	response, err := h.assistantService.Chat(c.Request.Context(), req)
	if err != nil {
		logger.Error("Assistant request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant request failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}
