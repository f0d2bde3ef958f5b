package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
	"github.com/subtrack/subtrack_backend/internal/middleware"
)

// revenueHandler handles HTTP requests related to revenues.
type revenueHandler struct {
	revenueService portssvc.RevenueSvcFacade
}

// registerRevenueRoutes registers routes related to revenues.
func registerRevenueRoutes(rg *gin.RouterGroup, revenueService portssvc.RevenueSvcFacade) {
	h := &revenueHandler{revenueService: revenueService}

	revenues := rg.Group("/revenues")
	{
		revenues.POST("", h.recordRevenue)
		revenues.GET("", h.listRevenues)
		revenues.DELETE("/:id", h.deleteRevenue)
	}
}

// recordRevenue godoc
// @Summary Record a revenue entry
// @Tags revenues
// @Accept json
// @Produce json
// @Param revenue body dto.CreateRevenueRequest true "Revenue details"
// @Success 201 {object} dto.RevenueResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record revenue"
// @Router /revenues [post]
func (h *revenueHandler) recordRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordRevenue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	revenue, err := h.revenueService.RecordRevenue(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to record revenue in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record revenue"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRevenueResponse(revenue))
}

// listRevenues godoc
// @Summary List revenues
// @Tags revenues
// @Produce json
// @Param productId query string false "Filter by product"
// @Param startDate query string false "Inclusive range start (RFC 3339)"
// @Param endDate query string false "Inclusive range end (RFC 3339)"
// @Success 200 {array} dto.RevenueResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list revenues"
// @Router /revenues [get]
func (h *revenueHandler) listRevenues(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRevenuesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := portsrepo.RevenueFilter{
		ProductID: params.ProductID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	revenues, err := h.revenueService.ListRevenues(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list revenues from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list revenues"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueResponses(revenues))
}

// deleteRevenue godoc
// @Summary Delete a revenue entry
// @Tags revenues
// @Produce json
// @Param id path string true "Revenue ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Revenue not found"
// @Failure 500 {object} map[string]string "Failed to delete revenue"
// @Router /revenues/{id} [delete]
func (h *revenueHandler) deleteRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	revenueID := c.Param("id")

	if err := h.revenueService.DeleteRevenue(c.Request.Context(), revenueID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Revenue not found"})
		} else {
			logger.Error("Failed to delete revenue in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete revenue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
