package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for reports and cross-entity search.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the report and search routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	rg.GET("/reports/summary", h.getSummary)
	rg.GET("/search", h.search)
}

// getSummary godoc
// @Summary Dashboard summary report
// @Description Revenue and expense totals per currency, subscription counts per derived status, and per-account utilization
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryReport
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build summary report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// search godoc
// @Summary Cross-entity search
// @Description Case-insensitive substring search across products, subscriptions and invoices
// @Tags reports
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} dto.SearchResults
// @Failure 500 {object} map[string]string "Search failed"
// @Router /search [get]
func (h *reportingHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Query("q")

	results, err := h.reportingService.Search(c.Request.Context(), query)
	if err != nil {
		logger.Error("Search failed", slog.String("error", err.Error()), slog.String("query", query))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, results)
}
