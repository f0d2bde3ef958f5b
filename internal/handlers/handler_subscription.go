package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
	"github.com/subtrack/subtrack_backend/internal/middleware"
)

// subscriptionHandler handles HTTP requests related to subscriptions.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

// registerSubscriptionRoutes registers routes related to subscriptions.
func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := &subscriptionHandler{subscriptionService: subscriptionService}

	subscriptions := rg.Group("/subscriptions")
	{
		subscriptions.POST("", h.createSubscription)
		subscriptions.GET("", h.listSubscriptions)
		subscriptions.GET("/:id", h.getSubscriptionByID)
		subscriptions.PATCH("/:id", h.updateSubscription)
		subscriptions.DELETE("/:id", h.deleteSubscription)
		subscriptions.POST("/cleanup/expired", h.cleanupExpired)
		subscriptions.POST("/bulk-delete", h.bulkDeleteSubscriptions)
		subscriptions.POST("/bulk-update-status", h.bulkUpdateStatus)
	}
}

// createSubscription godoc
// @Summary Create a new subscription
// @Description Creates a subscription, reserves a seat on the master account, records revenue, and may emit a capacity alert
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body dto.CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} dto.SubscriptionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Master account not found"
// @Failure 500 {object} map[string]string "Failed to create subscription"
// @Router /subscriptions [post]
func (h *subscriptionHandler) createSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSubscription", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	subscription, err := h.subscriptionService.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Master account not found"})
		} else {
			logger.Error("Failed to create subscription in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubscriptionResponse(subscription))
}

// listSubscriptions godoc
// @Summary List subscriptions
// @Description Lists subscriptions with freshly derived status; the status filter applies after derivation
// @Tags subscriptions
// @Produce json
// @Param productId query string false "Filter by product"
// @Param masterAccountId query string false "Filter by master account"
// @Param status query string false "Filter by derived status (all, active, expiring_soon, expired)"
// @Success 200 {array} dto.SubscriptionResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list subscriptions"
// @Router /subscriptions [get]
func (h *subscriptionHandler) listSubscriptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSubscriptionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	subscriptions, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list subscriptions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscriptions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponses(subscriptions))
}

// getSubscriptionByID godoc
// @Summary Get a subscription by ID
// @Description Retrieves a subscription with freshly derived status
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 404 {object} map[string]string "Subscription not found"
// @Failure 500 {object} map[string]string "Failed to retrieve subscription"
// @Router /subscriptions/{id} [get]
func (h *subscriptionHandler) getSubscriptionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	subscriptionID := c.Param("id")

	subscription, err := h.subscriptionService.GetSubscriptionByID(c.Request.Context(), subscriptionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		} else {
			logger.Error("Failed to get subscription from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription))
}

// updateSubscription godoc
// @Summary Update a subscription
// @Description Applies a partial update; changing the master account moves the seat between accounts
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param subscription body dto.UpdateSubscriptionRequest true "Fields to update"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Subscription not found"
// @Failure 500 {object} map[string]string "Failed to update subscription"
// @Router /subscriptions/{id} [patch]
func (h *subscriptionHandler) updateSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	subscriptionID := c.Param("id")

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSubscription", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	subscription, err := h.subscriptionService.UpdateSubscription(c.Request.Context(), subscriptionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update subscription in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription))
}

// deleteSubscription godoc
// @Summary Delete a subscription
// @Description Removes the subscription and releases its seat on the master account
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Subscription not found"
// @Failure 500 {object} map[string]string "Failed to delete subscription"
// @Router /subscriptions/{id} [delete]
func (h *subscriptionHandler) deleteSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	subscriptionID := c.Param("id")

	if err := h.subscriptionService.DeleteSubscription(c.Request.Context(), subscriptionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		} else {
			logger.Error("Failed to delete subscription in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// cleanupExpired godoc
// @Summary Remove old expired subscriptions
// @Description Deletes every subscription whose end date is daysOld or more days in the past, releasing each seat
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param body body dto.CleanupExpiredRequest true "Age threshold in days"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to clean up subscriptions"
// @Router /subscriptions/cleanup/expired [post]
func (h *subscriptionHandler) cleanupExpired(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CleanupExpiredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CleanupExpired", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	removed, err := h.subscriptionService.CleanupExpired(c.Request.Context(), *req.DaysOld)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to clean up subscriptions in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean up subscriptions"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": removed})
}

// bulkDeleteSubscriptions godoc
// @Summary Bulk delete subscriptions
// @Description Deletes each id independently and reports how many succeeded
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param body body dto.BulkIDsRequest true "Subscription ids"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to delete subscriptions"
// @Router /subscriptions/bulk-delete [post]
func (h *subscriptionHandler) bulkDeleteSubscriptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkDeleteSubscriptions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deleted, err := h.subscriptionService.BulkDeleteSubscriptions(c.Request.Context(), req.IDs)
	if err != nil {
		logger.Error("Failed to bulk delete subscriptions in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscriptions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}

// bulkUpdateStatus godoc
// @Summary Bulk override subscription status hints
// @Description Overrides the stored status per id; reads keep deriving status from the end date
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param body body dto.BulkUpdateStatusRequest true "Subscription ids and status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update subscriptions"
// @Router /subscriptions/bulk-update-status [post]
func (h *subscriptionHandler) bulkUpdateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkUpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkUpdateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.subscriptionService.BulkUpdateStatus(c.Request.Context(), req.IDs, domain.SubscriptionStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to bulk update subscription status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscriptions"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updatedCount": updated})
}
