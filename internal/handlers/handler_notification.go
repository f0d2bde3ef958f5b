package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
	"github.com/subtrack/subtrack_backend/internal/middleware"
)

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := &notificationHandler{notificationService: notificationService}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.PATCH("/:id/read", h.markNotificationRead)
		notifications.POST("/mark-all-read", h.markAllNotificationsRead)
		// Alias kept for older dashboard clients.
		notifications.PATCH("/read-all", h.markAllNotificationsRead)
		notifications.DELETE("/:id", h.deleteNotification)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param isRead query bool false "Filter by read state; isRead=false returns unread only"
// @Success 200 {array} dto.NotificationResponse
// @Failure 500 {object} map[string]string "Failed to list notifications"
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	unreadOnly := params.IsRead != nil && !*params.IsRead
	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), unreadOnly)
	if err != nil {
		logger.Error("Failed to list notifications from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponses(notifications))
}

// markNotificationRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Failed to mark notification read"
// @Router /notifications/{id}/read [patch]
func (h *notificationHandler) markNotificationRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID := c.Param("id")

	if err := h.notificationService.MarkNotificationRead(c.Request.Context(), notificationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			logger.Error("Failed to mark notification read in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// markAllNotificationsRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Failed to mark notifications read"
// @Router /notifications/mark-all-read [post]
func (h *notificationHandler) markAllNotificationsRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	count, err := h.notificationService.MarkAllNotificationsRead(c.Request.Context())
	if err != nil {
		logger.Error("Failed to mark all notifications read in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updatedCount": count})
}

// deleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Failed to delete notification"
// @Router /notifications/{id} [delete]
func (h *notificationHandler) deleteNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID := c.Param("id")

	if err := h.notificationService.DeleteNotification(c.Request.Context(), notificationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			logger.Error("Failed to delete notification in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
