package dto

import (
	"time"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	IsRead *bool `form:"isRead"`
}

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RelatedID string    `json:"relatedId,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.NotificationID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of domain.Notification.
func ToNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		res[i] = ToNotificationResponse(&notifications[i])
	}
	return res
}
