package models

import "time"

// Notification mirrors the notifications table.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	Type           string    `db:"type"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	RelatedID      string    `db:"related_id"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
