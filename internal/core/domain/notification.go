package domain

import "time"

// NotificationType tags an alert and, together with RelatedID, forms the
// idempotence key for sweep-driven alerts: the reconciliation task never
// emits a second notification with the same (type, relatedId) pair.
type NotificationType string

const (
	// NotificationSubscriptionExpiring: a subscription ends tomorrow.
	NotificationSubscriptionExpiring NotificationType = "subscription_expiring"
	// NotificationSubscriptionExpired: a subscription has ended.
	NotificationSubscriptionExpired NotificationType = "subscription_expired"
	// NotificationAccountCapacity: a master account crossed the utilization threshold.
	NotificationAccountCapacity NotificationType = "account_capacity"
	// NotificationExpenseDue: an unpaid expense is due today or tomorrow.
	NotificationExpenseDue NotificationType = "expense_due"
	// NotificationInvoiceUnpaid: an unpaid invoice is past its due date.
	NotificationInvoiceUnpaid NotificationType = "invoice_unpaid"
)

// Notification is an alert record shown in the dashboard feed.
type Notification struct {
	NotificationID string
	Type           NotificationType
	Title          string
	Message        string
	RelatedID      string
	IsRead         bool
	CreatedAt      time.Time
}
