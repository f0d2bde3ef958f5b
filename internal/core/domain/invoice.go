package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// ValidInvoiceStatus reports whether s is one of the known status values.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceUnpaid, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// Invoice is a billable document, optionally linked to a subscription.
// InvoiceNumber is unique across the system.
type Invoice struct {
	InvoiceID      string
	SubscriptionID string
	InvoiceNumber  string
	Amount         decimal.Decimal
	Currency       string
	Status         InvoiceStatus
	DueDate        time.Time
	PaidDate       *time.Time
	CustomerName   string
	CustomerEmail  string
	Notes          string
	CreatedAt      time.Time
}
