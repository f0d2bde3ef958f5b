package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice mirrors the invoices table. invoice_number carries a unique index.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	SubscriptionID string          `db:"subscription_id"`
	InvoiceNumber  string          `db:"invoice_number"`
	Amount         decimal.Decimal `db:"amount"`
	Currency       string          `db:"currency"`
	Status         string          `db:"status"`
	DueDate        time.Time       `db:"due_date"`
	PaidDate       *time.Time      `db:"paid_date"`
	CustomerName   string          `db:"customer_name"`
	CustomerEmail  string          `db:"customer_email"`
	Notes          string          `db:"notes"`
	CreatedAt      time.Time       `db:"created_at"`
}
