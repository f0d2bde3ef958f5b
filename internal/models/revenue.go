package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue mirrors the revenues table. product_id and subscription_id are
// nullable (set null when the referenced row is deleted).
type Revenue struct {
	RevenueID      string          `db:"revenue_id"`
	ProductID      string          `db:"product_id"`
	SubscriptionID string          `db:"subscription_id"`
	Amount         decimal.Decimal `db:"amount"`
	Currency       string          `db:"currency"`
	Description    string          `db:"description"`
	Type           string          `db:"type"`
	Date           time.Time       `db:"date"`
	CreatedAt      time.Time       `db:"created_at"`
}
