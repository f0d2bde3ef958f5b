package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueTypeSubscription marks revenue rows created automatically when a
// subscription is sold. Manually recorded revenues carry caller-supplied types.
const RevenueTypeSubscription = "subscription"

// Revenue is an income record, optionally linked to a product and/or the
// subscription that produced it. Revenues are append-only: no update
// operation exists, only delete.
type Revenue struct {
	RevenueID      string
	ProductID      string
	SubscriptionID string
	Amount         decimal.Decimal
	Currency       string
	Description    string
	Type           string
	Date           time.Time
	CreatedAt      time.Time
}
