package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription mirrors the subscriptions table. The status column is the
// last-known derived value; reads always recompute it from end_date.
type Subscription struct {
	SubscriptionID   string          `db:"subscription_id"`
	ProductID        string          `db:"product_id"`
	MasterAccountID  string          `db:"master_account_id"`
	CustomerName     string          `db:"customer_name"`
	CustomerEmail    string          `db:"customer_email"`
	CustomerWhatsapp string          `db:"customer_whatsapp"`
	StartDate        time.Time       `db:"start_date"`
	EndDate          time.Time       `db:"end_date"`
	Status           string          `db:"status"`
	Price            decimal.Decimal `db:"price"`
	Currency         string          `db:"currency"`
	CouponCode       string          `db:"coupon_code"`
	Referrer         string          `db:"referrer"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
