package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors the products table.
type Product struct {
	ProductID     string          `db:"product_id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	StandardPrice decimal.Decimal `db:"standard_price"`
	PlanType      string          `db:"plan_type"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}
