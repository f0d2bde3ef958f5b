package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanType describes the billing cadence of a product.
type PlanType string

const (
	PlanMonthly PlanType = "monthly"
	PlanYearly  PlanType = "yearly"
)

// ProductStatus marks whether a product can be sold.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// Product is a sellable plan. Deactivating a product never cascades onto its
// subscriptions; deleting it cascades to dependent master accounts at the
// storage layer.
type Product struct {
	ProductID     string
	Name          string
	Description   string
	StandardPrice decimal.Decimal
	PlanType      PlanType
	Status        ProductStatus
	CreatedAt     time.Time
}
