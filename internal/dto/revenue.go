package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// CreateRevenueRequest defines the data needed to record a revenue manually.
type CreateRevenueRequest struct {
	ProductID      string          `json:"productId"`
	SubscriptionID string          `json:"subscriptionId"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency"`
	Description    string          `json:"description" binding:"required"`
	Type           string          `json:"type" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
}

// ListRevenuesParams defines query parameters for listing revenues.
type ListRevenuesParams struct {
	ProductID string     `form:"productId"`
	StartDate *time.Time `form:"startDate"`
	EndDate   *time.Time `form:"endDate"`
}

// RevenueResponse defines the data returned for a revenue record.
type RevenueResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"productId,omitempty"`
	SubscriptionID string          `json:"subscriptionId,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Description    string          `json:"description"`
	Type           string          `json:"type"`
	Date           time.Time       `json:"date"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToRevenueResponse converts a domain.Revenue to RevenueResponse.
func ToRevenueResponse(r *domain.Revenue) RevenueResponse {
	return RevenueResponse{
		ID:             r.RevenueID,
		ProductID:      r.ProductID,
		SubscriptionID: r.SubscriptionID,
		Amount:         r.Amount,
		Currency:       r.Currency,
		Description:    r.Description,
		Type:           r.Type,
		Date:           r.Date,
		CreatedAt:      r.CreatedAt,
	}
}

// ToRevenueResponses converts a slice of domain.Revenue.
func ToRevenueResponses(revenues []domain.Revenue) []RevenueResponse {
	res := make([]RevenueResponse, len(revenues))
	for i := range revenues {
		res[i] = ToRevenueResponse(&revenues[i])
	}
	return res
}
