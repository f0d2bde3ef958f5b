package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// CreateSubscriptionRequest defines the data needed to create a subscription.
// EndDate must be strictly after StartDate; the check runs before any storage
// call.
type CreateSubscriptionRequest struct {
	ProductID        string          `json:"productId" binding:"required"`
	MasterAccountID  string          `json:"masterAccountId" binding:"required"`
	CustomerName     string          `json:"customerName" binding:"required"`
	CustomerEmail    string          `json:"customerEmail" binding:"required,email"`
	CustomerWhatsapp string          `json:"customerWhatsapp"`
	StartDate        time.Time       `json:"startDate" binding:"required"`
	EndDate          time.Time       `json:"endDate" binding:"required,gtfield=StartDate"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	Currency         string          `json:"currency"`
	CouponCode       string          `json:"couponCode"`
	Referrer         string          `json:"referrer"`
}

// UpdateSubscriptionRequest defines the data allowed for updating a
// subscription. Any subset of fields may be present. A status override is
// only a hint: the next read or sweep re-derives status from the end date.
type UpdateSubscriptionRequest struct {
	ProductID        *string          `json:"productId"`
	MasterAccountID  *string          `json:"masterAccountId"`
	CustomerName     *string          `json:"customerName"`
	CustomerEmail    *string          `json:"customerEmail" binding:"omitempty,email"`
	CustomerWhatsapp *string          `json:"customerWhatsapp"`
	StartDate        *time.Time       `json:"startDate"`
	EndDate          *time.Time       `json:"endDate"`
	Status           *string          `json:"status" binding:"omitempty,oneof=active expiring_soon expired"`
	Price            *decimal.Decimal `json:"price"`
	Currency         *string          `json:"currency"`
	CouponCode       *string          `json:"couponCode"`
	Referrer         *string          `json:"referrer"`
}

// ListSubscriptionsParams defines query parameters for listing subscriptions.
// The status filter is applied after derivation.
type ListSubscriptionsParams struct {
	ProductID       string `form:"productId"`
	MasterAccountID string `form:"masterAccountId"`
	Status          string `form:"status" binding:"omitempty,oneof=all active expiring_soon expired"`
}

// CleanupExpiredRequest drives the expired-subscription cleanup. DaysOld is a
// pointer so an explicit 0 still satisfies "required".
type CleanupExpiredRequest struct {
	DaysOld *int `json:"daysOld" binding:"required,min=0"`
}

// BulkIDsRequest carries the id list for bulk operations.
type BulkIDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// BulkUpdateStatusRequest carries the id list and status for bulk overrides.
type BulkUpdateStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1"`
	Status string   `json:"status" binding:"required,oneof=active expiring_soon expired"`
}

// SubscriptionResponse defines the data returned for a subscription. Status
// is always the freshly derived value.
type SubscriptionResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"productId"`
	MasterAccountID  string          `json:"masterAccountId"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	CustomerWhatsapp string          `json:"customerWhatsapp,omitempty"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	Status           string          `json:"status"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	CouponCode       string          `json:"couponCode,omitempty"`
	Referrer         string          `json:"referrer,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ToSubscriptionResponse converts a domain.Subscription to SubscriptionResponse.
func ToSubscriptionResponse(s *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:               s.SubscriptionID,
		ProductID:        s.ProductID,
		MasterAccountID:  s.MasterAccountID,
		CustomerName:     s.CustomerName,
		CustomerEmail:    s.CustomerEmail,
		CustomerWhatsapp: s.CustomerWhatsapp,
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
		Status:           string(s.Status),
		Price:            s.Price,
		Currency:         s.Currency,
		CouponCode:       s.CouponCode,
		Referrer:         s.Referrer,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToSubscriptionResponses converts a slice of domain.Subscription.
func ToSubscriptionResponses(subs []domain.Subscription) []SubscriptionResponse {
	res := make([]SubscriptionResponse, len(subs))
	for i := range subs {
		res[i] = ToSubscriptionResponse(&subs[i])
	}
	return res
}
