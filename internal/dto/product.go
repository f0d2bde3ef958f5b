package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	StandardPrice decimal.Decimal `json:"standardPrice" binding:"required"`
	PlanType      string          `json:"planType" binding:"required,oneof=monthly yearly"`
	Status        string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	StandardPrice *decimal.Decimal `json:"standardPrice"`
	PlanType      *string          `json:"planType" binding:"omitempty,oneof=monthly yearly"`
	Status        *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	StandardPrice decimal.Decimal `json:"standardPrice"`
	PlanType      string          `json:"planType"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ProductID,
		Name:          p.Name,
		Description:   p.Description,
		StandardPrice: p.StandardPrice,
		PlanType:      string(p.PlanType),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain.Product.
func ToProductResponses(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
