package services

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

// ProductSvcFacade exposes product CRUD to handlers.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}
