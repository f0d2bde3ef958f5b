package repositories

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// ProductReader defines read operations for product data.
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves all products, newest first.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// SearchProducts matches name or description against the query string.
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product. Dependent master accounts cascade at
	// the storage layer.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
