package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

// productService implements the ProductSvcFacade interface
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service
func NewProductService(repo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: repo}
}

// Ensure productService implements the ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	status := domain.ProductStatus(req.Status)
	if req.Status == "" {
		status = domain.ProductActive
	}

	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		StandardPrice: req.StandardPrice,
		PlanType:      domain.PlanType(req.PlanType),
		Status:        status,
		CreatedAt:     time.Now(),
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product in repository",
			slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product created successfully",
		slog.String("product_id", product.ProductID),
		slog.String("name", product.Name))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID in repository",
				slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products from repository")
		return nil, err
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product for update",
				slog.String("product_id", productID))
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.StandardPrice != nil {
		product.StandardPrice = *req.StandardPrice
	}
	if req.PlanType != nil {
		product.PlanType = domain.PlanType(*req.PlanType)
	}
	if req.Status != nil {
		product.Status = domain.ProductStatus(*req.Status)
	}

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product in repository",
			slog.String("product_id", productID))
		return nil, err
	}

	s.LogInfo(ctx, "Product updated successfully", slog.String("product_id", productID))
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete product in repository",
				slog.String("product_id", productID))
		}
		return err
	}

	s.LogInfo(ctx, "Product deleted successfully", slog.String("product_id", productID))
	return nil
}
