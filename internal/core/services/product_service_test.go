package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/core/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockRepo)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:          "Streaming Plus",
		StandardPrice: decimal.NewFromInt(15),
		PlanType:      "monthly",
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == req.Name && p.Status == domain.ProductActive
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.Equal(domain.ProductActive, product.Status)
	suite.WithinDuration(time.Now(), product.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_PartialFields() {
	ctx := context.Background()
	testID := uuid.NewString()
	stored := &domain.Product{
		ProductID:     testID,
		Name:          "Old Name",
		StandardPrice: decimal.NewFromInt(10),
		PlanType:      domain.PlanMonthly,
		Status:        domain.ProductActive,
	}
	newName := "New Name"

	suite.mockRepo.On("FindProductByID", ctx, testID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == newName && p.StandardPrice.Equal(decimal.NewFromInt(10))
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, testID, dto.UpdateProductRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, product.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestGetProductByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindProductByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.GetProductByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProductServiceTestSuite) TestListProducts_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListProducts", ctx).Return(nil, nil).Once()

	products, err := suite.service.ListProducts(ctx)

	suite.Require().NoError(err)
	suite.NotNil(products)
	suite.Empty(products)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_RepoError() {
	ctx := context.Background()
	testID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteProduct", ctx, testID).Return(expectedErr).Once()

	err := suite.service.DeleteProduct(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
