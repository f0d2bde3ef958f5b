package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/core/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockInvoiceRepository
	mockRevenueRepo *MockRevenueRepository
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockRevenueRepo = new(MockRevenueRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo,
		services.WithInvoiceRevenueRepository(suite.mockRevenueRepo),
	)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DefaultsToUnpaid() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-001",
		Amount:        decimal.NewFromInt(250),
		DueDate:       time.Now().AddDate(0, 0, 14),
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
	}

	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.InvoiceUnpaid && inv.Currency == "USD" && inv.InvoiceNumber == "INV-001"
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal(domain.InvoiceUnpaid, invoice.Status)
	suite.Nil(invoice.PaidDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumber() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-001",
		Amount:        decimal.NewFromInt(100),
		DueDate:       time.Now().AddDate(0, 0, 7),
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
	}

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(apperrors.ErrDuplicate).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *InvoiceServiceTestSuite) TestMarkInvoicePaid_StampsDateAndRecordsRevenue() {
	ctx := context.Background()
	testID := uuid.NewString()
	subscriptionID := uuid.NewString()
	stored := &domain.Invoice{
		InvoiceID:      testID,
		SubscriptionID: subscriptionID,
		InvoiceNumber:  "INV-042",
		Amount:         decimal.NewFromInt(99),
		Currency:       "EUR",
		Status:         domain.InvoiceUnpaid,
		CustomerName:   "Grace Hopper",
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, testID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.InvoicePaid && inv.PaidDate != nil
	})).Return(nil).Once()
	suite.mockRevenueRepo.On("SaveRevenue", ctx, mock.MatchedBy(func(r domain.Revenue) bool {
		return r.SubscriptionID == subscriptionID &&
			r.Amount.Equal(decimal.NewFromInt(99)) &&
			r.Currency == "EUR" &&
			r.Type == "invoice"
	})).Return(nil).Once()

	invoice, err := suite.service.MarkInvoicePaid(ctx, testID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, invoice.Status)
	suite.Require().NotNil(invoice.PaidDate)
	suite.WithinDuration(time.Now(), *invoice.PaidDate, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRevenueRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestMarkInvoicePaid_AlreadyPaidIsNoOp() {
	ctx := context.Background()
	testID := uuid.NewString()
	paidAt := time.Now().AddDate(0, 0, -2)
	stored := &domain.Invoice{
		InvoiceID: testID,
		Status:    domain.InvoicePaid,
		PaidDate:  &paidAt,
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, testID).Return(stored, nil).Once()

	invoice, err := suite.service.MarkInvoicePaid(ctx, testID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, invoice.Status)
	suite.Equal(&paidAt, invoice.PaidDate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
	suite.mockRevenueRepo.AssertNotCalled(suite.T(), "SaveRevenue", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestMarkInvoicePaid_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.MarkInvoicePaid(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_EmptyResultIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListInvoices", ctx, domain.InvoiceUnpaid).Return(nil, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx, portsrepo.InvoiceFilter{Status: domain.InvoiceUnpaid})

	suite.Require().NoError(err)
	suite.NotNil(invoices)
	suite.Empty(invoices)
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
