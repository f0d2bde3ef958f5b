package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	revenueRepo portsrepo.RevenueRepositoryFacade
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceRevenueRepository wires the revenue repository used by mark-paid
// to record the payment as income
func WithInvoiceRevenueRepository(repo portsrepo.RevenueRepositoryFacade) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.revenueRepo = repo
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{invoiceRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	status := domain.InvoiceStatus(req.Status)
	if req.Status == "" {
		status = domain.InvoiceUnpaid
	}

	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		SubscriptionID: req.SubscriptionID,
		InvoiceNumber:  req.InvoiceNumber,
		Amount:         req.Amount,
		Currency:       currency,
		Status:         status,
		DueDate:        req.DueDate,
		PaidDate:       req.PaidDate,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		Notes:          req.Notes,
		CreatedAt:      time.Now(),
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogDebug(ctx, "Rejected duplicate invoice number",
				slog.String("invoice_number", invoice.InvoiceNumber))
		} else {
			s.LogError(ctx, err, "Failed to save invoice in repository",
				slog.String("invoice_id", invoice.InvoiceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created successfully",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID in repository",
				slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, filter.Status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices from repository")
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice for update",
				slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	if req.SubscriptionID != nil {
		invoice.SubscriptionID = *req.SubscriptionID
	}
	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}
	if req.Currency != nil {
		invoice.Currency = *req.Currency
	}
	if req.Status != nil {
		invoice.Status = domain.InvoiceStatus(*req.Status)
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if req.PaidDate != nil {
		invoice.PaidDate = req.PaidDate
	}
	if req.CustomerName != nil {
		invoice.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		invoice.CustomerEmail = *req.CustomerEmail
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice in repository",
			slog.String("invoice_id", invoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated successfully", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

// MarkInvoicePaid sets the invoice to paid, stamps the payment date, and
// records the payment in the revenue ledger. Marking an already paid invoice
// is a no-op returning the invoice unchanged.
func (s *invoiceService) MarkInvoicePaid(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice for mark-paid",
				slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	if invoice.Status == domain.InvoicePaid {
		return invoice, nil
	}

	now := time.Now()
	invoice.Status = domain.InvoicePaid
	invoice.PaidDate = &now

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to mark invoice paid in repository",
			slog.String("invoice_id", invoiceID))
		return nil, err
	}

	if s.revenueRepo != nil {
		revenue := domain.Revenue{
			RevenueID:      uuid.NewString(),
			SubscriptionID: invoice.SubscriptionID,
			Amount:         invoice.Amount,
			Currency:       invoice.Currency,
			Description:    fmt.Sprintf("Invoice %s paid by %s", invoice.InvoiceNumber, invoice.CustomerName),
			Type:           "invoice",
			Date:           now,
			CreatedAt:      now,
		}
		if err := s.revenueRepo.SaveRevenue(ctx, revenue); err != nil {
			s.LogError(ctx, err, "Failed to record invoice payment revenue",
				slog.String("invoice_id", invoiceID))
		}
	}

	s.LogInfo(ctx, "Invoice marked paid",
		slog.String("invoice_id", invoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice in repository",
				slog.String("invoice_id", invoiceID))
		}
		return err
	}

	s.LogInfo(ctx, "Invoice deleted successfully", slog.String("invoice_id", invoiceID))
	return nil
}
