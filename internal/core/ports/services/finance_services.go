package services

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
	"github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

// RevenueSvcFacade manages the append-only revenue ledger.
type RevenueSvcFacade interface {
	RecordRevenue(ctx context.Context, req dto.CreateRevenueRequest) (*domain.Revenue, error)
	ListRevenues(ctx context.Context, filter repositories.RevenueFilter) ([]domain.Revenue, error)
	DeleteRevenue(ctx context.Context, revenueID string) error
}

// ExpenseSvcFacade manages recurring and one-off expenses.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter repositories.ExpenseFilter) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

// InvoiceSvcFacade manages invoices and their payment state.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, filter repositories.InvoiceFilter) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	// MarkInvoicePaid sets status to paid and stamps paidDate, and records
	// the matching revenue entry.
	MarkInvoicePaid(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
}
