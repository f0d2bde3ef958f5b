package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// RevenueFilter narrows revenue list queries. Zero-valued fields are ignored.
type RevenueFilter struct {
	ProductID string
	StartDate *time.Time
	EndDate   *time.Time
}

// RevenueRepositoryFacade defines operations for revenue data. Revenues are
// append-only: no update operation exists.
type RevenueRepositoryFacade interface {
	// ListRevenues retrieves revenues matching the filter, most recent date first.
	ListRevenues(ctx context.Context, filter RevenueFilter) ([]domain.Revenue, error)

	// SaveRevenue persists a new revenue record.
	SaveRevenue(ctx context.Context, revenue domain.Revenue) error

	// DeleteRevenue removes a revenue record.
	DeleteRevenue(ctx context.Context, revenueID string) error
}

// ExpenseFilter narrows expense list queries.
type ExpenseFilter struct {
	ProductID string
	StartDate *time.Time
	EndDate   *time.Time
	IsPaid    *bool
}

// ExpenseRepositoryFacade defines operations for expense data.
type ExpenseRepositoryFacade interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, error)
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// InvoiceFilter narrows invoice list queries. An empty Status means no filter.
type InvoiceFilter struct {
	Status domain.InvoiceStatus
}

// InvoiceRepositoryFacade defines operations for invoice data.
type InvoiceRepositoryFacade interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices, newest first, optionally filtered by
	// status. An empty status means no filter.
	ListInvoices(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error)

	// SaveInvoice persists a new invoice. A reused invoice number surfaces
	// as apperrors.ErrDuplicate.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// SearchInvoices matches invoice number, customer name or email against
	// the query string.
	SearchInvoices(ctx context.Context, query string) ([]domain.Invoice, error)
}

// ReportingRepositoryFacade exposes the aggregate queries behind the summary
// report.
type ReportingRepositoryFacade interface {
	// RevenueTotalsByCurrency sums revenue amounts grouped by currency.
	RevenueTotalsByCurrency(ctx context.Context) (map[string]decimal.Decimal, error)

	// ExpenseTotalsByCurrency sums expense amounts grouped by currency.
	ExpenseTotalsByCurrency(ctx context.Context) (map[string]decimal.Decimal, error)
}
