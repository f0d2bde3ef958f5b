package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	"github.com/subtrack/subtrack_backend/internal/models"
)

type PgxInvoiceRepository struct {
	pool *pgxpool.Pool
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{pool: pool}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, subscription_id, invoice_number, amount, currency, status, due_date, paid_date, customer_name, customer_email, notes, created_at`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	var subscriptionID sql.NullString
	err := row.Scan(
		&m.InvoiceID,
		&subscriptionID,
		&m.InvoiceNumber,
		&m.Amount,
		&m.Currency,
		&m.Status,
		&m.DueDate,
		&m.PaidDate,
		&m.CustomerName,
		&m.CustomerEmail,
		&m.Notes,
		&m.CreatedAt,
	)
	m.SubscriptionID = subscriptionID.String
	return m, err
}

func toDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		SubscriptionID: m.SubscriptionID,
		InvoiceNumber:  m.InvoiceNumber,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         domain.InvoiceStatus(m.Status),
		DueDate:        m.DueDate,
		PaidDate:       m.PaidDate,
		CustomerName:   m.CustomerName,
		CustomerEmail:  m.CustomerEmail,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}

func collectInvoices(rows pgx.Rows) ([]domain.Invoice, error) {
	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, toDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

// SaveInvoice inserts a new invoice. A reused invoice number violates the
// unique index and surfaces as apperrors.ErrDuplicate.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_id, subscription_id, invoice_number, amount, currency, status, due_date, paid_date, customer_name, customer_email, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		invoice.InvoiceID,
		nullString(invoice.SubscriptionID),
		invoice.InvoiceNumber,
		invoice.Amount,
		invoice.Currency,
		string(invoice.Status),
		invoice.DueDate,
		invoice.PaidDate,
		invoice.CustomerName,
		invoice.CustomerEmail,
		invoice.Notes,
		invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, invoice.InvoiceNumber)
		}
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	invoice := toDomainInvoice(m)
	return &invoice, nil
}

// ListInvoices retrieves invoices, newest first. An empty status means no filter.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	return collectInvoices(rows)
}

// SearchInvoices matches invoice number, customer name or email case-insensitively.
func (r *PgxInvoiceRepository) SearchInvoices(ctx context.Context, query string) ([]domain.Invoice, error) {
	sqlQuery := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_number ILIKE $1 OR customer_name ILIKE $1 OR customer_email ILIKE $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, sqlQuery, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search invoices: %w", err)
	}
	defer rows.Close()

	return collectInvoices(rows)
}

// UpdateInvoice updates an existing invoice row in full.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		UPDATE invoices
		SET subscription_id = $2, invoice_number = $3, amount = $4, currency = $5, status = $6,
			due_date = $7, paid_date = $8, customer_name = $9, customer_email = $10, notes = $11
		WHERE invoice_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		invoice.InvoiceID,
		nullString(invoice.SubscriptionID),
		invoice.InvoiceNumber,
		invoice.Amount,
		invoice.Currency,
		string(invoice.Status),
		invoice.DueDate,
		invoice.PaidDate,
		invoice.CustomerName,
		invoice.CustomerEmail,
		invoice.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, invoice.InvoiceNumber)
		}
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvoice removes an invoice record.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
