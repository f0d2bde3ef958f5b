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

type PgxExpenseRepository struct {
	pool *pgxpool.Pool
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{pool: pool}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, product_id, amount, currency, category, description, frequency, due_date, is_paid, date, created_at`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	var productID sql.NullString
	err := row.Scan(
		&m.ExpenseID,
		&productID,
		&m.Amount,
		&m.Currency,
		&m.Category,
		&m.Description,
		&m.Frequency,
		&m.DueDate,
		&m.IsPaid,
		&m.Date,
		&m.CreatedAt,
	)
	m.ProductID = productID.String
	return m, err
}

func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		ProductID:   m.ProductID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Category:    m.Category,
		Description: m.Description,
		Frequency:   domain.ExpenseFrequency(m.Frequency),
		DueDate:     m.DueDate,
		IsPaid:      m.IsPaid,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// SaveExpense inserts a new expense record.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, product_id, amount, currency, category, description, frequency, due_date, is_paid, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		expense.ExpenseID,
		nullString(expense.ProductID),
		expense.Amount,
		expense.Currency,
		expense.Category,
		expense.Description,
		string(expense.Frequency),
		expense.DueDate,
		expense.IsPaid,
		expense.Date,
		expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", expense.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	m, err := scanExpense(r.pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	expense := toDomainExpense(m)
	return &expense, nil
}

// ListExpenses retrieves expenses matching the filter, most recent date first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	args := []any{}
	where := ""
	appendCond := func(cond string, arg any) {
		args = append(args, arg)
		if where == "" {
			where = fmt.Sprintf(" WHERE "+cond, len(args))
		} else {
			where += fmt.Sprintf(" AND "+cond, len(args))
		}
	}
	if filter.ProductID != "" {
		appendCond("product_id = $%d", filter.ProductID)
	}
	if filter.StartDate != nil {
		appendCond("date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		appendCond("date <= $%d", *filter.EndDate)
	}
	if filter.IsPaid != nil {
		appendCond("is_paid = $%d", *filter.IsPaid)
	}
	query += where + ` ORDER BY date DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

// UpdateExpense updates an existing expense row in full.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET product_id = $2, amount = $3, currency = $4, category = $5, description = $6,
			frequency = $7, due_date = $8, is_paid = $9, date = $10
		WHERE expense_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		expense.ExpenseID,
		nullString(expense.ProductID),
		expense.Amount,
		expense.Currency,
		expense.Category,
		expense.Description,
		string(expense.Frequency),
		expense.DueDate,
		expense.IsPaid,
		expense.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense record.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
