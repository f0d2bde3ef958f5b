package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	"github.com/subtrack/subtrack_backend/internal/models"
)

type PgxRevenueRepository struct {
	pool *pgxpool.Pool
}

// newPgxRevenueRepository creates a new repository for revenue data.
func newPgxRevenueRepository(pool *pgxpool.Pool) portsrepo.RevenueRepositoryFacade {
	return &PgxRevenueRepository{pool: pool}
}

// Ensure PgxRevenueRepository implements portsrepo.RevenueRepositoryFacade
var _ portsrepo.RevenueRepositoryFacade = (*PgxRevenueRepository)(nil)

const revenueColumns = `revenue_id, product_id, subscription_id, amount, currency, description, type, date, created_at`

func scanRevenue(row pgx.Row) (models.Revenue, error) {
	var m models.Revenue
	var productID, subscriptionID sql.NullString
	err := row.Scan(
		&m.RevenueID,
		&productID,
		&subscriptionID,
		&m.Amount,
		&m.Currency,
		&m.Description,
		&m.Type,
		&m.Date,
		&m.CreatedAt,
	)
	m.ProductID = productID.String
	m.SubscriptionID = subscriptionID.String
	return m, err
}

func toDomainRevenue(m models.Revenue) domain.Revenue {
	return domain.Revenue{
		RevenueID:      m.RevenueID,
		ProductID:      m.ProductID,
		SubscriptionID: m.SubscriptionID,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Description:    m.Description,
		Type:           m.Type,
		Date:           m.Date,
		CreatedAt:      m.CreatedAt,
	}
}

// SaveRevenue inserts a new revenue record. product_id and subscription_id
// are stored as NULL when empty so delete cascades can set-null cleanly.
func (r *PgxRevenueRepository) SaveRevenue(ctx context.Context, revenue domain.Revenue) error {
	query := `
		INSERT INTO revenues (revenue_id, product_id, subscription_id, amount, currency, description, type, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		revenue.RevenueID,
		nullString(revenue.ProductID),
		nullString(revenue.SubscriptionID),
		revenue.Amount,
		revenue.Currency,
		revenue.Description,
		revenue.Type,
		revenue.Date,
		revenue.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save revenue %s: %w", revenue.RevenueID, err)
	}
	return nil
}

// ListRevenues retrieves revenues matching the filter, most recent date first.
func (r *PgxRevenueRepository) ListRevenues(ctx context.Context, filter portsrepo.RevenueFilter) ([]domain.Revenue, error) {
	query := `SELECT ` + revenueColumns + ` FROM revenues`
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
	query += where + ` ORDER BY date DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenues: %w", err)
	}
	defer rows.Close()

	revenues := make([]domain.Revenue, 0)
	for rows.Next() {
		m, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		revenues = append(revenues, toDomainRevenue(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating revenue rows: %w", err)
	}
	return revenues, nil
}

// DeleteRevenue removes a revenue record.
func (r *PgxRevenueRepository) DeleteRevenue(ctx context.Context, revenueID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM revenues WHERE revenue_id = $1;`, revenueID)
	if err != nil {
		return fmt.Errorf("failed to delete revenue %s: %w", revenueID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
