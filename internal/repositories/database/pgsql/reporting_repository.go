package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new repository for aggregate reporting queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{pool: pool}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// RevenueTotalsByCurrency sums revenue amounts grouped by currency. Totals
// are computed with NUMERIC in the database so no float rounding creeps in.
func (r *PgxReportingRepository) RevenueTotalsByCurrency(ctx context.Context) (map[string]decimal.Decimal, error) {
	return r.totalsByCurrency(ctx, `SELECT currency, COALESCE(SUM(amount), 0) FROM revenues GROUP BY currency;`, "revenues")
}

// ExpenseTotalsByCurrency sums expense amounts grouped by currency.
func (r *PgxReportingRepository) ExpenseTotalsByCurrency(ctx context.Context) (map[string]decimal.Decimal, error) {
	return r.totalsByCurrency(ctx, `SELECT currency, COALESCE(SUM(amount), 0) FROM expenses GROUP BY currency;`, "expenses")
}

func (r *PgxReportingRepository) totalsByCurrency(ctx context.Context, query, table string) (map[string]decimal.Decimal, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to total %s by currency: %w", table, err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var currency string
		var total decimal.Decimal
		if err := rows.Scan(&currency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan %s total row: %w", table, err)
		}
		totals[currency] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s total rows: %w", table, err)
	}
	return totals, nil
}
