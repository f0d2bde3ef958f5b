package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	"github.com/subtrack/subtrack_backend/internal/models"
)

type PgxMasterAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxMasterAccountRepository creates a new repository for master account data.
func newPgxMasterAccountRepository(pool *pgxpool.Pool) portsrepo.MasterAccountRepositoryFacade {
	return &PgxMasterAccountRepository{pool: pool}
}

// Ensure PgxMasterAccountRepository implements portsrepo.MasterAccountRepositoryFacade
var _ portsrepo.MasterAccountRepositoryFacade = (*PgxMasterAccountRepository)(nil)

func toModelMasterAccount(d domain.MasterAccount) models.MasterAccount {
	return models.MasterAccount{
		AccountID:    d.AccountID,
		ProductID:    d.ProductID,
		AccountName:  d.AccountName,
		MaxCapacity:  d.MaxCapacity,
		CurrentUsage: d.CurrentUsage,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
	}
}

func toDomainMasterAccount(m models.MasterAccount) domain.MasterAccount {
	return domain.MasterAccount{
		AccountID:    m.AccountID,
		ProductID:    m.ProductID,
		AccountName:  m.AccountName,
		MaxCapacity:  m.MaxCapacity,
		CurrentUsage: m.CurrentUsage,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

const masterAccountColumns = `account_id, product_id, account_name, max_capacity, current_usage, is_active, created_at`

func scanMasterAccount(row pgx.Row) (models.MasterAccount, error) {
	var m models.MasterAccount
	err := row.Scan(
		&m.AccountID,
		&m.ProductID,
		&m.AccountName,
		&m.MaxCapacity,
		&m.CurrentUsage,
		&m.IsActive,
		&m.CreatedAt,
	)
	return m, err
}

// SaveMasterAccount inserts a new master account.
func (r *PgxMasterAccountRepository) SaveMasterAccount(ctx context.Context, account domain.MasterAccount) error {
	m := toModelMasterAccount(account)

	query := `
		INSERT INTO master_accounts (account_id, product_id, account_name, max_capacity, current_usage, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.ProductID,
		m.AccountName,
		m.MaxCapacity,
		m.CurrentUsage,
		m.IsActive,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: master account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save master account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindMasterAccountByID retrieves a master account by its ID.
func (r *PgxMasterAccountRepository) FindMasterAccountByID(ctx context.Context, accountID string) (*domain.MasterAccount, error) {
	query := `SELECT ` + masterAccountColumns + ` FROM master_accounts WHERE account_id = $1;`

	m, err := scanMasterAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find master account %s: %w", accountID, err)
	}

	account := toDomainMasterAccount(m)
	return &account, nil
}

// ListMasterAccounts retrieves master accounts, newest first. An empty
// productID means no filter.
func (r *PgxMasterAccountRepository) ListMasterAccounts(ctx context.Context, productID string) ([]domain.MasterAccount, error) {
	query := `SELECT ` + masterAccountColumns + ` FROM master_accounts`
	args := []any{}
	if productID != "" {
		query += ` WHERE product_id = $1`
		args = append(args, productID)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list master accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.MasterAccount, 0)
	for rows.Next() {
		m, err := scanMasterAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan master account row: %w", err)
		}
		accounts = append(accounts, toDomainMasterAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating master account rows: %w", err)
	}
	return accounts, nil
}

// UpdateMasterAccount updates the mutable account fields. current_usage is
// excluded on purpose; only AdjustUsage moves the counter.
func (r *PgxMasterAccountRepository) UpdateMasterAccount(ctx context.Context, account domain.MasterAccount) error {
	m := toModelMasterAccount(account)

	query := `
		UPDATE master_accounts
		SET account_name = $2, max_capacity = $3, is_active = $4
		WHERE account_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.AccountName,
		m.MaxCapacity,
		m.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update master account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustUsage applies a relative usage change as a single atomic statement.
// Concurrent adjustments serialize on the row, so no increment is lost.
func (r *PgxMasterAccountRepository) AdjustUsage(ctx context.Context, accountID string, delta int) error {
	query := `
		UPDATE master_accounts
		SET current_usage = current_usage + $2
		WHERE account_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, accountID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust usage on master account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMasterAccount removes a master account row.
func (r *PgxMasterAccountRepository) DeleteMasterAccount(ctx context.Context, accountID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM master_accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete master account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
