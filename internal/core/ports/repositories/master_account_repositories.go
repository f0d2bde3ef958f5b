package repositories

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// MasterAccountReader defines read operations for master account data.
type MasterAccountReader interface {
	// FindMasterAccountByID retrieves a specific master account.
	FindMasterAccountByID(ctx context.Context, accountID string) (*domain.MasterAccount, error)

	// ListMasterAccounts retrieves master accounts, newest first, optionally
	// filtered by product. An empty productID means no filter.
	ListMasterAccounts(ctx context.Context, productID string) ([]domain.MasterAccount, error)
}

// MasterAccountWriter defines write operations for master account data.
type MasterAccountWriter interface {
	// SaveMasterAccount persists a new master account.
	SaveMasterAccount(ctx context.Context, account domain.MasterAccount) error

	// UpdateMasterAccount updates an existing master account.
	UpdateMasterAccount(ctx context.Context, account domain.MasterAccount) error

	// DeleteMasterAccount removes a master account row.
	DeleteMasterAccount(ctx context.Context, accountID string) error

	// AdjustUsage applies a relative usage change as a single atomic
	// statement (current_usage = current_usage + delta). This is the only
	// way subscription operations may touch the counter.
	AdjustUsage(ctx context.Context, accountID string, delta int) error
}

// MasterAccountRepositoryFacade combines all master account repository interfaces.
type MasterAccountRepositoryFacade interface {
	MasterAccountReader
	MasterAccountWriter
}
