package services

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

// CapacityLedgerSvc owns the invariant "currentUsage == number of
// subscriptions assigned to the account". Only the subscription lifecycle
// calls these; each call is one atomic relative adjustment.
type CapacityLedgerSvc interface {
	// ReserveSeat increments usage by one and returns the account as read
	// after the increment.
	ReserveSeat(ctx context.Context, accountID string) (*domain.MasterAccount, error)

	// ReleaseSeat decrements usage by one.
	ReleaseSeat(ctx context.Context, accountID string) error
}

// MasterAccountSvcFacade exposes master account management plus the capacity
// ledger operations.
type MasterAccountSvcFacade interface {
	CapacityLedgerSvc

	CreateMasterAccount(ctx context.Context, req dto.CreateMasterAccountRequest) (*domain.MasterAccount, error)
	GetMasterAccountByID(ctx context.Context, accountID string) (*domain.MasterAccount, error)
	ListMasterAccounts(ctx context.Context, productID string) ([]domain.MasterAccount, error)
	UpdateMasterAccount(ctx context.Context, accountID string, req dto.UpdateMasterAccountRequest) (*domain.MasterAccount, error)

	// DeleteMasterAccount removes the account after releasing every owned
	// subscription through the lifecycle delete path, keeping the counter
	// invariant intact.
	DeleteMasterAccount(ctx context.Context, accountID string) error

	// BulkDeleteMasterAccounts deletes each id independently and returns how
	// many succeeded.
	BulkDeleteMasterAccounts(ctx context.Context, ids []string) (int, error)
}
