package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

// masterAccountService implements the MasterAccountSvcFacade interface
type masterAccountService struct {
	BaseService
	accountRepo      portsrepo.MasterAccountRepositoryFacade
	productRepo      portsrepo.ProductReader
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
}

// MasterAccountServiceOption is a functional option for configuring the master account service
type MasterAccountServiceOption func(*masterAccountService)

// WithProductReader adds product existence validation on account creation
func WithProductReader(repo portsrepo.ProductReader) MasterAccountServiceOption {
	return func(s *masterAccountService) {
		s.productRepo = repo
	}
}

// WithSubscriptionRepository wires the subscription repository used by the
// account-delete path to release owned subscriptions first
func WithSubscriptionRepository(repo portsrepo.SubscriptionRepositoryFacade) MasterAccountServiceOption {
	return func(s *masterAccountService) {
		s.subscriptionRepo = repo
	}
}

// NewMasterAccountService creates a new master account service with the provided options
func NewMasterAccountService(repo portsrepo.MasterAccountRepositoryFacade, options ...MasterAccountServiceOption) portssvc.MasterAccountSvcFacade {
	svc := &masterAccountService{accountRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure masterAccountService implements the MasterAccountSvcFacade interface
var _ portssvc.MasterAccountSvcFacade = (*masterAccountService)(nil)

func (s *masterAccountService) CreateMasterAccount(ctx context.Context, req dto.CreateMasterAccountRequest) (*domain.MasterAccount, error) {
	if s.productRepo != nil {
		if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
			s.LogError(ctx, err, "Product not found for master account",
				slog.String("product_id", req.ProductID))
			return nil, err
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	account := domain.MasterAccount{
		AccountID:    uuid.NewString(),
		ProductID:    req.ProductID,
		AccountName:  req.AccountName,
		MaxCapacity:  req.MaxCapacity,
		CurrentUsage: 0,
		IsActive:     isActive,
		CreatedAt:    time.Now(),
	}

	if err := s.accountRepo.SaveMasterAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save master account in repository",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Master account created successfully",
		slog.String("account_id", account.AccountID),
		slog.Int("max_capacity", account.MaxCapacity))
	return &account, nil
}

func (s *masterAccountService) GetMasterAccountByID(ctx context.Context, accountID string) (*domain.MasterAccount, error) {
	account, err := s.accountRepo.FindMasterAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find master account by ID in repository",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *masterAccountService) ListMasterAccounts(ctx context.Context, productID string) ([]domain.MasterAccount, error) {
	accounts, err := s.accountRepo.ListMasterAccounts(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list master accounts from repository")
		return nil, err
	}
	if accounts == nil {
		return []domain.MasterAccount{}, nil
	}
	return accounts, nil
}

func (s *masterAccountService) UpdateMasterAccount(ctx context.Context, accountID string, req dto.UpdateMasterAccountRequest) (*domain.MasterAccount, error) {
	account, err := s.accountRepo.FindMasterAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find master account for update",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	// CurrentUsage is never set from a request; only the capacity ledger
	// moves it.
	if req.AccountName != nil {
		account.AccountName = *req.AccountName
	}
	if req.MaxCapacity != nil {
		account.MaxCapacity = *req.MaxCapacity
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	if err := s.accountRepo.UpdateMasterAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update master account in repository",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Master account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

// DeleteMasterAccount releases every subscription assigned to the account
// before removing the account row. Each subscription delete pairs with a
// usage decrement so the counter invariant holds at every step.
func (s *masterAccountService) DeleteMasterAccount(ctx context.Context, accountID string) error {
	if _, err := s.accountRepo.FindMasterAccountByID(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find master account for delete",
				slog.String("account_id", accountID))
		}
		return err
	}

	if s.subscriptionRepo != nil {
		subs, err := s.subscriptionRepo.ListSubscriptions(ctx, portsrepo.SubscriptionFilter{MasterAccountID: accountID})
		if err != nil {
			s.LogError(ctx, err, "Failed to list subscriptions for account delete",
				slog.String("account_id", accountID))
			return err
		}
		for _, sub := range subs {
			if err := s.subscriptionRepo.DeleteSubscription(ctx, sub.SubscriptionID); err != nil {
				s.LogError(ctx, err, "Failed to delete subscription during account delete",
					slog.String("subscription_id", sub.SubscriptionID),
					slog.String("account_id", accountID))
				continue
			}
			if err := s.accountRepo.AdjustUsage(ctx, accountID, -1); err != nil {
				s.LogError(ctx, err, "Failed to decrement usage during account delete",
					slog.String("account_id", accountID))
			}
		}
	}

	if err := s.accountRepo.DeleteMasterAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete master account in repository",
			slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Master account deleted successfully", slog.String("account_id", accountID))
	return nil
}

// BulkDeleteMasterAccounts deletes each id independently. A failure on one id
// is logged and skipped so the rest still go through.
func (s *masterAccountService) BulkDeleteMasterAccounts(ctx context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		if err := s.DeleteMasterAccount(ctx, id); err != nil {
			s.LogError(ctx, err, "Bulk delete skipped master account", slog.String("account_id", id))
			continue
		}
		deleted++
	}
	s.LogInfo(ctx, "Bulk master account delete finished",
		slog.Int("requested", len(ids)),
		slog.Int("deleted", deleted))
	return deleted, nil
}

// ReserveSeat increments the account's usage counter by one and returns the
// account as read after the increment. The adjustment is a single relative
// UPDATE so concurrent reservations cannot lose increments.
func (s *masterAccountService) ReserveSeat(ctx context.Context, accountID string) (*domain.MasterAccount, error) {
	if err := s.accountRepo.AdjustUsage(ctx, accountID, 1); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to reserve seat on master account",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	account, err := s.accountRepo.FindMasterAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read master account after seat reservation",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogDebug(ctx, "Seat reserved on master account",
		slog.String("account_id", accountID),
		slog.Int("current_usage", account.CurrentUsage))
	return account, nil
}

// ReleaseSeat decrements the account's usage counter by one.
func (s *masterAccountService) ReleaseSeat(ctx context.Context, accountID string) error {
	if err := s.accountRepo.AdjustUsage(ctx, accountID, -1); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to release seat on master account",
				slog.String("account_id", accountID))
		}
		return err
	}

	s.LogDebug(ctx, "Seat released on master account", slog.String("account_id", accountID))
	return nil
}
