package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

const defaultCurrency = "USD"

// subscriptionService implements the SubscriptionSvcFacade interface.
// It owns the lifecycle sequence around each mutation: persist the row,
// adjust the capacity ledger, record revenue, emit alerts. The steps are
// sequential and non-transactional; the ledger adjustment itself is atomic.
type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
	ledger           portssvc.CapacityLedgerSvc
	revenueRepo      portsrepo.RevenueRepositoryFacade
	notificationSvc  portssvc.NotificationSvcFacade
	alertThreshold   int
}

// SubscriptionServiceOption is a functional option for configuring the subscription service
type SubscriptionServiceOption func(*subscriptionService)

// WithCapacityLedger wires the capacity ledger used for seat accounting
func WithCapacityLedger(ledger portssvc.CapacityLedgerSvc) SubscriptionServiceOption {
	return func(s *subscriptionService) {
		s.ledger = ledger
	}
}

// WithRevenueRepository wires the revenue repository used to record sales
func WithRevenueRepository(repo portsrepo.RevenueRepositoryFacade) SubscriptionServiceOption {
	return func(s *subscriptionService) {
		s.revenueRepo = repo
	}
}

// WithNotificationService wires the notification service used for capacity alerts
func WithNotificationService(svc portssvc.NotificationSvcFacade) SubscriptionServiceOption {
	return func(s *subscriptionService) {
		s.notificationSvc = svc
	}
}

// WithCapacityAlertThreshold sets the utilization percentage that triggers a
// capacity alert on subscription creation
func WithCapacityAlertThreshold(threshold int) SubscriptionServiceOption {
	return func(s *subscriptionService) {
		s.alertThreshold = threshold
	}
}

// NewSubscriptionService creates a new subscription service with the provided options
func NewSubscriptionService(repo portsrepo.SubscriptionRepositoryFacade, options ...SubscriptionServiceOption) portssvc.SubscriptionSvcFacade {
	svc := &subscriptionService{
		subscriptionRepo: repo,
		alertThreshold:   80,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure subscriptionService implements the SubscriptionSvcFacade interface
var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

func (s *subscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	// DTO binding enforces this too; kept here so non-HTTP callers get the
	// same guarantee.
	if !req.EndDate.After(req.StartDate) {
		s.LogDebug(ctx, "Rejected subscription with endDate not after startDate",
			slog.Time("start_date", req.StartDate),
			slog.Time("end_date", req.EndDate))
		return nil, fmt.Errorf("endDate must be after startDate: %w", apperrors.ErrValidation)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now()
	subscription := domain.Subscription{
		SubscriptionID:   uuid.NewString(),
		ProductID:        req.ProductID,
		MasterAccountID:  req.MasterAccountID,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerWhatsapp: req.CustomerWhatsapp,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           domain.SubscriptionStatusAt(req.EndDate, now),
		Price:            req.Price,
		Currency:         currency,
		CouponCode:       req.CouponCode,
		Referrer:         req.Referrer,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.subscriptionRepo.SaveSubscription(ctx, subscription); err != nil {
		s.LogError(ctx, err, "Failed to save subscription in repository",
			slog.String("subscription_id", subscription.SubscriptionID))
		return nil, err
	}

	account, err := s.ledger.ReserveSeat(ctx, subscription.MasterAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reserve seat for new subscription",
			slog.String("subscription_id", subscription.SubscriptionID),
			slog.String("account_id", subscription.MasterAccountID))
		return nil, err
	}

	// Revenue and alert emission are best effort; the subscription itself
	// is already committed.
	s.recordSaleRevenue(ctx, subscription)
	if s.notificationSvc != nil && account.UtilizationPercent() >= float64(s.alertThreshold) {
		if err := s.notificationSvc.EmitCapacityAlert(ctx, account); err != nil {
			s.LogError(ctx, err, "Failed to emit capacity alert",
				slog.String("account_id", account.AccountID))
		}
	}

	s.LogInfo(ctx, "Subscription created successfully",
		slog.String("subscription_id", subscription.SubscriptionID),
		slog.String("account_id", subscription.MasterAccountID),
		slog.String("status", string(subscription.Status)))
	return &subscription, nil
}

func (s *subscriptionService) recordSaleRevenue(ctx context.Context, sub domain.Subscription) {
	if s.revenueRepo == nil {
		return
	}
	revenue := domain.Revenue{
		RevenueID:      uuid.NewString(),
		ProductID:      sub.ProductID,
		SubscriptionID: sub.SubscriptionID,
		Amount:         sub.Price,
		Currency:       sub.Currency,
		Description:    fmt.Sprintf("Subscription sale to %s", sub.CustomerName),
		Type:           domain.RevenueTypeSubscription,
		Date:           sub.StartDate,
		CreatedAt:      time.Now(),
	}
	if err := s.revenueRepo.SaveRevenue(ctx, revenue); err != nil {
		s.LogError(ctx, err, "Failed to record subscription revenue",
			slog.String("subscription_id", sub.SubscriptionID))
	}
}

func (s *subscriptionService) GetSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find subscription by ID in repository",
				slog.String("subscription_id", subscriptionID))
		}
		return nil, err
	}

	derived := subscription.WithDerivedStatus(time.Now())
	return &derived, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, params dto.ListSubscriptionsParams) ([]domain.Subscription, error) {
	filter := portsrepo.SubscriptionFilter{
		ProductID:       params.ProductID,
		MasterAccountID: params.MasterAccountID,
	}
	subscriptions, err := s.subscriptionRepo.ListSubscriptions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subscriptions from repository")
		return nil, err
	}

	now := time.Now()
	result := make([]domain.Subscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		derived := sub.WithDerivedStatus(now)
		// Status filtering happens after derivation; the stored hint may be
		// stale.
		if params.Status != "" && params.Status != "all" && string(derived.Status) != params.Status {
			continue
		}
		result = append(result, derived)
	}
	return result, nil
}

func (s *subscriptionService) UpdateSubscription(ctx context.Context, subscriptionID string, req dto.UpdateSubscriptionRequest) (*domain.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find subscription for update",
				slog.String("subscription_id", subscriptionID))
		}
		return nil, err
	}

	previousAccountID := subscription.MasterAccountID
	if req.MasterAccountID != nil {
		subscription.MasterAccountID = *req.MasterAccountID
	}

	if req.ProductID != nil {
		subscription.ProductID = *req.ProductID
	}
	if req.CustomerName != nil {
		subscription.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		subscription.CustomerEmail = *req.CustomerEmail
	}
	if req.CustomerWhatsapp != nil {
		subscription.CustomerWhatsapp = *req.CustomerWhatsapp
	}
	if req.StartDate != nil {
		subscription.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		subscription.EndDate = *req.EndDate
	}
	if req.Status != nil {
		// Stored as a hint only; reads re-derive from the end date.
		subscription.Status = domain.SubscriptionStatus(*req.Status)
	}
	if req.Price != nil {
		subscription.Price = *req.Price
	}
	if req.Currency != nil {
		subscription.Currency = *req.Currency
	}
	if req.CouponCode != nil {
		subscription.CouponCode = *req.CouponCode
	}
	if req.Referrer != nil {
		subscription.Referrer = *req.Referrer
	}

	// Validation runs over the fully merged record before any storage or
	// ledger call, so a rejected request leaves no trace.
	if !subscription.EndDate.After(subscription.StartDate) {
		return nil, fmt.Errorf("endDate must be after startDate: %w", apperrors.ErrValidation)
	}

	// A master account change moves the seat: release on the old account,
	// reserve on the new one. The two adjustments are separate statements.
	if subscription.MasterAccountID != previousAccountID {
		if err := s.ledger.ReleaseSeat(ctx, previousAccountID); err != nil {
			s.LogError(ctx, err, "Failed to release seat on previous account",
				slog.String("subscription_id", subscriptionID),
				slog.String("account_id", previousAccountID))
			return nil, err
		}
		if _, err := s.ledger.ReserveSeat(ctx, subscription.MasterAccountID); err != nil {
			s.LogError(ctx, err, "Failed to reserve seat on new account",
				slog.String("subscription_id", subscriptionID),
				slog.String("account_id", subscription.MasterAccountID))
			return nil, err
		}
	}

	subscription.UpdatedAt = time.Now()
	if err := s.subscriptionRepo.UpdateSubscription(ctx, *subscription); err != nil {
		s.LogError(ctx, err, "Failed to update subscription in repository",
			slog.String("subscription_id", subscriptionID))
		return nil, err
	}

	s.LogInfo(ctx, "Subscription updated successfully", slog.String("subscription_id", subscriptionID))
	derived := subscription.WithDerivedStatus(time.Now())
	return &derived, nil
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		// Not found means no row and no counter to touch.
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find subscription for delete",
				slog.String("subscription_id", subscriptionID))
		}
		return err
	}

	if err := s.subscriptionRepo.DeleteSubscription(ctx, subscriptionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete subscription in repository",
				slog.String("subscription_id", subscriptionID))
		}
		return err
	}

	if err := s.ledger.ReleaseSeat(ctx, subscription.MasterAccountID); err != nil {
		s.LogError(ctx, err, "Failed to release seat after subscription delete",
			slog.String("subscription_id", subscriptionID),
			slog.String("account_id", subscription.MasterAccountID))
		return err
	}

	s.LogInfo(ctx, "Subscription deleted successfully",
		slog.String("subscription_id", subscriptionID),
		slog.String("account_id", subscription.MasterAccountID))
	return nil
}

// BulkDeleteSubscriptions deletes each id independently. A failure on one id
// is logged and skipped so the rest still go through.
func (s *subscriptionService) BulkDeleteSubscriptions(ctx context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		if err := s.DeleteSubscription(ctx, id); err != nil {
			s.LogError(ctx, err, "Bulk delete skipped subscription", slog.String("subscription_id", id))
			continue
		}
		deleted++
	}
	s.LogInfo(ctx, "Bulk subscription delete finished",
		slog.Int("requested", len(ids)),
		slog.Int("deleted", deleted))
	return deleted, nil
}

// BulkUpdateStatus overrides the stored status hint per id, best effort.
// The override does not move the capacity counter; the next read derives the
// effective status from the end date regardless.
func (s *subscriptionService) BulkUpdateStatus(ctx context.Context, ids []string, status domain.SubscriptionStatus) (int, error) {
	if !domain.ValidSubscriptionStatus(status) {
		return 0, fmt.Errorf("unknown subscription status %q: %w", status, apperrors.ErrValidation)
	}

	now := time.Now()
	updated := 0
	for _, id := range ids {
		if err := s.subscriptionRepo.UpdateSubscriptionStatus(ctx, id, status, now); err != nil {
			s.LogError(ctx, err, "Bulk status update skipped subscription", slog.String("subscription_id", id))
			continue
		}
		updated++
	}
	s.LogInfo(ctx, "Bulk subscription status update finished",
		slog.Int("requested", len(ids)),
		slog.Int("updated", updated),
		slog.String("status", string(status)))
	return updated, nil
}

// CleanupExpired removes every subscription whose end date is daysOld or more
// days in the past, releasing each seat. The cutoff comparison is inclusive:
// with daysOld=30 a subscription that ended exactly 30 days ago is removed.
func (s *subscriptionService) CleanupExpired(ctx context.Context, daysOld int) (int, error) {
	if daysOld < 0 {
		return 0, fmt.Errorf("daysOld must not be negative: %w", apperrors.ErrValidation)
	}

	cutoff := domain.StartOfDay(time.Now()).AddDate(0, 0, -daysOld)
	subscriptions, err := s.subscriptionRepo.ListSubscriptionsEndingOnOrBefore(ctx, cutoff)
	if err != nil {
		s.LogError(ctx, err, "Failed to list subscriptions for cleanup",
			slog.Time("cutoff", cutoff))
		return 0, err
	}

	removed := 0
	for _, sub := range subscriptions {
		if err := s.subscriptionRepo.DeleteSubscription(ctx, sub.SubscriptionID); err != nil {
			s.LogError(ctx, err, "Cleanup failed to delete subscription",
				slog.String("subscription_id", sub.SubscriptionID))
			continue
		}
		if err := s.ledger.ReleaseSeat(ctx, sub.MasterAccountID); err != nil {
			s.LogError(ctx, err, "Cleanup failed to release seat",
				slog.String("subscription_id", sub.SubscriptionID),
				slog.String("account_id", sub.MasterAccountID))
		}
		removed++
	}

	s.LogInfo(ctx, "Expired subscription cleanup finished",
		slog.Time("cutoff", cutoff),
		slog.Int("removed", removed))
	return removed, nil
}
