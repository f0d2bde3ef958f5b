package services

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
	"github.com/subtrack/subtrack_backend/internal/dto"
)

// SubscriptionSvcFacade is the subscription lifecycle engine: every returned
// subscription carries a freshly derived status, and every mutation keeps the
// owning master account's usage counter consistent.
type SubscriptionSvcFacade interface {
	// CreateSubscription persists the subscription, reserves a seat on the
	// master account, records the matching revenue, and emits a capacity
	// alert when utilization crosses the configured threshold.
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*domain.Subscription, error)

	GetSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error)

	// ListSubscriptions filters by product/account at the storage layer and
	// by derived status afterwards.
	ListSubscriptions(ctx context.Context, params dto.ListSubscriptionsParams) ([]domain.Subscription, error)

	// UpdateSubscription applies a partial update; a master account change
	// releases the old seat and reserves one on the new account.
	UpdateSubscription(ctx context.Context, subscriptionID string, req dto.UpdateSubscriptionRequest) (*domain.Subscription, error)

	// DeleteSubscription removes the subscription and releases its seat.
	// A missing id reports not-found with no side effects.
	DeleteSubscription(ctx context.Context, subscriptionID string) error

	// BulkDeleteSubscriptions deletes each id independently; one failure
	// does not abort the rest. Returns the number actually deleted.
	BulkDeleteSubscriptions(ctx context.Context, ids []string) (int, error)

	// BulkUpdateStatus overrides the stored status hint per id, best effort.
	// Returns the number actually updated.
	BulkUpdateStatus(ctx context.Context, ids []string, status domain.SubscriptionStatus) (int, error)

	// CleanupExpired removes every subscription with
	// endDate <= today - daysOld (midnight-normalized), releasing each seat.
	// Returns the count removed.
	CleanupExpired(ctx context.Context, daysOld int) (int, error)
}
