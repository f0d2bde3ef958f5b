package repositories

import (
	"context"
	"time"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// SubscriptionFilter narrows subscription list queries. Status is not here on
// purpose: status is derived from end_date at read time, so status filtering
// happens in the service layer after derivation.
type SubscriptionFilter struct {
	ProductID       string
	MasterAccountID string
}

// SubscriptionReader defines read operations for subscription data.
type SubscriptionReader interface {
	// FindSubscriptionByID retrieves a specific subscription. The returned
	// Status field is the stored hint, not the derived value.
	FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error)

	// ListSubscriptions retrieves subscriptions matching the filter, newest first.
	ListSubscriptions(ctx context.Context, filter SubscriptionFilter) ([]domain.Subscription, error)

	// ListSubscriptionsEndingOnOrBefore retrieves subscriptions with
	// end_date <= cutoff.
	ListSubscriptionsEndingOnOrBefore(ctx context.Context, cutoff time.Time) ([]domain.Subscription, error)

	// SearchSubscriptions matches customer name, email or whatsapp against
	// the query string.
	SearchSubscriptions(ctx context.Context, query string) ([]domain.Subscription, error)
}

// SubscriptionWriter defines write operations for subscription data.
type SubscriptionWriter interface {
	// SaveSubscription persists a new subscription.
	SaveSubscription(ctx context.Context, subscription domain.Subscription) error

	// UpdateSubscription updates an existing subscription row in full.
	UpdateSubscription(ctx context.Context, subscription domain.Subscription) error

	// UpdateSubscriptionStatus corrects only the stored status hint. Used by
	// the reconciliation sweep; does not touch the capacity counter.
	UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status domain.SubscriptionStatus, now time.Time) error

	// DeleteSubscription removes a subscription, returning
	// apperrors.ErrNotFound when no row matched.
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}

// SubscriptionRepositoryFacade combines all subscription repository interfaces.
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
}
