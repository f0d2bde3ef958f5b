package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	"github.com/subtrack/subtrack_backend/internal/models"
)

type PgxSubscriptionRepository struct {
	pool *pgxpool.Pool
}

// newPgxSubscriptionRepository creates a new repository for subscription data.
func newPgxSubscriptionRepository(pool *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{pool: pool}
}

// Ensure PgxSubscriptionRepository implements portsrepo.SubscriptionRepositoryFacade
var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

func toModelSubscription(d domain.Subscription) models.Subscription {
	return models.Subscription{
		SubscriptionID:   d.SubscriptionID,
		ProductID:        d.ProductID,
		MasterAccountID:  d.MasterAccountID,
		CustomerName:     d.CustomerName,
		CustomerEmail:    d.CustomerEmail,
		CustomerWhatsapp: d.CustomerWhatsapp,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		Status:           string(d.Status),
		Price:            d.Price,
		Currency:         d.Currency,
		CouponCode:       d.CouponCode,
		Referrer:         d.Referrer,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toDomainSubscription(m models.Subscription) domain.Subscription {
	return domain.Subscription{
		SubscriptionID:   m.SubscriptionID,
		ProductID:        m.ProductID,
		MasterAccountID:  m.MasterAccountID,
		CustomerName:     m.CustomerName,
		CustomerEmail:    m.CustomerEmail,
		CustomerWhatsapp: m.CustomerWhatsapp,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		Status:           domain.SubscriptionStatus(m.Status),
		Price:            m.Price,
		Currency:         m.Currency,
		CouponCode:       m.CouponCode,
		Referrer:         m.Referrer,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

const subscriptionColumns = `subscription_id, product_id, master_account_id, customer_name, customer_email, customer_whatsapp, start_date, end_date, status, price, currency, coupon_code, referrer, created_at, updated_at`

func scanSubscription(row pgx.Row) (models.Subscription, error) {
	var m models.Subscription
	err := row.Scan(
		&m.SubscriptionID,
		&m.ProductID,
		&m.MasterAccountID,
		&m.CustomerName,
		&m.CustomerEmail,
		&m.CustomerWhatsapp,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.Price,
		&m.Currency,
		&m.CouponCode,
		&m.Referrer,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectSubscriptions(rows pgx.Rows) ([]domain.Subscription, error) {
	subscriptions := make([]domain.Subscription, 0)
	for rows.Next() {
		m, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		subscriptions = append(subscriptions, toDomainSubscription(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", err)
	}
	return subscriptions, nil
}

// SaveSubscription inserts a new subscription.
func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, subscription domain.Subscription) error {
	m := toModelSubscription(subscription)

	query := `
		INSERT INTO subscriptions (subscription_id, product_id, master_account_id, customer_name, customer_email, customer_whatsapp, start_date, end_date, status, price, currency, coupon_code, referrer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		m.SubscriptionID,
		m.ProductID,
		m.MasterAccountID,
		m.CustomerName,
		m.CustomerEmail,
		m.CustomerWhatsapp,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.Price,
		m.Currency,
		m.CouponCode,
		m.Referrer,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: subscription with ID %s already exists", apperrors.ErrDuplicate, m.SubscriptionID)
		}
		return fmt.Errorf("failed to save subscription %s: %w", m.SubscriptionID, err)
	}
	return nil
}

// FindSubscriptionByID retrieves a subscription by its ID. The status column
// comes back as stored; derivation is the caller's job.
func (r *PgxSubscriptionRepository) FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE subscription_id = $1;`

	m, err := scanSubscription(r.pool.QueryRow(ctx, query, subscriptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription %s: %w", subscriptionID, err)
	}

	subscription := toDomainSubscription(m)
	return &subscription, nil
}

// ListSubscriptions retrieves subscriptions matching the filter, newest first.
func (r *PgxSubscriptionRepository) ListSubscriptions(ctx context.Context, filter portsrepo.SubscriptionFilter) ([]domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions`
	args := []any{}
	where := ""
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		where = fmt.Sprintf(" WHERE product_id = $%d", len(args))
	}
	if filter.MasterAccountID != "" {
		args = append(args, filter.MasterAccountID)
		if where == "" {
			where = fmt.Sprintf(" WHERE master_account_id = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND master_account_id = $%d", len(args))
		}
	}
	query += where + ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	return collectSubscriptions(rows)
}

// ListSubscriptionsEndingOnOrBefore retrieves subscriptions with end_date <= cutoff.
func (r *PgxSubscriptionRepository) ListSubscriptionsEndingOnOrBefore(ctx context.Context, cutoff time.Time) ([]domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE end_date <= $1 ORDER BY end_date ASC;`

	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions ending before %s: %w", cutoff.Format(time.DateOnly), err)
	}
	defer rows.Close()

	return collectSubscriptions(rows)
}

// SearchSubscriptions matches customer name, email or whatsapp case-insensitively.
func (r *PgxSubscriptionRepository) SearchSubscriptions(ctx context.Context, query string) ([]domain.Subscription, error) {
	sqlQuery := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE customer_name ILIKE $1 OR customer_email ILIKE $1 OR customer_whatsapp ILIKE $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, sqlQuery, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search subscriptions: %w", err)
	}
	defer rows.Close()

	return collectSubscriptions(rows)
}

// UpdateSubscription updates an existing subscription row in full.
func (r *PgxSubscriptionRepository) UpdateSubscription(ctx context.Context, subscription domain.Subscription) error {
	m := toModelSubscription(subscription)

	query := `
		UPDATE subscriptions
		SET product_id = $2, master_account_id = $3, customer_name = $4, customer_email = $5, customer_whatsapp = $6,
			start_date = $7, end_date = $8, status = $9, price = $10, currency = $11, coupon_code = $12, referrer = $13, updated_at = $14
		WHERE subscription_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.SubscriptionID,
		m.ProductID,
		m.MasterAccountID,
		m.CustomerName,
		m.CustomerEmail,
		m.CustomerWhatsapp,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.Price,
		m.Currency,
		m.CouponCode,
		m.Referrer,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription %s: %w", m.SubscriptionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateSubscriptionStatus corrects only the stored status hint.
func (r *PgxSubscriptionRepository) UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status domain.SubscriptionStatus, now time.Time) error {
	query := `UPDATE subscriptions SET status = $2, updated_at = $3 WHERE subscription_id = $1;`

	tag, err := r.pool.Exec(ctx, query, subscriptionID, string(status), now)
	if err != nil {
		return fmt.Errorf("failed to update status of subscription %s: %w", subscriptionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSubscription removes a subscription row.
func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscriptions WHERE subscription_id = $1;`, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription %s: %w", subscriptionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
