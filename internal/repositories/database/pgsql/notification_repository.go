package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	"github.com/subtrack/subtrack_backend/internal/models"
)

type PgxNotificationRepository struct {
	pool *pgxpool.Pool
}

// newPgxNotificationRepository creates a new repository for notification data.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{pool: pool}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// SaveNotification inserts a new notification.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, type, title, message, related_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		notification.NotificationID,
		string(notification.Type),
		notification.Title,
		notification.Message,
		nullString(notification.RelatedID),
		notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", notification.NotificationID, err)
	}
	return nil
}

// ListNotifications retrieves notifications, newest first. A nil isRead means
// no read-state filter.
func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, isRead *bool) ([]domain.Notification, error) {
	query := `SELECT notification_id, type, title, message, related_id, is_read, created_at FROM notifications`
	args := []any{}
	if isRead != nil {
		query += ` WHERE is_read = $1`
		args = append(args, *isRead)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		var m models.Notification
		var relatedID sql.NullString
		if err := rows.Scan(
			&m.NotificationID,
			&m.Type,
			&m.Title,
			&m.Message,
			&relatedID,
			&m.IsRead,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, domain.Notification{
			NotificationID: m.NotificationID,
			Type:           domain.NotificationType(m.Type),
			Title:          m.Title,
			Message:        m.Message,
			RelatedID:      relatedID.String,
			IsRead:         m.IsRead,
			CreatedAt:      m.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}

// HasNotification reports whether a notification exists for the (type,
// relatedID) idempotence key.
func (r *PgxNotificationRepository) HasNotification(ctx context.Context, notifType domain.NotificationType, relatedID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM notifications WHERE type = $1 AND related_id = $2);`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, string(notifType), relatedID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check notification existence: %w", err)
	}
	return exists, nil
}

// MarkNotificationRead flips a single notification's is_read flag.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllNotificationsRead flips every unread notification to read.
func (r *PgxNotificationRepository) MarkAllNotificationsRead(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE;`); err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}

// DeleteNotification removes a notification.
func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
