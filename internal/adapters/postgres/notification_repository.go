package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vesrates/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func (r *NotificationRepository) Insert(ctx context.Context, n domain.ChangeNotification) error {
	metadataJSON, err := json.Marshal(n.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal notification metadata: %w", err)
	}

	const q = `
		insert into notifications (id, type, title, message, severity, metadata, created_at)
		values ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err = r.pool.Exec(ctx, q,
		n.ID, string(n.Type), n.Title, n.Message, string(n.Severity), metadataJSON, n.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert %s notification: %w", n.Type, err)
	}
	return nil
}

// Recent returns notifications of every type created at or after since,
// newest first.
func (r *NotificationRepository) Recent(ctx context.Context, since time.Time) ([]domain.ChangeNotification, error) {
	const q = `
		select id, type, title, message, severity, metadata, created_at
		from notifications
		where created_at >= $1
		order by created_at desc;
	`
	rows, err := r.pool.Query(ctx, q, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent notifications: %w", err)
	}
	defer rows.Close()
	return scanNotifications(rows)
}

func (r *NotificationRepository) RecentByType(ctx context.Context, typ domain.NotificationType, since time.Time) ([]domain.ChangeNotification, error) {
	const q = `
		select id, type, title, message, severity, metadata, created_at
		from notifications
		where type = $1 and created_at >= $2
		order by created_at desc;
	`
	rows, err := r.pool.Query(ctx, q, string(typ), since)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent %s notifications: %w", typ, err)
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// DeleteByID removes a dismissed notification outright; there is no
// soft-delete state.
func (r *NotificationRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `delete from notifications where id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", id, err)
	}
	return nil
}

func scanNotifications(rows pgx.Rows) ([]domain.ChangeNotification, error) {
	notifications := make([]domain.ChangeNotification, 0, 16)
	for rows.Next() {
		var n domain.ChangeNotification
		var metadataJSON []byte
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.Severity, &metadataJSON, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &n.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal notification metadata: %w", err)
			}
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return notifications, nil
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}
