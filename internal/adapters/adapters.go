package adapters

import (
	"context"
	"time"

	"vesrates/internal/domain"

	"github.com/google/uuid"
)

type RateProvider interface {
	FetchRate(ctx context.Context) (domain.ProviderRate, error)
}

type RateRepository interface {
	// GetLatest returns nil (not an error) when no rate has ever been stored.
	GetLatest(ctx context.Context) (*domain.RateEntry, error)
	// UpsertForDate replaces the whole row for the date so created_at always
	// reflects the most recent write.
	UpsertForDate(ctx context.Context, date time.Time, rate float64, source domain.RateSource) error
	DeleteManualForDate(ctx context.Context, date time.Time) error
}

type NotificationRepository interface {
	Insert(ctx context.Context, n domain.ChangeNotification) error
	Recent(ctx context.Context, since time.Time) ([]domain.ChangeNotification, error)
	RecentByType(ctx context.Context, typ domain.NotificationType, since time.Time) ([]domain.ChangeNotification, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type SnapshotCache interface {
	Put(s domain.Snapshot)
	// Get never returns an expired snapshot.
	Get(now time.Time) (domain.Snapshot, bool)
}
