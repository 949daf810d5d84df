package rate

import (
	"context"
	"time"

	"vesrates/internal/adapters"
	"vesrates/internal/domain"

	"github.com/google/uuid"
)

// Service is the read surface consumed by the HTTP handlers.
type Service struct {
	rates         adapters.RateRepository
	notifications adapters.NotificationRepository
}

// Latest returns the most recent entry with its evaluated status, or
// domain.ErrRateNotFound when nothing has ever been stored.
func (s *Service) Latest(ctx context.Context) (*domain.RateEntry, domain.RateStatus, error) {
	latest, err := s.rates.GetLatest(ctx)
	if err != nil {
		return nil, domain.RateStatus{}, err
	}
	if latest == nil {
		return nil, domain.RateStatus{}, domain.ErrRateNotFound
	}
	return latest, EvaluateStatus(latest, time.Now()), nil
}

func (s *Service) Status(ctx context.Context) (domain.RateStatus, error) {
	latest, err := s.rates.GetLatest(ctx)
	if err != nil {
		return domain.RateStatus{}, err
	}
	return EvaluateStatus(latest, time.Now()), nil
}

func (s *Service) Notifications(ctx context.Context, since time.Time) ([]domain.ChangeNotification, error) {
	return s.notifications.Recent(ctx, since)
}

func (s *Service) Dismiss(ctx context.Context, id uuid.UUID) error {
	return s.notifications.DeleteByID(ctx, id)
}

func NewService(rates adapters.RateRepository, notifications adapters.NotificationRepository) *Service {
	return &Service{rates: rates, notifications: notifications}
}
