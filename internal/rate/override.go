package rate

import (
	"context"
	"math"
	"time"

	"vesrates/internal/adapters"
	"vesrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// DeviationThresholdPct is the divergence between a manual entry and the
// provider rate above which a deviation warning is raised.
const DeviationThresholdPct = 5.0

// DeviationAlert is the synchronous feedback channel to the operator who
// entered the rate. It is returned, not persisted; the persisted
// rate_deviation notification is written independently and both fire.
type DeviationAlert struct {
	ManualRate    float64
	APIRate       float64
	DifferencePct float64
}

type Override struct {
	provider      adapters.RateProvider
	rates         adapters.RateRepository
	notifications adapters.NotificationRepository
}

// Set validates and persists an operator-entered rate for a date. When a
// comparison rate is available from the provider and the entry diverges
// beyond the threshold, a warning notification is stored and a non-nil
// alert is returned to the caller.
func (o *Override) Set(ctx context.Context, date time.Time, value float64) (*DeviationAlert, error) {
	if err := ValidateManualRate(value); err != nil {
		return nil, err
	}

	now := time.Now()
	var alert *DeviationAlert

	// The comparison fetch is best effort: its failure only disables
	// deviation checking for this call, it never blocks the override.
	if apiRate, ok := o.comparisonRate(ctx); ok {
		differencePct := math.Abs(value-apiRate) / apiRate * 100
		if differencePct > DeviationThresholdPct {
			alert = &DeviationAlert{ManualRate: value, APIRate: apiRate, DifferencePct: differencePct}
			n := domain.NewRateDeviation(value, apiRate, differencePct, dateOf(date), now)
			if err := o.notifications.Insert(ctx, n); err != nil {
				logrus.WithError(err).Error("Failed to persist rate deviation notification")
			}
		}
	}

	if err := o.rates.UpsertForDate(ctx, dateOf(date), value, domain.SourceManual); err != nil {
		return nil, err
	}
	return alert, nil
}

// Clear removes the manual override for a date; the next automated pass is
// then free to write, no protection window applies once the row is gone.
func (o *Override) Clear(ctx context.Context, date time.Time) error {
	return o.rates.DeleteManualForDate(ctx, dateOf(date))
}

func (o *Override) comparisonRate(ctx context.Context) (float64, bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	fetched, err := o.provider.FetchRate(fetchCtx)
	if err != nil {
		logrus.WithError(err).Warn("No comparison rate available, skipping deviation check")
		return 0, false
	}
	return fetched.Rate, true
}

func NewOverride(provider adapters.RateProvider, rates adapters.RateRepository, notifications adapters.NotificationRepository) *Override {
	return &Override{provider: provider, rates: rates, notifications: notifications}
}
