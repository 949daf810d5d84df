package rate

import (
	"context"
	"fmt"
	"math"
	"time"

	"vesrates/internal/adapters"
	"vesrates/internal/domain"
	"vesrates/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

const fetchTimeout = 5 * time.Second

// Cadence parameterizes one sync job variant. The three variants share the
// same pass; only the source tag, the manual-override protection rule and
// the significant-change threshold differ.
type Cadence struct {
	SourceTag string
	// ProtectSameDay protects a manual entry for the rest of its calendar
	// day; otherwise ProtectionWindow is a sliding window from the entry's
	// created_at.
	ProtectSameDay     bool
	ProtectionWindow   time.Duration
	ChangeThresholdPct float64
}

var (
	DailyCadence    = Cadence{SourceTag: "daily", ProtectSameDay: true, ChangeThresholdPct: 1.0}
	HourlyCadence   = Cadence{SourceTag: "hourly", ProtectSameDay: true, ChangeThresholdPct: 0.5}
	RealtimeCadence = Cadence{SourceTag: "realtime", ProtectionWindow: time.Hour, ChangeThresholdPct: 0.1}
)

// Result reports what a single sync pass did. Skipped means a manual
// override was active and nothing was fetched or written.
type Result struct {
	Skipped       bool
	Rate          float64
	AsOfDate      time.Time
	Source        domain.RateSource
	PreviousRate  *float64
	ChangePercent *float64
}

// RunUpdate is one stateless sync pass: check for an active manual override,
// fetch from the provider, compare against the previous value, persist.
// A failure at any step aborts the pass without touching the stored rate;
// the existing value is never degraded to an unknown one.
func RunUpdate(
	ctx context.Context,
	execID string,
	cadence Cadence,
	provider adapters.RateProvider,
	rates adapters.RateRepository,
	notifications adapters.NotificationRepository,
	now time.Time,
) (Result, error) {
	// STEP 1: read the latest entry and honor manual-override precedence.
	latest, err := rates.GetLatest(ctx)
	if err != nil {
		metrics.SyncFailures.WithLabelValues(cadence.SourceTag).Inc()
		return Result{}, fmt.Errorf("failed to read latest rate: %w", err)
	}
	if manualOverrideActive(latest, cadence, now) {
		logrus.Infof("Skipped: manual override active; cadence: %s, execID: %s", cadence.SourceTag, execID)
		metrics.SyncSkips.WithLabelValues(cadence.SourceTag).Inc()
		return Result{Skipped: true}, nil
	}

	// STEP 2: fetch from the provider on a bounded context so a hung call
	// cannot outlive the scheduler slot.
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	fetched, err := provider.FetchRate(fetchCtx)
	if err != nil {
		metrics.SyncFailures.WithLabelValues(cadence.SourceTag).Inc()
		return Result{}, fmt.Errorf("failed to fetch rate: %w", err)
	}

	result := Result{
		Rate:     fetched.Rate,
		AsOfDate: dateOf(now),
		Source:   domain.AutoSource(cadence.SourceTag),
	}

	// STEP 3: compare against the previous value and raise a rate_change
	// notification when the move is significant for this cadence.
	if latest != nil {
		previous := latest.Rate
		changePercent := (fetched.Rate - previous) / previous * 100
		result.PreviousRate = &previous
		result.ChangePercent = &changePercent

		if math.Abs(changePercent) > cadence.ChangeThresholdPct {
			n := domain.NewRateChange(previous, fetched.Rate, changePercent, result.AsOfDate, now)
			if err = notifications.Insert(ctx, n); err != nil {
				metrics.SyncFailures.WithLabelValues(cadence.SourceTag).Inc()
				return Result{}, fmt.Errorf("failed to insert rate change notification: %w", err)
			}
			logrus.Infof("Rate change %.2f%% recorded; cadence: %s, execID: %s", changePercent, cadence.SourceTag, execID)
		}
	}

	// STEP 4: persist as a whole-row replacement so created_at reflects
	// this write.
	if err = rates.UpsertForDate(ctx, result.AsOfDate, fetched.Rate, result.Source); err != nil {
		metrics.SyncFailures.WithLabelValues(cadence.SourceTag).Inc()
		return Result{}, fmt.Errorf("failed to persist rate: %w", err)
	}

	metrics.SyncRuns.WithLabelValues(cadence.SourceTag).Inc()
	return result, nil
}

// manualOverrideActive is the override-precedence rule: a human-entered
// value is never silently clobbered within its protection window. Evaluated
// at read time on every pass; there is no locking between cadences.
func manualOverrideActive(latest *domain.RateEntry, cadence Cadence, now time.Time) bool {
	if latest == nil || !latest.Source.IsManual() {
		return false
	}
	if cadence.ProtectSameDay {
		return sameDay(latest.CreatedAt, now)
	}
	return now.Sub(latest.CreatedAt) < cadence.ProtectionWindow
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
