package rate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vesrates/internal/adapters"
	"vesrates/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	PollInterval         = 2 * time.Minute
	SnapshotTTL          = 2 * time.Minute
	NotificationLookback = 24 * time.Hour
)

type BannerKind string

const (
	BannerNoRateToday BannerKind = "no_rate_today"
	BannerRateStale   BannerKind = "rate_stale"
	BannerRecentMove  BannerKind = "recent_move"
)

type Banner struct {
	Kind     BannerKind
	Severity domain.Severity
	Message  string
}

// PollResult is one poll outcome. FromCache means the live read failed and
// the rate came from an unexpired snapshot; NoData means neither was
// available. A rate is never fabricated.
type PollResult struct {
	Rate      *float64
	Source    domain.RateSource
	Status    domain.RateStatus
	FromCache bool
	NoData    bool
	Banners   []Banner
}

// Poller periodically reads the latest rate, keeps a short-TTL snapshot as
// an outage fallback, and assembles the three independent alert banners.
// Each banner kind is dismissible on its own.
type Poller struct {
	rates         adapters.RateRepository
	notifications adapters.NotificationRepository
	cache         adapters.SnapshotCache

	mu        sync.Mutex
	dismissed map[BannerKind]struct{}
}

// Tick performs one poll pass. Safe to call on demand between interval
// ticks, e.g. when an edit UI opens.
func (p *Poller) Tick(ctx context.Context, now time.Time) PollResult {
	latest, err := p.rates.GetLatest(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Live rate read failed, falling back to snapshot")
		return p.fromSnapshot(now)
	}

	status := EvaluateStatus(latest, now)
	if latest != nil {
		p.cache.Put(domain.Snapshot{
			Rate:      latest.Rate,
			UpdatedAt: latest.CreatedAt,
			ExpiresAt: now.Add(SnapshotTTL),
		})
	}

	result := PollResult{Rate: status.Rate, Source: status.Source, Status: status}
	result.Banners = p.visibleBanners(p.assembleBanners(ctx, status, now))
	return result
}

func (p *Poller) fromSnapshot(now time.Time) PollResult {
	snap, ok := p.cache.Get(now)
	if !ok {
		// Snapshot expired or absent: report no data rather than a number
		// of unknown age.
		return PollResult{NoData: true}
	}

	rate := snap.Rate
	lastUpdate := snap.UpdatedAt
	status := domain.RateStatus{
		HasRateToday: sameDay(snap.UpdatedAt, now),
		IsStale:      now.Sub(snap.UpdatedAt) > StaleThreshold,
		Rate:         &rate,
		LastUpdate:   &lastUpdate,
	}
	result := PollResult{Rate: &rate, Status: status, FromCache: true}
	result.Banners = p.visibleBanners(statusBanners(status, now))
	return result
}

func (p *Poller) assembleBanners(ctx context.Context, status domain.RateStatus, now time.Time) []Banner {
	banners := statusBanners(status, now)

	// Notification lookup is additive; a failed query drops the move banner
	// for this tick, nothing else.
	recent, err := p.notifications.Recent(ctx, now.Add(-NotificationLookback))
	if err != nil {
		logrus.WithError(err).Warn("Failed to load recent rate notifications")
		return banners
	}
	if len(recent) > 0 {
		latest := recent[0]
		banners = append(banners, Banner{
			Kind:     BannerRecentMove,
			Severity: latest.Severity,
			Message:  latest.Message,
		})
	}
	return banners
}

func statusBanners(status domain.RateStatus, now time.Time) []Banner {
	var banners []Banner
	if !status.HasRateToday {
		banners = append(banners, Banner{
			Kind:     BannerNoRateToday,
			Severity: domain.SeverityError,
			Message:  "No exchange rate registered for today",
		})
	}
	if status.IsStale && status.LastUpdate != nil {
		age := now.Sub(*status.LastUpdate).Round(time.Minute)
		banners = append(banners, Banner{
			Kind:     BannerRateStale,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Exchange rate is stale, last updated %s ago", age),
		})
	}
	return banners
}

func (p *Poller) visibleBanners(banners []Banner) []Banner {
	p.mu.Lock()
	defer p.mu.Unlock()

	visible := banners[:0]
	for _, b := range banners {
		if _, ok := p.dismissed[b.Kind]; !ok {
			visible = append(visible, b)
		}
	}
	return visible
}

// Dismiss suppresses one banner kind until Reset.
func (p *Poller) Dismiss(kind BannerKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dismissed[kind] = struct{}{}
}

func (p *Poller) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dismissed = make(map[BannerKind]struct{})
}

// Start runs Tick immediately and then on every interval, delivering each
// result to onResult. The returned stop function cancels the interval and
// any in-flight read, and waits for the loop to exit.
func (p *Poller) Start(ctx context.Context, onResult func(PollResult)) (stop func()) {
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(PollInterval)
		defer ticker.Stop()

		onResult(p.Tick(loopCtx, time.Now()))
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				onResult(p.Tick(loopCtx, time.Now()))
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func NewPoller(rates adapters.RateRepository, notifications adapters.NotificationRepository, cache adapters.SnapshotCache) *Poller {
	return &Poller{
		rates:         rates,
		notifications: notifications,
		cache:         cache,
		dismissed:     make(map[BannerKind]struct{}),
	}
}
