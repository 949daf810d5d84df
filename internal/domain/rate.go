package domain

import (
	"strings"
	"time"
)

// RateSource identifies who produced a stored rate: a human operator
// ("manual") or one of the automated sync cadences ("auto:<tag>").
type RateSource string

const SourceManual RateSource = "manual"

const autoPrefix = "auto:"

func AutoSource(cadenceTag string) RateSource {
	return RateSource(autoPrefix + cadenceTag)
}

func (s RateSource) IsManual() bool { return s == SourceManual }

func (s RateSource) IsAuto() bool { return strings.HasPrefix(string(s), autoPrefix) }

// RateEntry is the single USD→VES conversion figure stored for one calendar
// date. AsOfDate is the upsert key; CreatedAt reflects the most recent write
// for that date and drives staleness, not the date itself.
type RateEntry struct {
	AsOfDate  time.Time
	Rate      float64
	Source    RateSource
	CreatedAt time.Time
}

// ProviderRate is a fetched rate before it is persisted.
type ProviderRate struct {
	Rate       float64
	ProviderID string
}

// RateStatus is the evaluated health of the latest stored rate.
type RateStatus struct {
	HasRateToday bool
	IsStale      bool
	Rate         *float64
	Source       RateSource
	LastUpdate   *time.Time
}

// Snapshot is a short-lived local copy of the latest rate, consulted only
// when a live repository read fails. It must never be served past ExpiresAt.
type Snapshot struct {
	Rate      float64
	UpdatedAt time.Time
	ExpiresAt time.Time
}

func (s Snapshot) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
