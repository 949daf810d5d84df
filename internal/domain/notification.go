package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationRateChange    NotificationType = "rate_change"
	NotificationRateDeviation NotificationType = "rate_deviation"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ChangeNotification is an alert record produced by the update jobs and the
// manual override path. Records are deleted on dismissal; consumers only
// query a recent look-back window.
type ChangeNotification struct {
	ID        uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Severity  Severity
	Metadata  map[string]any
	CreatedAt time.Time
}

// NewRateChange describes a significant move between two automated fetches.
func NewRateChange(previous, current, changePercent float64, asOfDate, now time.Time) ChangeNotification {
	return ChangeNotification{
		ID:       uuid.New(),
		Type:     NotificationRateChange,
		Title:    "Exchange rate changed",
		Message:  fmt.Sprintf("USD/VES moved from %.4f to %.4f (%.2f%%)", previous, current, changePercent),
		Severity: SeverityInfo,
		Metadata: map[string]any{
			"previousRate":  previous,
			"newRate":       current,
			"changePercent": changePercent,
			"asOfDate":      asOfDate.Format(time.DateOnly),
			"timestamp":     now.Format(time.RFC3339),
		},
		CreatedAt: now,
	}
}

// NewRateDeviation describes a manual entry diverging from the provider rate.
func NewRateDeviation(manual, api, differencePercent float64, asOfDate, now time.Time) ChangeNotification {
	return ChangeNotification{
		ID:       uuid.New(),
		Type:     NotificationRateDeviation,
		Title:    "Manual rate deviates from provider",
		Message:  fmt.Sprintf("Manual rate %.4f differs from provider rate %.4f by %.2f%%", manual, api, differencePercent),
		Severity: SeverityWarning,
		Metadata: map[string]any{
			"manualRate":        manual,
			"apiRate":           api,
			"differencePercent": differencePercent,
			"asOfDate":          asOfDate.Format(time.DateOnly),
		},
		CreatedAt: now,
	}
}
