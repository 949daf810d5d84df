package domain

import "errors"

var (
	ErrRateNotFound        = errors.New("rate not found")
	ErrProviderUnavailable = errors.New("rate provider unavailable")
	ErrInvalidManualRate   = errors.New("invalid manual rate")
)
