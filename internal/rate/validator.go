package rate

import (
	"fmt"
	"math"

	"vesrates/internal/domain"
)

var (
	ErrRateNotFinite   = fmt.Errorf("%w: rate must be a finite number", domain.ErrInvalidManualRate)
	ErrRateNotPositive = fmt.Errorf("%w: rate must be greater than zero", domain.ErrInvalidManualRate)
)

// ValidateManualRate rejects anything that is not a finite positive number
// before a manual override touches storage.
func ValidateManualRate(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ErrRateNotFinite
	}
	if value <= 0 {
		return ErrRateNotPositive
	}
	return nil
}
