package booking

import (
	"time"

	"world-hotels/internal/domain/pricing"
	"world-hotels/internal/pkg/clock"
)

// Cancellation fee tiers by whole days until check-in.
const (
	FreeCancellationDays = 60
	HalfFeeDays          = 30
)

// CancellationTerms carries both the fee and the permission flag: a UI
// may show the forfeited amount even when cancellation is disallowed.
type CancellationTerms struct {
	Fee       float64
	CanCancel bool
}

// CancellationTermsFor computes the refund fee and whether cancellation
// is still permitted. Days until check-in may be negative for past stays,
// which land in the full-forfeiture tier. Pure function of its inputs.
func CancellationTermsFor(checkIn, today time.Time, totalPrice float64) CancellationTerms {
	daysUntil := clock.DaysBetween(today, checkIn)

	switch {
	case daysUntil >= FreeCancellationDays:
		return CancellationTerms{Fee: 0, CanCancel: true}
	case daysUntil >= HalfFeeDays:
		return CancellationTerms{Fee: pricing.RoundMoney(totalPrice * 0.5), CanCancel: true}
	default:
		return CancellationTerms{Fee: totalPrice, CanCancel: false}
	}
}
