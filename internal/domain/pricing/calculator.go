package pricing

import (
	"math"
	"time"

	"world-hotels/internal/pkg/clock"
)

// Advance-booking discount tiers, keyed by whole days between booking and
// check-in. Bookings inside 45 days, and past dates, get no discount.
const (
	earlyBirdMinDays = 80
	earlyBirdMaxDays = 90
	midTermMinDays   = 60
	shortTermMinDays = 45
)

type Calculator struct {
	converter *Converter
}

func NewCalculator(converter *Converter) *Calculator {
	return &Calculator{converter: converter}
}

// PerNight computes the per-night price for one room in the requested
// currency: seasonal base rate, room-type multiplier, advance-booking
// discount, then currency conversion. The result is rounded half away
// from zero to 2 decimal places; all intermediate values stay unrounded.
// Pure function of its inputs: "today" is supplied by the caller.
func (c *Calculator) PerNight(peakRate, offPeakRate float64, roomType RoomType, checkIn, today time.Time, currency string) float64 {
	price := SeasonalRate(peakRate, offPeakRate, checkIn)
	price *= roomType.Multiplier()
	price *= advanceDiscount(clock.DaysBetween(today, checkIn))
	return RoundMoney(c.converter.Convert(price, currency))
}

// SeasonalRate selects the peak or off-peak rate by the calendar month of
// the check-in date. April through August plus November and December are
// peak season.
func SeasonalRate(peakRate, offPeakRate float64, checkIn time.Time) float64 {
	if IsPeakMonth(checkIn.Month()) {
		return peakRate
	}
	return offPeakRate
}

func IsPeakMonth(m time.Month) bool {
	return (m >= time.April && m <= time.August) || m == time.November || m == time.December
}

func advanceDiscount(daysAhead int) float64 {
	switch {
	case daysAhead >= earlyBirdMinDays && daysAhead <= earlyBirdMaxDays:
		return 0.70
	case daysAhead >= midTermMinDays && daysAhead < earlyBirdMinDays:
		return 0.80
	case daysAhead >= shortTermMinDays && daysAhead < midTermMinDays:
		return 0.90
	default:
		return 1.0
	}
}

// RoundMoney rounds to 2 decimal places, half away from zero.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
