//go:build unit

package pricing_test

import (
	"fmt"
	"testing"
	"time"

	"world-hotels/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsPeakMonth(t *testing.T) {
	peak := map[time.Month]bool{
		time.January:   false,
		time.February:  false,
		time.March:     false,
		time.April:     true,
		time.May:       true,
		time.June:      true,
		time.July:      true,
		time.August:    true,
		time.September: false,
		time.October:   false,
		time.November:  true,
		time.December:  true,
	}
	for m, want := range peak {
		assert.Equal(t, want, pricing.IsPeakMonth(m), m.String())
	}
}

func TestSeasonalRate(t *testing.T) {
	const peakRate, offPeakRate = 150.0, 100.0

	assert.Equal(t, peakRate, pricing.SeasonalRate(peakRate, offPeakRate, date(2026, time.July, 15)))
	assert.Equal(t, offPeakRate, pricing.SeasonalRate(peakRate, offPeakRate, date(2026, time.January, 15)))
	assert.Equal(t, peakRate, pricing.SeasonalRate(peakRate, offPeakRate, date(2026, time.December, 31)))
}

func TestRoomTypeMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, pricing.RoomTypeStandard.Multiplier())
	assert.Equal(t, 1.2, pricing.RoomTypeDouble.Multiplier())
	assert.Equal(t, 1.5, pricing.RoomTypeFamily.Multiplier())
	// Unknown types price as standard
	assert.Equal(t, 1.0, pricing.RoomType("Penthouse").Multiplier())
}

func TestPerNightAdvanceDiscount(t *testing.T) {
	calc := pricing.NewCalculator(pricing.NewConverter(nil))
	today := date(2026, time.January, 1)

	// Equal peak and off-peak rates pin the seasonal rate at 100, so the
	// discount tier is the only moving part.
	cases := []struct {
		daysAhead int
		want      float64
	}{
		{0, 100.00},
		{30, 100.00},
		{44, 100.00},
		{45, 90.00},
		{59, 90.00},
		{60, 80.00},
		{79, 80.00},
		{80, 70.00},
		{90, 70.00},
		{91, 100.00},
		{-10, 100.00},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d days ahead", c.daysAhead), func(t *testing.T) {
			checkIn := today.AddDate(0, 0, c.daysAhead)
			got := calc.PerNight(100, 100, pricing.RoomTypeStandard, checkIn, today, "GBP")
			assert.Equal(t, c.want, got)
		})
	}
}

func TestPerNightCombined(t *testing.T) {
	calc := pricing.NewCalculator(pricing.NewConverter(nil))

	// Peak rate 100, Family x1.5, 85 days ahead x0.70, USD x1.27
	today := date(2026, time.January, 26)
	checkIn := date(2026, time.April, 21) // 85 days later, peak month
	got := calc.PerNight(100, 60, pricing.RoomTypeFamily, checkIn, today, "USD")
	assert.Equal(t, 133.35, got)
}

func TestPerNightRoundsOnceAtTheEnd(t *testing.T) {
	calc := pricing.NewCalculator(pricing.NewConverter(map[string]float64{"GBP": 1.0, "XXX": 1.19}))
	today := date(2026, time.January, 1)
	checkIn := date(2026, time.February, 1) // off-peak, no discount

	// 33.33 * 1.2 * 1.19 = 47.595..., which must round half away from zero
	got := calc.PerNight(50, 33.33, pricing.RoomTypeDouble, checkIn, today, "XXX")
	assert.Equal(t, 47.60, got)
}

func TestPerNightIsDeterministic(t *testing.T) {
	calc := pricing.NewCalculator(pricing.NewConverter(nil))
	today := date(2026, time.March, 10)
	checkIn := date(2026, time.June, 20)

	first := calc.PerNight(120, 80, pricing.RoomTypeDouble, checkIn, today, "EUR")
	for range 5 {
		assert.Equal(t, first, calc.PerNight(120, 80, pricing.RoomTypeDouble, checkIn, today, "EUR"))
	}
}

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.004, 1.00},
		{0.125, 0.13},
		{-0.125, -0.13},
		{133.349, 133.35},
		{133.351, 133.35},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pricing.RoundMoney(c.in), "RoundMoney(%v)", c.in)
	}
}
