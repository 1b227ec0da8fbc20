//go:build unit

package clock_test

import (
	"testing"
	"time"

	"world-hotels/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", base, base, 0},
		{"next day", base, base.AddDate(0, 0, 1), 1},
		{"ninety days", base, base.AddDate(0, 0, 90), 90},
		{"reversed is negative", base.AddDate(0, 0, 7), base, -7},
		{"across month boundary", time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC), 2},
		{"time of day is ignored", base.Add(23 * time.Hour), base.AddDate(0, 0, 1).Add(1 * time.Minute), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, clock.DaysBetween(c.from, c.to))
		})
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	mc := clock.NewMockClock(start)

	assert.Equal(t, start, mc.Now())

	mc.Add(48 * time.Hour)
	assert.Equal(t, start.AddDate(0, 0, 2), mc.Now())

	mc.Set(start)
	assert.Equal(t, start, mc.Now())
}
