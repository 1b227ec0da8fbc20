//go:build unit

package hotel_test

import (
	"testing"

	"world-hotels/internal/domain/hotel"
	"world-hotels/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hotelCase struct {
	name   string
	mutate func(*builder.HotelBuilder)
	errIs  error
}

func TestHotel(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "London", actual.City())
		assert.Equal(t, 100, actual.Capacity())
		assert.Equal(t, 150.00, actual.PeakRate())
		assert.Equal(t, 100.00, actual.OffPeakRate())
		require.NotNil(t, actual.ImageURL())
	})

	t.Run("city validation", func(t *testing.T) {
		runHotelCases(t, []hotelCase{
			{
				name:   "empty city",
				mutate: func(b *builder.HotelBuilder) { b.City = "" },
				errIs:  hotel.ErrEmptyCity,
			},
			{
				name:   "whitespace only city",
				mutate: func(b *builder.HotelBuilder) { b.City = "   " },
				errIs:  hotel.ErrEmptyCity,
			},
			{
				name:   "single character city",
				mutate: func(b *builder.HotelBuilder) { b.City = "X" },
			},
		})
	})

	t.Run("rate validation", func(t *testing.T) {
		runHotelCases(t, []hotelCase{
			{
				name:   "zero rates",
				mutate: func(b *builder.HotelBuilder) { b.PeakRate = 0; b.OffPeakRate = 0 },
			},
			{
				name:   "negative peak rate",
				mutate: func(b *builder.HotelBuilder) { b.PeakRate = -1 },
				errIs:  hotel.ErrNegativeRate,
			},
			{
				name:   "negative off-peak rate",
				mutate: func(b *builder.HotelBuilder) { b.OffPeakRate = -1 },
				errIs:  hotel.ErrNegativeRate,
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runHotelCases(t, []hotelCase{
			{
				name:   "zero capacity",
				mutate: func(b *builder.HotelBuilder) { b.Capacity = 0 },
			},
			{
				name:   "negative capacity",
				mutate: func(b *builder.HotelBuilder) { b.Capacity = -1 },
				errIs:  hotel.ErrNegativeCapacity,
			},
		})
	})

	t.Run("city is trimmed", func(t *testing.T) {
		actual, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.City = "  Kathmandu  "
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Kathmandu", actual.City())
	})
}

func runHotelCases(t *testing.T, cases []hotelCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewHotelBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
