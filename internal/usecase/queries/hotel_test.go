//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"world-hotels/internal/domain/pricing"
	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/clock"
	"world-hotels/internal/pkg/errs"
	"world-hotels/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHotelReadStore struct {
	records []*queries.HotelRecord
	err     error
}

func (f *fakeHotelReadStore) ListByCity(_ context.Context, city string) ([]*queries.HotelRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeHotelReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.HotelRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
}

type fakeCountReadStore struct {
	counts map[uuid.UUID]int
}

func (f *fakeCountReadStore) CountsByDate(_ context.Context, _ time.Time) (map[uuid.UUID]int, error) {
	return f.counts, nil
}

func newHotelQueries(hotels *fakeHotelReadStore, counts *fakeCountReadStore, today time.Time) queries.HotelQueries {
	converter := pricing.NewConverter(nil)
	return queries.NewHotelQueries(
		hotels,
		counts,
		converter,
		pricing.NewCalculator(converter),
		clock.NewMockClock(today),
	)
}

func TestListHotels(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	londonID := uuid.New()
	parisID := uuid.New()
	store := &fakeHotelReadStore{records: []*queries.HotelRecord{
		{ID: londonID, City: "London", Capacity: 2, PeakRate: 150, OffPeakRate: 100},
		{ID: parisID, City: "Paris", Capacity: 1, PeakRate: 300, OffPeakRate: 200},
	}}

	t.Run("no date lists off-peak rates and everything available", func(t *testing.T) {
		q := newHotelQueries(store, &fakeCountReadStore{}, today)

		items, err := q.ListHotels(ctx, queries.ListHotelsParams{})
		require.NoError(t, err)

		want := []*queries.HotelListItem{
			{ID: londonID, City: "London", DisplayRate: 100, Currency: "GBP", Available: true},
			{ID: parisID, City: "Paris", DisplayRate: 200, Currency: "GBP", Available: true},
		}
		assert.Empty(t, cmp.Diff(want, items))
	})

	t.Run("peak date uses peak rate and booking counts", func(t *testing.T) {
		counts := &fakeCountReadStore{counts: map[uuid.UUID]int{parisID: 1}}
		q := newHotelQueries(store, counts, today)

		checkIn := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
		items, err := q.ListHotels(ctx, queries.ListHotelsParams{CheckIn: &checkIn})
		require.NoError(t, err)

		want := []*queries.HotelListItem{
			{ID: londonID, City: "London", DisplayRate: 150, Currency: "GBP", Available: true},
			{ID: parisID, City: "Paris", DisplayRate: 300, Currency: "GBP", Available: false},
		}
		assert.Empty(t, cmp.Diff(want, items))
	})

	t.Run("max price filters on the converted rate", func(t *testing.T) {
		q := newHotelQueries(store, &fakeCountReadStore{}, today)

		maxPrice := 150.0
		items, err := q.ListHotels(ctx, queries.ListHotelsParams{MaxPrice: &maxPrice})
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, "London", items[0].City)
	})

	t.Run("display currency converts the rate", func(t *testing.T) {
		q := newHotelQueries(store, &fakeCountReadStore{}, today)

		items, err := q.ListHotels(ctx, queries.ListHotelsParams{Currency: "USD"})
		require.NoError(t, err)

		require.Len(t, items, 2)
		assert.Equal(t, 127.0, items[0].DisplayRate)
		assert.Equal(t, "USD", items[0].Currency)
	})

	t.Run("read store failure is marked as database error", func(t *testing.T) {
		broken := &fakeHotelReadStore{err: errs.New("connection lost")}
		q := newHotelQueries(broken, &fakeCountReadStore{}, today)

		_, err := q.ListHotels(ctx, queries.ListHotelsParams{})
		require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC)

	hotelID := uuid.New()
	store := &fakeHotelReadStore{records: []*queries.HotelRecord{
		{ID: hotelID, City: "Kathmandu", Capacity: 100, PeakRate: 100, OffPeakRate: 60},
	}}
	q := newHotelQueries(store, &fakeCountReadStore{}, today)

	t.Run("full pipeline in a foreign currency", func(t *testing.T) {
		// 85 days ahead, peak month: 100 * 1.5 * 0.70 * 1.27
		view, err := q.Quote(ctx, queries.QuoteParams{
			HotelID:  hotelID,
			RoomType: "Family",
			CheckIn:  time.Date(2026, time.April, 21, 0, 0, 0, 0, time.UTC),
			Nights:   2,
			Currency: "USD",
		})
		require.NoError(t, err)

		assert.Equal(t, 133.35, view.PerNight)
		assert.Equal(t, 266.70, view.Total)
		assert.Equal(t, "USD", view.Currency)
	})

	t.Run("empty currency defaults to base", func(t *testing.T) {
		view, err := q.Quote(ctx, queries.QuoteParams{
			HotelID:  hotelID,
			RoomType: "Standard",
			CheckIn:  time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
			Nights:   1,
		})
		require.NoError(t, err)

		assert.Equal(t, pricing.BaseCurrency, view.Currency)
		assert.Equal(t, 60.0, view.PerNight)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		_, err := q.Quote(ctx, queries.QuoteParams{
			HotelID:  uuid.New(),
			RoomType: "Standard",
			CheckIn:  today.AddDate(0, 0, 10),
			Nights:   1,
		})
		require.ErrorIs(t, err, errs.ErrHotelNotFound)
	})

	t.Run("nights out of range", func(t *testing.T) {
		for _, nights := range []int{0, -1, 31} {
			_, err := q.Quote(ctx, queries.QuoteParams{
				HotelID:  hotelID,
				RoomType: "Standard",
				CheckIn:  today.AddDate(0, 0, 10),
				Nights:   nights,
			})
			require.ErrorIs(t, err, errs.ErrDurationOutOfRange, "nights=%d", nights)
		}
	})
}
