//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/clock"
	"world-hotels/internal/pkg/errs"
	"world-hotels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingReadStore struct {
	views []*queries.BookingView
	err   error
}

func (f *fakeBookingReadStore) FindViewByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (f *fakeBookingReadStore) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.BookingView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.views, nil
}

func TestBookingQueriesGetByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	store := &fakeBookingReadStore{views: []*queries.BookingView{
		{ID: bookingID, City: "London", TotalPrice: 300},
	}}
	q := queries.NewBookingQueries(store, clock.NewRealClock())

	t.Run("found", func(t *testing.T) {
		view, err := q.GetByID(ctx, bookingID)
		require.NoError(t, err)
		assert.Equal(t, "London", view.City)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestListUserBookingsAnnotatesCancellationTerms(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	store := &fakeBookingReadStore{views: []*queries.BookingView{
		{ID: uuid.New(), CheckIn: today.AddDate(0, 0, 70), TotalPrice: 400},
		{ID: uuid.New(), CheckIn: today.AddDate(0, 0, 40), TotalPrice: 400},
		{ID: uuid.New(), CheckIn: today.AddDate(0, 0, 10), TotalPrice: 400},
	}}
	q := queries.NewBookingQueries(store, clock.NewMockClock(today))

	items, err := q.ListUserBookings(ctx, uuid.New())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 0.0, items[0].CancelFee)
	assert.True(t, items[0].CanCancel)

	assert.Equal(t, 200.0, items[1].CancelFee)
	assert.True(t, items[1].CanCancel)

	assert.Equal(t, 400.0, items[2].CancelFee)
	assert.False(t, items[2].CanCancel)
}
