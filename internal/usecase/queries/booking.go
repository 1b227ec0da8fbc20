package queries

import (
	"context"

	"world-hotels/internal/domain/booking"
	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/clock"
	"world-hotels/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByID is used by the write side for read-after-write views.
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*UserBookingItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clock}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ListUserBookings returns the caller's bookings, newest check-in first,
// each annotated with the cancellation terms evaluated at "today".
func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*UserBookingItem, error) {
	views, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	today := q.clock.Now()
	items := make([]*UserBookingItem, len(views))
	for i, v := range views {
		terms := booking.CancellationTermsFor(v.CheckIn, today, v.TotalPrice)
		items[i] = &UserBookingItem{
			BookingView: *v,
			CancelFee:   terms.Fee,
			CanCancel:   terms.CanCancel,
		}
	}

	return items, nil
}
