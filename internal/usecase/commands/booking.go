package commands

import (
	"context"
	"errors"
	"log/slog"

	"world-hotels/internal/domain/booking"
	"world-hotels/internal/domain/pricing"
	reqdto "world-hotels/internal/handler/dto/request"
	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/clock"
	"world-hotels/internal/pkg/errs"
	"world-hotels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CancelBookingResult struct {
	BookingID uuid.UUID
	Fee       float64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) (*CancelBookingResult, error)
}

type bookingCommandsImpl struct {
	hotelRepo      HotelRepository
	bookingRepo    BookingRepository
	bookingQueries queries.BookingQueries
	calculator     *pricing.Calculator
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewBookingCommands(
	hotelRepo HotelRepository,
	bookingRepo BookingRepository,
	bookingQueries queries.BookingQueries,
	calculator *pricing.Calculator,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		hotelRepo:      hotelRepo,
		bookingRepo:    bookingRepo,
		bookingQueries: bookingQueries,
		calculator:     calculator,
		db:             db,
		clock:          clock,
	}
}

// CreateBooking gates on capacity and persists the booking in one
// transaction. The hotel row lock serializes concurrent bookings for the
// same hotel, so the count cannot go stale between the availability check
// and the insert. The stored total is in the base currency; display
// conversion happens at read time.
func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	checkIn, err := req.ParseCheckIn()
	if err != nil {
		return nil, err
	}

	roomType := pricing.RoomType(req.RoomType)
	if !roomType.IsKnown() {
		slog.Warn("unknown room type in booking request, using standard multiplier",
			"room_type", req.RoomType, "user_id", userID)
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	h, err := c.hotelRepo.FindByIDForUpdate(ctx, tx, req.HotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	existing, err := c.bookingRepo.CountByDate(ctx, tx, h.ID(), checkIn)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !booking.CanAcceptBooking(h.Capacity(), existing) {
		return nil, errs.ErrSoldOut
	}

	perNight := c.calculator.PerNight(
		h.PeakRate(), h.OffPeakRate(), roomType,
		checkIn, c.clock.Now(), pricing.BaseCurrency,
	)

	newBooking, err := booking.NewBooking(h.ID(), userID, roomType, checkIn, req.Duration, perNight, c.clock.Now())
	if err != nil {
		if errors.Is(err, booking.ErrDurationOutOfRange) {
			return nil, errs.Mark(err, errs.ErrDurationOutOfRange)
		}
		return nil, err
	}

	bookingID, err := c.bookingRepo.Create(ctx, tx, newBooking)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the joined view from the read store
	return c.bookingQueries.GetByID(ctx, bookingID)
}

// CancelBooking applies the cancellation policy before deleting. The
// policy itself is advisory; this layer is where canCancel=false becomes
// a hard refusal.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) (*CancelBookingResult, error) {
	b, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if b.UserID() != userID {
		// Foreign bookings are indistinguishable from missing ones.
		return nil, errs.ErrBookingNotFound
	}

	terms := booking.CancellationTermsFor(b.CheckIn(), c.clock.Now(), b.TotalPrice())
	if !terms.CanCancel {
		return nil, errs.ErrCancellationNotAllowed
	}

	deleted, err := c.bookingRepo.Delete(ctx, bookingID, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !deleted {
		return nil, errs.ErrBookingNotFound
	}

	return &CancelBookingResult{BookingID: bookingID, Fee: terms.Fee}, nil
}
