package commands

import (
	"context"
	"errors"
	"log/slog"

	"world-hotels/internal/domain/hotel"
	reqdto "world-hotels/internal/handler/dto/request"
	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/clock"
	"world-hotels/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// New and re-priced hotels derive the peak rate from the off-peak base
// rate with a fixed markup.
const peakRateMarkup = 1.5

type HotelCommands interface {
	AddHotel(ctx context.Context, req reqdto.AddHotelRequest) (uuid.UUID, error)
	UpdateRate(ctx context.Context, hotelID uuid.UUID, rate float64) error
	RemoveHotel(ctx context.Context, hotelID uuid.UUID) error
}

type hotelCommandsImpl struct {
	hotelRepo   HotelRepository
	bookingRepo BookingRepository
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewHotelCommands(
	hotelRepo HotelRepository,
	bookingRepo BookingRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) HotelCommands {
	return &hotelCommandsImpl{
		hotelRepo:   hotelRepo,
		bookingRepo: bookingRepo,
		db:          db,
		clock:       clock,
	}
}

func (c *hotelCommandsImpl) AddHotel(ctx context.Context, req reqdto.AddHotelRequest) (uuid.UUID, error) {
	capacity := hotel.DefaultCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}

	h, err := hotel.NewHotel(
		uuid.Nil, req.City, capacity,
		req.BaseRate*peakRateMarkup, req.BaseRate,
		req.ImageURL, c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.hotelRepo.Create(ctx, h); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return h.ID(), nil
}

func (c *hotelCommandsImpl) UpdateRate(ctx context.Context, hotelID uuid.UUID, rate float64) error {
	if rate < 0 {
		return hotel.ErrNegativeRate
	}

	err := c.hotelRepo.UpdateRates(ctx, hotelID, rate*peakRateMarkup, rate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrHotelNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// RemoveHotel deletes the hotel and its bookings in one transaction.
func (c *hotelCommandsImpl) RemoveHotel(ctx context.Context, hotelID uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.bookingRepo.DeleteByHotel(ctx, tx, hotelID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.hotelRepo.Delete(ctx, tx, hotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrHotelNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
