package commands

import (
	"context"
	"time"

	"world-hotels/internal/domain/booking"
	"world-hotels/internal/domain/hotel"
	"world-hotels/internal/infra/repository"

	"github.com/google/uuid"
)

type HotelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	FindByIDForUpdate(ctx context.Context, tx repository.DBTX, id uuid.UUID) (*hotel.Hotel, error)
	Create(ctx context.Context, h *hotel.Hotel) error
	UpdateRates(ctx context.Context, id uuid.UUID, peakRate, offPeakRate float64) error
	Delete(ctx context.Context, tx repository.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx repository.DBTX, b *booking.Booking) (uuid.UUID, error)
	CountByDate(ctx context.Context, db repository.DBTX, hotelID uuid.UUID, checkIn time.Time) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
	DeleteByHotel(ctx context.Context, tx repository.DBTX, hotelID uuid.UUID) error
}
