//go:build unit || e2e

package builder

import (
	"time"

	dombooking "world-hotels/internal/domain/booking"
	"world-hotels/internal/domain/pricing"
	reqdto "world-hotels/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	HotelID  uuid.UUID
	UserID   uuid.UUID
	RoomType pricing.RoomType
	CheckIn  time.Time
	Duration int
	PerNight float64
	Now      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		HotelID:  uuid.New(),
		UserID:   uuid.New(),
		RoomType: pricing.RoomTypeStandard,
		CheckIn:  now.AddDate(0, 0, 30),
		Duration: 3,
		PerNight: 100.00,
		Now:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.HotelID, b.UserID, b.RoomType, b.CheckIn, b.Duration, b.PerNight, b.Now)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HotelID:  b.HotelID,
		RoomType: b.RoomType.String(),
		CheckIn:  b.CheckIn.Format("2006-01-02"),
		Duration: b.Duration,
	}
}
