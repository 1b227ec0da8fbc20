package booking

import (
	"time"

	"world-hotels/internal/domain/pricing"
	"world-hotels/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDurationOutOfRange = errs.New("stay duration must be between 1 and 30 nights")
	ErrNegativePrice      = errs.New("price cannot be negative")
)

const (
	MinDurationNights = 1
	MaxDurationNights = 30
)

type Booking struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	userID      uuid.UUID
	roomType    pricing.RoomType
	checkIn     time.Time
	duration    int
	totalPrice  float64
	bookingDate time.Time
}

// NewBooking validates the stay duration and derives the total price from
// the per-night base-currency price. perNight must already be rounded;
// the total is rounded again to keep the stored amount at 2 decimals.
func NewBooking(hotelID, userID uuid.UUID, roomType pricing.RoomType, checkIn time.Time, duration int, perNight float64, now time.Time) (*Booking, error) {
	if duration < MinDurationNights || duration > MaxDurationNights {
		return nil, ErrDurationOutOfRange
	}
	if perNight < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:          uuid.New(),
		hotelID:     hotelID,
		userID:      userID,
		roomType:    roomType,
		checkIn:     checkIn,
		duration:    duration,
		totalPrice:  pricing.RoundMoney(perNight * float64(duration)),
		bookingDate: now,
	}, nil
}

func ReconstructBooking(id, hotelID, userID uuid.UUID, roomType pricing.RoomType, checkIn time.Time, duration int, totalPrice float64, bookingDate time.Time) *Booking {
	return &Booking{
		id:          id,
		hotelID:     hotelID,
		userID:      userID,
		roomType:    roomType,
		checkIn:     checkIn,
		duration:    duration,
		totalPrice:  totalPrice,
		bookingDate: bookingDate,
	}
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) HotelID() uuid.UUID         { return b.hotelID }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) RoomType() pricing.RoomType { return b.roomType }
func (b *Booking) CheckIn() time.Time         { return b.checkIn }
func (b *Booking) Duration() int              { return b.duration }
func (b *Booking) TotalPrice() float64        { return b.totalPrice }
func (b *Booking) BookingDate() time.Time     { return b.bookingDate }
