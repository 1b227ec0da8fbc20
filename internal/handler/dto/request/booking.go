package request

import (
	"time"

	"world-hotels/internal/pkg/errs"

	"github.com/google/uuid"
)

const checkInLayout = "2006-01-02"

type CreateBookingRequest struct {
	HotelID  uuid.UUID `json:"hotel_id" binding:"required"`
	RoomType string    `json:"room_type" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required"`
	Duration int       `json:"duration" binding:"required"`
}

// ParseCheckIn parses the check-in date. An unparseable date is a caller
// error, never silently defaulted.
func (r CreateBookingRequest) ParseCheckIn() (time.Time, error) {
	t, err := time.Parse(checkInLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrInvalidDate)
	}
	return t, nil
}

// ParseCheckInDate parses a YYYY-MM-DD query or form value.
func ParseCheckInDate(value string) (time.Time, error) {
	t, err := time.Parse(checkInLayout, value)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrInvalidDate)
	}
	return t, nil
}
