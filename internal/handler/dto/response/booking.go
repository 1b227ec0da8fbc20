package response

import (
	"time"

	"world-hotels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotelId"`
	City        string    `json:"city"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	RoomType    string    `json:"roomType"`
	CheckIn     time.Time `json:"checkIn"`
	Duration    int       `json:"duration"`
	TotalPrice  float64   `json:"totalPrice"`
	BookingDate time.Time `json:"bookingDate"`
}

type UserBookingResponse struct {
	BookingResponse
	CancelFee float64 `json:"cancelFee"`
	CanCancel bool    `json:"canCancel"`
}

type CancelBookingResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Fee       float64   `json:"fee"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromUserBookingList(items []*queries.UserBookingItem) []*UserBookingResponse {
	res := make([]*UserBookingResponse, len(items))
	for i, it := range items {
		res[i] = &UserBookingResponse{
			BookingResponse: *FromBookingView(&it.BookingView),
			CancelFee:       it.CancelFee,
			CanCancel:       it.CanCancel,
		}
	}
	return res
}
