package response

import (
	"time"

	"world-hotels/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	City        string    `json:"city"`
	DisplayRate float64   `json:"displayRate"`
	Currency    string    `json:"currency"`
	Available   bool      `json:"available"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
}

type QuoteResponse struct {
	HotelID  uuid.UUID `json:"hotelId"`
	City     string    `json:"city"`
	RoomType string    `json:"roomType"`
	CheckIn  string    `json:"checkIn"`
	Nights   int       `json:"nights"`
	Currency string    `json:"currency"`
	PerNight float64   `json:"perNight"`
	Total    float64   `json:"total"`
}

func FromHotelList(items []*queries.HotelListItem) []*HotelListItemResponse {
	res := make([]*HotelListItemResponse, len(items))
	for i, it := range items {
		res[i] = &HotelListItemResponse{
			ID:          it.ID,
			City:        it.City,
			DisplayRate: it.DisplayRate,
			Currency:    it.Currency,
			Available:   it.Available,
			ImageURL:    it.ImageURL,
		}
	}
	return res
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		HotelID:  v.HotelID,
		City:     v.City,
		RoomType: v.RoomType,
		CheckIn:  v.CheckIn.Format(time.DateOnly),
		Nights:   v.Nights,
		Currency: v.Currency,
		PerNight: v.PerNight,
		Total:    v.Total,
	}
}
