package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// HotelRecord is the raw hotel row the read store returns; display
// amounts are computed in the query layer.
type HotelRecord struct {
	ID          uuid.UUID
	City        string
	Capacity    int
	PeakRate    float64
	OffPeakRate float64
	ImageURL    *string
}

type HotelListItem struct {
	ID          uuid.UUID `json:"id"`
	City        string    `json:"city"`
	DisplayRate float64   `json:"display_rate"`
	Currency    string    `json:"currency"`
	Available   bool      `json:"available"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

type QuoteView struct {
	HotelID  uuid.UUID `json:"hotel_id"`
	City     string    `json:"city"`
	RoomType string    `json:"room_type"`
	CheckIn  time.Time `json:"check_in"`
	Nights   int       `json:"nights"`
	Currency string    `json:"currency"`
	PerNight float64   `json:"per_night"`
	Total    float64   `json:"total"`
}

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	City        string    `json:"city"`
	ImageURL    *string   `json:"image_url,omitempty"`
	RoomType    string    `json:"room_type"`
	CheckIn     time.Time `json:"check_in"`
	Duration    int       `json:"duration"`
	TotalPrice  float64   `json:"total_price"`
	BookingDate time.Time `json:"booking_date"`
}

type UserBookingItem struct {
	BookingView
	CancelFee float64 `json:"cancel_fee"`
	CanCancel bool    `json:"can_cancel"`
}

type DatedAmount struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

type RoomTypeCount struct {
	RoomType string `json:"room_type"`
	Count    int    `json:"count"`
}

type StatsView struct {
	TotalRevenue   float64         `json:"total_revenue"`
	SalesByCheckIn []DatedAmount   `json:"sales_by_check_in"`
	RoomTypeCounts []RoomTypeCount `json:"room_type_counts"`
}
