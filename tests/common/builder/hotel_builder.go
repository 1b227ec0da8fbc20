//go:build unit || e2e

package builder

import (
	"time"

	domhotel "world-hotels/internal/domain/hotel"
	reqdto "world-hotels/internal/handler/dto/request"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	City        string
	Capacity    int
	PeakRate    float64
	OffPeakRate float64
	ImageURL    *string
	CreatedAt   time.Time
}

func NewHotelBuilder() *HotelBuilder {
	img := "https://example.com/hotel.jpg"
	return &HotelBuilder{
		City:        "London",
		Capacity:    100,
		PeakRate:    150.00,
		OffPeakRate: 100.00,
		ImageURL:    &img,
		CreatedAt:   time.Now(),
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

func (h *HotelBuilder) BuildDomain() (*domhotel.Hotel, error) {
	return domhotel.NewHotel(uuid.Nil, h.City, h.Capacity, h.PeakRate, h.OffPeakRate, h.ImageURL, h.CreatedAt)
}

func (h *HotelBuilder) BuildAddRequestDTO() reqdto.AddHotelRequest {
	capacity := h.Capacity
	return reqdto.AddHotelRequest{
		City:     h.City,
		BaseRate: h.OffPeakRate,
		Capacity: &capacity,
		ImageURL: h.ImageURL,
	}
}
