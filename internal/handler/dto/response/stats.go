package response

import (
	"time"

	"world-hotels/internal/usecase/queries"

	"github.com/google/uuid"
)

type DatedAmountResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type RoomTypeCountResponse struct {
	RoomType string `json:"roomType"`
	Count    int    `json:"count"`
}

type StatsResponse struct {
	TotalRevenue   float64                 `json:"totalRevenue"`
	SalesByCheckIn []DatedAmountResponse   `json:"salesByCheckIn"`
	RoomTypeCounts []RoomTypeCountResponse `json:"roomTypeCounts"`
}

type HotelCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	sales := make([]DatedAmountResponse, len(v.SalesByCheckIn))
	for i, s := range v.SalesByCheckIn {
		sales[i] = DatedAmountResponse{Date: s.Date.Format(time.DateOnly), Amount: s.Amount}
	}
	counts := make([]RoomTypeCountResponse, len(v.RoomTypeCounts))
	for i, rc := range v.RoomTypeCounts {
		counts[i] = RoomTypeCountResponse{RoomType: rc.RoomType, Count: rc.Count}
	}
	return &StatsResponse{
		TotalRevenue:   v.TotalRevenue,
		SalesByCheckIn: sales,
		RoomTypeCounts: counts,
	}
}
