package request

type AddHotelRequest struct {
	City     string  `json:"city" binding:"required"`
	BaseRate float64 `json:"base_rate" binding:"required,gte=0"`
	Capacity *int    `json:"capacity,omitempty" binding:"omitempty,gte=0"`
	ImageURL *string `json:"image_url,omitempty"`
}

type UpdateRateRequest struct {
	Rate float64 `json:"rate" binding:"required,gte=0"`
}
