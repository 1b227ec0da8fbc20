package pricing

type RoomType string

const (
	RoomTypeStandard RoomType = "Standard"
	RoomTypeDouble   RoomType = "Double"
	RoomTypeFamily   RoomType = "Family"
)

func (rt RoomType) String() string {
	return string(rt)
}

func (rt RoomType) IsKnown() bool {
	switch rt {
	case RoomTypeStandard, RoomTypeDouble, RoomTypeFamily:
		return true
	default:
		return false
	}
}

// Multiplier returns the per-night price multiplier for the room type.
// Unrecognized room types price at the standard multiplier.
func (rt RoomType) Multiplier() float64 {
	switch rt {
	case RoomTypeDouble:
		return 1.2
	case RoomTypeFamily:
		return 1.5
	default:
		return 1.0
	}
}
