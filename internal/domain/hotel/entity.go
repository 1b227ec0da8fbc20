package hotel

import (
	"strings"
	"time"

	"world-hotels/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCity        = errs.New("hotel city cannot be empty")
	ErrNegativeRate     = errs.New("hotel rate cannot be negative")
	ErrNegativeCapacity = errs.New("hotel capacity cannot be negative")
)

// DefaultCapacity is the number of simultaneous bookings a newly created
// hotel accepts per date.
const DefaultCapacity = 100

type Hotel struct {
	id          uuid.UUID
	city        string
	capacity    int
	peakRate    float64
	offPeakRate float64
	imageURL    *string
	createdAt   time.Time
}

func NewHotel(id uuid.UUID, city string, capacity int, peakRate, offPeakRate float64, imageURL *string, now time.Time) (*Hotel, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}
	if peakRate < 0 || offPeakRate < 0 {
		return nil, ErrNegativeRate
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Hotel{
		id:          id,
		city:        city,
		capacity:    capacity,
		peakRate:    peakRate,
		offPeakRate: offPeakRate,
		imageURL:    imageURL,
		createdAt:   now,
	}, nil
}

func ReconstructHotel(id uuid.UUID, city string, capacity int, peakRate, offPeakRate float64, imageURL *string, createdAt time.Time) *Hotel {
	return &Hotel{
		id:          id,
		city:        city,
		capacity:    capacity,
		peakRate:    peakRate,
		offPeakRate: offPeakRate,
		imageURL:    imageURL,
		createdAt:   createdAt,
	}
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) City() string         { return h.city }
func (h *Hotel) Capacity() int        { return h.capacity }
func (h *Hotel) PeakRate() float64    { return h.peakRate }
func (h *Hotel) OffPeakRate() float64 { return h.offPeakRate }
func (h *Hotel) ImageURL() *string    { return h.imageURL }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
