package queries

import (
	"context"
	"log/slog"
	"time"

	"world-hotels/internal/domain/booking"
	"world-hotels/internal/domain/pricing"
	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/clock"
	"world-hotels/internal/pkg/errs"

	"github.com/google/uuid"
)

type HotelReadStore interface {
	ListByCity(ctx context.Context, city string) ([]*HotelRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*HotelRecord, error)
}

// BookingCountReadStore supplies per-hotel booking counts for one date.
type BookingCountReadStore interface {
	CountsByDate(ctx context.Context, checkIn time.Time) (map[uuid.UUID]int, error)
}

type ListHotelsParams struct {
	City     string
	MaxPrice *float64
	CheckIn  *time.Time
	Currency string
}

type QuoteParams struct {
	HotelID  uuid.UUID
	RoomType string
	CheckIn  time.Time
	Nights   int
	Currency string
}

type HotelQueries interface {
	ListHotels(ctx context.Context, p ListHotelsParams) ([]*HotelListItem, error)
	Quote(ctx context.Context, p QuoteParams) (*QuoteView, error)
}

type hotelQueriesImpl struct {
	hotels     HotelReadStore
	counts     BookingCountReadStore
	converter  *pricing.Converter
	calculator *pricing.Calculator
	clock      clock.Clock
}

func NewHotelQueries(
	hotels HotelReadStore,
	counts BookingCountReadStore,
	converter *pricing.Converter,
	calculator *pricing.Calculator,
	clock clock.Clock,
) HotelQueries {
	return &hotelQueriesImpl{
		hotels:     hotels,
		counts:     counts,
		converter:  converter,
		calculator: calculator,
		clock:      clock,
	}
}

// ListHotels builds the public listing: seasonal base rate converted to
// the display currency, optional max-price filter on the converted rate,
// and an availability flag for the requested date. Without a date every
// hotel lists as available and prices at the off-peak rate, matching the
// booking form's default.
func (q *hotelQueriesImpl) ListHotels(ctx context.Context, p ListHotelsParams) ([]*HotelListItem, error) {
	currency := q.displayCurrency(p.Currency)

	records, err := q.hotels.ListByCity(ctx, p.City)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var countsByHotel map[uuid.UUID]int
	if p.CheckIn != nil {
		countsByHotel, err = q.counts.CountsByDate(ctx, *p.CheckIn)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	items := make([]*HotelListItem, 0, len(records))
	for _, rec := range records {
		baseRate := rec.OffPeakRate
		if p.CheckIn != nil {
			baseRate = pricing.SeasonalRate(rec.PeakRate, rec.OffPeakRate, *p.CheckIn)
		}
		displayRate := pricing.RoundMoney(q.converter.Convert(baseRate, currency))

		if p.MaxPrice != nil && displayRate > *p.MaxPrice {
			continue
		}

		available := true
		if p.CheckIn != nil {
			available = booking.IsAvailable(rec.Capacity, countsByHotel[rec.ID])
		}

		items = append(items, &HotelListItem{
			ID:          rec.ID,
			City:        rec.City,
			DisplayRate: displayRate,
			Currency:    currency,
			Available:   available,
			ImageURL:    rec.ImageURL,
		})
	}

	return items, nil
}

// Quote prices a prospective stay without creating anything: per-night
// rate through the full calculator, total = per-night x nights.
func (q *hotelQueriesImpl) Quote(ctx context.Context, p QuoteParams) (*QuoteView, error) {
	if p.Nights < booking.MinDurationNights || p.Nights > booking.MaxDurationNights {
		return nil, errs.ErrDurationOutOfRange
	}

	currency := q.displayCurrency(p.Currency)

	rec, err := q.hotels.FindByID(ctx, p.HotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	roomType := pricing.RoomType(p.RoomType)
	if !roomType.IsKnown() {
		// Permissive fallback: unknown room types price at the standard
		// multiplier, but the typo is worth a trace.
		slog.Warn("unknown room type in quote, using standard multiplier", "room_type", p.RoomType)
	}

	perNight := q.calculator.PerNight(rec.PeakRate, rec.OffPeakRate, roomType, p.CheckIn, q.clock.Now(), currency)

	return &QuoteView{
		HotelID:  rec.ID,
		City:     rec.City,
		RoomType: p.RoomType,
		CheckIn:  p.CheckIn,
		Nights:   p.Nights,
		Currency: currency,
		PerNight: perNight,
		Total:    pricing.RoundMoney(perNight * float64(p.Nights)),
	}, nil
}

func (q *hotelQueriesImpl) displayCurrency(code string) string {
	if code == "" {
		return pricing.BaseCurrency
	}
	if !q.converter.Supports(code) {
		slog.Warn("unknown display currency, falling back to base rate", "currency", code)
	}
	return code
}
