package readstore

import (
	"context"
	"time"

	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/pgconv"
	"world-hotels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewSelect = `
	SELECT b.id, b.hotel_id, h.city_name, h.image_url,
	       b.room_type, b.check_in, b.duration, b.total_price, b.booking_date
	FROM bookings b
	JOIN hotels h ON b.hotel_id = h.id`

func (r *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}

	return view, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewSelect+`
		WHERE b.user_id = $1
		ORDER BY b.check_in DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return views, nil
}

// CountsByDate returns existing booking counts per hotel for one date,
// for the listing's availability flags. Hotels without bookings are
// simply absent from the map.
func (r *BookingReadStore) CountsByDate(ctx context.Context, checkIn time.Time) (map[uuid.UUID]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT hotel_id, COUNT(*) FROM bookings
		WHERE check_in = $1
		GROUP BY hotel_id`, pgconv.DateToPgtype(checkIn))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by date", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			hotelID uuid.UUID
			count   int
		)
		if err := rows.Scan(&hotelID, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking count row", err)
		}
		counts[hotelID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking count rows", err)
	}

	return counts, nil
}

func scanBookingView(row scannable) (*queries.BookingView, error) {
	var (
		id          uuid.UUID
		hotelID     uuid.UUID
		city        string
		imageURL    pgtype.Text
		roomType    string
		checkIn     pgtype.Date
		duration    int
		totalPrice  pgtype.Numeric
		bookingDate pgtype.Timestamptz
	)
	if err := row.Scan(&id, &hotelID, &city, &imageURL, &roomType, &checkIn, &duration, &totalPrice, &bookingDate); err != nil {
		return nil, err
	}

	total, err := pgconv.Float64FromNumeric(totalPrice)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:          id,
		HotelID:     hotelID,
		City:        city,
		ImageURL:    pgconv.StringPtrFromPgtype(imageURL),
		RoomType:    roomType,
		CheckIn:     pgconv.DateFromPgtype(checkIn),
		Duration:    duration,
		TotalPrice:  total,
		BookingDate: pgconv.TimeFromPgtype(bookingDate),
	}, nil
}
