package repository

import (
	"context"
	"time"

	"world-hotels/internal/domain/booking"
	"world-hotels/internal/domain/pricing"
	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, tx DBTX, b *booking.Booking) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (id, hotel_id, user_id, room_type, check_in, duration, total_price, booking_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(), b.HotelID(), b.UserID(), b.RoomType().String(),
		pgconv.DateToPgtype(b.CheckIn()), b.Duration(), b.TotalPrice(),
		pgconv.TimeToPgtype(b.BookingDate()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return b.ID(), nil
}

// CountByDate counts persisted bookings for an exact hotel+date pair. Run
// it on the transaction that holds the hotel row lock when gating a new
// booking.
func (r *BookingRepository) CountByDate(ctx context.Context, db DBTX, hotelID uuid.UUID, checkIn time.Time) (int, error) {
	var count int
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE hotel_id = $1 AND check_in = $2`,
		hotelID, pgconv.DateToPgtype(checkIn),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return count, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, hotel_id, user_id, room_type, check_in, duration, total_price, booking_date
		FROM bookings WHERE id = $1`, id)

	var (
		bookingID   uuid.UUID
		hotelID     uuid.UUID
		userID      uuid.UUID
		roomType    string
		checkIn     pgtype.Date
		duration    int
		totalPrice  pgtype.Numeric
		bookingDate pgtype.Timestamptz
	)
	if err := row.Scan(&bookingID, &hotelID, &userID, &roomType, &checkIn, &duration, &totalPrice, &bookingDate); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	total, err := pgconv.Float64FromNumeric(totalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read booking total", err)
	}

	return booking.ReconstructBooking(
		bookingID, hotelID, userID, pricing.RoomType(roomType),
		pgconv.DateFromPgtype(checkIn), duration, total,
		pgconv.TimeFromPgtype(bookingDate),
	), nil
}

// Delete removes a booking owned by the given user. Returns false when no
// row matched, which covers both unknown IDs and foreign owners.
func (r *BookingRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM bookings WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) DeleteByHotel(ctx context.Context, tx DBTX, hotelID uuid.UUID) error {
	_, err := tx.Exec(ctx, `DELETE FROM bookings WHERE hotel_id = $1`, hotelID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete bookings for hotel", err)
	}
	return nil
}
