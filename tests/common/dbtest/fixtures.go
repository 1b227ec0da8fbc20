//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestHotel inserts a hotel row and returns its id.
func CreateTestHotel(t *testing.T, db DBLike, city string, capacity int, peakRate, offPeakRate float64) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO hotels (id, city_name, capacity, peak_rate, off_peak_rate)
		VALUES ($1, $2, $3, $4, $5)`,
		hotelID, city, capacity, peakRate, offPeakRate)
	require.NoError(t, err)

	return hotelID
}

// CreateTestBooking inserts a booking row directly, bypassing the
// availability gate. Useful for filling a hotel to capacity.
func CreateTestBooking(t *testing.T, db DBLike, hotelID, userID uuid.UUID, roomType string, checkIn time.Time, duration int, totalPrice float64) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, hotel_id, user_id, room_type, check_in, duration, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		bookingID, hotelID, userID, roomType, checkIn.Format("2006-01-02"), duration, totalPrice)
	require.NoError(t, err)

	return bookingID
}

func CountBookings(t *testing.T, db DBLike, hotelID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM bookings WHERE hotel_id = $1", hotelID).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
