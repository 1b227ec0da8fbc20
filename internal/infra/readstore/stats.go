package readstore

import (
	"context"

	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/pgconv"
	"world-hotels/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsReadStore struct {
	db *pgxpool.Pool
}

func NewStatsReadStore(db *pgxpool.Pool) *StatsReadStore {
	return &StatsReadStore{db: db}
}

func (r *StatsReadStore) TotalRevenue(ctx context.Context) (float64, error) {
	var total pgtype.Numeric
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM bookings`).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum revenue", err)
	}

	amount, err := pgconv.Float64FromNumeric(total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read revenue total", err)
	}
	return amount, nil
}

func (r *StatsReadStore) RevenueByCheckIn(ctx context.Context) ([]queries.DatedAmount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT check_in, SUM(total_price) FROM bookings
		GROUP BY check_in
		ORDER BY check_in`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate revenue by date", err)
	}
	defer rows.Close()

	var result []queries.DatedAmount
	for rows.Next() {
		var (
			date   pgtype.Date
			amount pgtype.Numeric
		)
		if err := rows.Scan(&date, &amount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue row", err)
		}

		value, err := pgconv.Float64FromNumeric(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to read revenue amount", err)
		}

		result = append(result, queries.DatedAmount{
			Date:   pgconv.DateFromPgtype(date),
			Amount: value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read revenue rows", err)
	}

	return result, nil
}

func (r *StatsReadStore) BookingsByRoomType(ctx context.Context) ([]queries.RoomTypeCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT room_type, COUNT(*) FROM bookings
		GROUP BY room_type
		ORDER BY room_type`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by room type", err)
	}
	defer rows.Close()

	var result []queries.RoomTypeCount
	for rows.Next() {
		var rtc queries.RoomTypeCount
		if err := rows.Scan(&rtc.RoomType, &rtc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		result = append(result, rtc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room type rows", err)
	}

	return result, nil
}
