package readstore

import (
	"context"

	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/pgconv"
	"world-hotels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HotelReadStore struct {
	db *pgxpool.Pool
}

func NewHotelReadStore(db *pgxpool.Pool) *HotelReadStore {
	return &HotelReadStore{db: db}
}

// ListByCity returns all hotels, or those whose city contains the filter
// (case-insensitive). Empty filter means no filter.
func (r *HotelReadStore) ListByCity(ctx context.Context, city string) ([]*queries.HotelRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, city_name, capacity, peak_rate, off_peak_rate, image_url
		FROM hotels
		WHERE $1 = '' OR city_name ILIKE '%' || $1 || '%'
		ORDER BY city_name`, city)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var records []*queries.HotelRecord
	for rows.Next() {
		rec, err := scanHotelRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hotel rows", err)
	}

	return records, nil
}

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, city_name, capacity, peak_rate, off_peak_rate, image_url
		FROM hotels WHERE id = $1`, id)

	rec, err := scanHotelRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}

	return rec, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanHotelRecord(row scannable) (*queries.HotelRecord, error) {
	var (
		id          uuid.UUID
		city        string
		capacity    int
		peakRate    pgtype.Numeric
		offPeakRate pgtype.Numeric
		imageURL    pgtype.Text
	)
	if err := row.Scan(&id, &city, &capacity, &peakRate, &offPeakRate, &imageURL); err != nil {
		return nil, err
	}

	peak, err := pgconv.Float64FromNumeric(peakRate)
	if err != nil {
		return nil, err
	}
	offPeak, err := pgconv.Float64FromNumeric(offPeakRate)
	if err != nil {
		return nil, err
	}

	return &queries.HotelRecord{
		ID:          id,
		City:        city,
		Capacity:    capacity,
		PeakRate:    peak,
		OffPeakRate: offPeak,
		ImageURL:    pgconv.StringPtrFromPgtype(imageURL),
	}, nil
}
