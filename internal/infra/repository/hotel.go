package repository

import (
	"context"

	"world-hotels/internal/domain/hotel"
	"world-hotels/internal/infra"
	"world-hotels/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HotelRepository struct {
	db *pgxpool.Pool
}

func NewHotelRepository(db *pgxpool.Pool) *HotelRepository {
	return &HotelRepository{db: db}
}

const hotelColumns = `id, city_name, capacity, peak_rate, off_peak_rate, image_url, created_at`

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	return r.findByID(ctx, r.db, id, "")
}

// FindByIDForUpdate locks the hotel row for the rest of the transaction.
// The booking command relies on this to serialize the count-then-insert
// sequence for a hotel.
func (r *HotelRepository) FindByIDForUpdate(ctx context.Context, tx DBTX, id uuid.UUID) (*hotel.Hotel, error) {
	return r.findByID(ctx, tx, id, " FOR UPDATE")
}

func (r *HotelRepository) findByID(ctx context.Context, db DBTX, id uuid.UUID, suffix string) (*hotel.Hotel, error) {
	row := db.QueryRow(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = $1`+suffix, id)

	h, err := scanHotel(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}

	return h, nil
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO hotels (id, city_name, capacity, peak_rate, off_peak_rate, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		h.ID(), h.City(), h.Capacity(), h.PeakRate(), h.OffPeakRate(),
		pgconv.StringPtrToPgtype(h.ImageURL()), pgconv.TimeToPgtype(h.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) UpdateRates(ctx context.Context, id uuid.UUID, peakRate, offPeakRate float64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE hotels SET peak_rate = $2, off_peak_rate = $3 WHERE id = $1`,
		id, peakRate, offPeakRate,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel rates", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, tx DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

type hotelRow interface {
	Scan(dest ...any) error
}

func scanHotel(row hotelRow) (*hotel.Hotel, error) {
	var (
		id          uuid.UUID
		city        string
		capacity    int
		peakRate    pgtype.Numeric
		offPeakRate pgtype.Numeric
		imageURL    pgtype.Text
		createdAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &city, &capacity, &peakRate, &offPeakRate, &imageURL, &createdAt); err != nil {
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

	return hotel.ReconstructHotel(
		id, city, capacity, peak, offPeak,
		pgconv.StringPtrFromPgtype(imageURL),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
