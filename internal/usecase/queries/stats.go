package queries

import (
	"context"

	"world-hotels/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

type StatsReadStore interface {
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByCheckIn(ctx context.Context) ([]DatedAmount, error)
	BookingsByRoomType(ctx context.Context) ([]RoomTypeCount, error)
}

type StatsQueries interface {
	Dashboard(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	store StatsReadStore
}

func NewStatsQueries(store StatsReadStore) StatsQueries {
	return &statsQueriesImpl{store: store}
}

// Dashboard aggregates the admin chart data. The three aggregates are
// independent, so they run concurrently.
func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*StatsView, error) {
	var view StatsView

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := q.store.TotalRevenue(gctx)
		if err != nil {
			return err
		}
		view.TotalRevenue = total
		return nil
	})

	g.Go(func() error {
		sales, err := q.store.RevenueByCheckIn(gctx)
		if err != nil {
			return err
		}
		view.SalesByCheckIn = sales
		return nil
	})

	g.Go(func() error {
		counts, err := q.store.BookingsByRoomType(gctx)
		if err != nil {
			return err
		}
		view.RoomTypeCounts = counts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &view, nil
}
