package repository

import (
	"context"
	"time"

	"musika/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ReportRepository answers the fixed set of aggregate queries behind the
// report interpreter. Implementations route these to read replicas.
type ReportRepository interface {
	// SalesTotal sums total_price over paid orders created in [start, end].
	// Zero times mean no bound on that side.
	SalesTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// ActiveUserCount counts distinct user ids in user_analytics within the
	// range. Anonymous visits (null user) are excluded.
	ActiveUserCount(ctx context.Context, start, end time.Time) (int64, error)

	// LowStockCount counts products with stock below threshold.
	LowStockCount(ctx context.Context, threshold int) (int64, error)

	// LatestMonthlyRevenue returns the most recent monthly revenue snapshot,
	// or nil when none exists.
	LatestMonthlyRevenue(ctx context.Context) (*entity.MonthlyRevenue, error)
}
