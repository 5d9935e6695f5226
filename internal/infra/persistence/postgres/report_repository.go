package postgres

import (
	"context"
	"time"

	"musika/internal/domain/entity"
	"musika/internal/domain/repository"
	"musika/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reportRepository answers the fixed aggregate queries behind the report
// interpreter. All queries carry the dbresolver read clause so reporting
// never competes with order writes on the primary.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// SalesTotal sums total_price over paid orders created in [start, end].
func (repo *reportRepository) SalesTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.OrderModel{}).
		Where("status = ?", string(entity.OrderStatusPaid))

	if !start.IsZero() {
		query = query.Where("created_at >= ?", start)
	}
	if !end.IsZero() {
		// The end date is inclusive: anything created before the next day counts.
		query = query.Where("created_at < ?", end.AddDate(0, 0, 1))
	}

	var total decimal.NullDecimal
	if err := query.Select("SUM(total_price)").Scan(&total).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum sales")
	}
	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

// ActiveUserCount counts distinct user ids in user_analytics within the range.
func (repo *reportRepository) ActiveUserCount(ctx context.Context, start, end time.Time) (int64, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.UserAnalyticsModel{}).
		Where("user_id IS NOT NULL")

	if !start.IsZero() {
		query = query.Where("created_at >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("created_at < ?", end.AddDate(0, 0, 1))
	}

	var count int64
	if err := query.Distinct("user_id").Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active users")
	}

	return count, nil
}

// LowStockCount counts products with stock below threshold.
func (repo *reportRepository) LowStockCount(ctx context.Context, threshold int) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ProductModel{}).
		Where("stock < ?", threshold).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count low stock products")
	}

	return count, nil
}

// LatestMonthlyRevenue returns the most recent monthly revenue snapshot, or
// nil when none exists.
func (repo *reportRepository) LatestMonthlyRevenue(ctx context.Context) (*entity.MonthlyRevenue, error) {
	var revenueM model.MonthlyRevenueModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("month DESC").
		First(&revenueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load latest monthly revenue")
	}

	return &entity.MonthlyRevenue{
		ID:     revenueM.ID,
		Month:  revenueM.Month,
		Amount: revenueM.Amount,
	}, nil
}
