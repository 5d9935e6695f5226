package impl

import (
	"context"
	"testing"
	"time"

	"musika/internal/domain/entity"
	mockRepo "musika/internal/mocks/repository"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T) (usecase.ReportUsecase, *mockRepo.MockReportRepository) {
	t.Helper()

	mockReportRepo := mockRepo.NewMockReportRepository(t)
	svc := NewReportService(ReportServiceParams{
		ReportRepo: mockReportRepo,
		Config:     newInventoryTestConfig(10),
		Logger:     newDiscardLogger(),
	})

	return svc, mockReportRepo
}

func TestInterpretKind(t *testing.T) {
	tests := []struct {
		query string
		want  entity.ReportKind
	}{
		{"What were our sales last month?", entity.ReportKindSales},
		{"Show me SALES figures", entity.ReportKindSales},
		{"How many active users do we have?", entity.ReportKindUserActivity},
		{"Recent activity please", entity.ReportKindUserActivity},
		{"What does inventory look like?", entity.ReportKindInventory},
		{"Which products are low on stock?", entity.ReportKindInventory},
		{"What was the revenue?", entity.ReportKindRevenue},
		{"Tell me a joke", entity.ReportKindNone},
		// Precedence: sales wins over user, user wins over stock,
		// stock wins over revenue.
		{"sales per user", entity.ReportKindSales},
		{"user activity around stock", entity.ReportKindUserActivity},
		{"stock revenue", entity.ReportKindInventory},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, interpretKind(tt.query))
		})
	}
}

func TestExtractDateRange(t *testing.T) {
	t.Run("two dates", func(t *testing.T) {
		r := extractDateRange("sales between 2024-01-01 and 2024-01-31")
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), r.End)
	})

	t.Run("one date becomes a one-day range", func(t *testing.T) {
		r := extractDateRange("sales on 2024-06-15")
		assert.Equal(t, r.Start, r.End)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), r.Start)
	})

	t.Run("no dates", func(t *testing.T) {
		r := extractDateRange("sales this week")
		assert.True(t, r.IsZero())
	})

	t.Run("reversed dates are kept as written", func(t *testing.T) {
		r := extractDateRange("sales between 2024-12-31 and 2024-01-01")
		assert.True(t, r.Start.After(r.End))
	})
}

func TestReportService_SalesWithRange(t *testing.T) {
	svc, mockReportRepo := newReportService(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	mockReportRepo.EXPECT().SalesTotal(ctx, start, end).Return(decimal.NewFromFloat(15230.50), nil)

	output, err := svc.GenerateReport(ctx, "What were our sales between 2024-01-01 and 2024-01-31?")
	require.NoError(t, err)

	assert.Equal(t, entity.ReportKindSales, output.Kind)
	assert.Equal(t, "Total sales from 2024-01-01 to 2024-01-31: $15230.50", output.Report)
}

func TestReportService_SalesWithoutRange(t *testing.T) {
	svc, mockReportRepo := newReportService(t)
	ctx := context.Background()

	mockReportRepo.EXPECT().SalesTotal(ctx, time.Time{}, time.Time{}).Return(decimal.NewFromInt(500), nil)

	output, err := svc.GenerateReport(ctx, "total sales please")
	require.NoError(t, err)
	assert.Equal(t, "Total sales: $500.00", output.Report)
}

func TestReportService_UserActivity(t *testing.T) {
	svc, mockReportRepo := newReportService(t)
	ctx := context.Background()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mockReportRepo.EXPECT().ActiveUserCount(ctx, start, start).Return(int64(42), nil)

	output, err := svc.GenerateReport(ctx, "user activity on 2024-03-01")
	require.NoError(t, err)

	assert.Equal(t, entity.ReportKindUserActivity, output.Kind)
	assert.Equal(t, "Active users from 2024-03-01 to 2024-03-01: 42", output.Report)
}

func TestReportService_Inventory(t *testing.T) {
	svc, mockReportRepo := newReportService(t)
	ctx := context.Background()

	mockReportRepo.EXPECT().LowStockCount(ctx, 10).Return(int64(7), nil)

	output, err := svc.GenerateReport(ctx, "which products are low on stock?")
	require.NoError(t, err)

	assert.Equal(t, entity.ReportKindInventory, output.Kind)
	assert.Equal(t, "Products low on stock (below 10 units): 7", output.Report)
}

func TestReportService_RevenueIgnoresRange(t *testing.T) {
	svc, mockReportRepo := newReportService(t)
	ctx := context.Background()

	mockReportRepo.EXPECT().LatestMonthlyRevenue(ctx).Return(&entity.MonthlyRevenue{
		ID:     uuid.New(),
		Month:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromFloat(9800.25),
	}, nil)

	// The dates in the question are not passed to the repository.
	output, err := svc.GenerateReport(ctx, "revenue between 2023-01-01 and 2023-12-31")
	require.NoError(t, err)

	assert.Equal(t, entity.ReportKindRevenue, output.Kind)
	assert.Equal(t, "Revenue for May 2024: $9800.25", output.Report)
}

func TestReportService_RevenueNoData(t *testing.T) {
	svc, mockReportRepo := newReportService(t)
	ctx := context.Background()

	mockReportRepo.EXPECT().LatestMonthlyRevenue(ctx).Return(nil, nil)

	output, err := svc.GenerateReport(ctx, "revenue")
	require.NoError(t, err)
	assert.Equal(t, "No revenue data is available yet.", output.Report)
}

func TestReportService_Fallback(t *testing.T) {
	svc, _ := newReportService(t)

	output, err := svc.GenerateReport(context.Background(), "how is the weather?")
	require.NoError(t, err)

	assert.Equal(t, entity.ReportKindNone, output.Kind)
	assert.Equal(t, fallbackReport, output.Report)
}
