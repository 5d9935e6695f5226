package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"musika/config"
	deliverycontext "musika/internal/delivery/context"
	"musika/internal/domain/entity"
	"musika/internal/domain/repository"
	"musika/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// fallbackReport is returned for questions no keyword rule matches.
const fallbackReport = "I couldn't match that question to a report. " +
	"Try asking about sales, user activity, inventory or revenue."

// datePattern extracts ISO dates from a question. Only the first two matches
// are used: first is the range start, second the end.
var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo        repository.ReportRepository
	lowStockThreshold int
	logger            *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	threshold := 10
	if params.Config != nil && params.Config.Inventory != nil && params.Config.Inventory.LowStockThreshold > 0 {
		threshold = params.Config.Inventory.LowStockThreshold
	}

	return &reportService{
		reportRepo:        params.ReportRepo,
		lowStockThreshold: threshold,
		logger:            params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateReport interprets a free-text question, runs the matching aggregate
// and renders a one-line answer.
func (srv *reportService) GenerateReport(ctx context.Context, query string) (*usecase.ReportOutput, error) {
	kind := interpretKind(query)
	dates := extractDateRange(query)

	srv.log(ctx).Debug("Report query interpreted",
		slog.String("kind", string(kind)),
		slog.String("query", query),
	)

	switch kind {
	case entity.ReportKindSales:
		return srv.salesReport(ctx, dates)
	case entity.ReportKindUserActivity:
		return srv.userActivityReport(ctx, dates)
	case entity.ReportKindInventory:
		return srv.inventoryReport(ctx)
	case entity.ReportKindRevenue:
		return srv.revenueReport(ctx)
	default:
		return &usecase.ReportOutput{Kind: entity.ReportKindNone, Report: fallbackReport}, nil
	}
}

// interpretKind classifies a question by case-insensitive keyword match.
// The first matching rule wins, so "sales by user" is a sales report.
func interpretKind(query string) entity.ReportKind {
	lowered := strings.ToLower(query)

	switch {
	case strings.Contains(lowered, "sales"):
		return entity.ReportKindSales
	case strings.Contains(lowered, "user"), strings.Contains(lowered, "activity"):
		return entity.ReportKindUserActivity
	case strings.Contains(lowered, "inventory"), strings.Contains(lowered, "stock"):
		return entity.ReportKindInventory
	case strings.Contains(lowered, "revenue"):
		return entity.ReportKindRevenue
	default:
		return entity.ReportKindNone
	}
}

// extractDateRange pulls up to two ISO dates out of the question. A single
// date is treated as a one-day range. The order is taken as written; no
// start-before-end validation is applied.
func extractDateRange(query string) entity.DateRange {
	matches := datePattern.FindAllString(query, 2)

	var r entity.DateRange
	if len(matches) >= 1 {
		if start, err := time.Parse(dateLayout, matches[0]); err == nil {
			r.Start = start
			r.End = start
		}
	}
	if len(matches) >= 2 {
		if end, err := time.Parse(dateLayout, matches[1]); err == nil {
			r.End = end
		}
	}

	return r
}

func (srv *reportService) salesReport(ctx context.Context, dates entity.DateRange) (*usecase.ReportOutput, error) {
	total, err := srv.reportRepo.SalesTotal(ctx, dates.Start, dates.End)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute sales total")
	}

	report := fmt.Sprintf("Total sales: $%s", total.StringFixed(2))
	if !dates.IsZero() {
		report = fmt.Sprintf("Total sales from %s to %s: $%s",
			dates.Start.Format(dateLayout), dates.End.Format(dateLayout), total.StringFixed(2))
	}

	return &usecase.ReportOutput{Kind: entity.ReportKindSales, Report: report}, nil
}

func (srv *reportService) userActivityReport(ctx context.Context, dates entity.DateRange) (*usecase.ReportOutput, error) {
	count, err := srv.reportRepo.ActiveUserCount(ctx, dates.Start, dates.End)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active users")
	}

	report := fmt.Sprintf("Active users: %d", count)
	if !dates.IsZero() {
		report = fmt.Sprintf("Active users from %s to %s: %d",
			dates.Start.Format(dateLayout), dates.End.Format(dateLayout), count)
	}

	return &usecase.ReportOutput{Kind: entity.ReportKindUserActivity, Report: report}, nil
}

func (srv *reportService) inventoryReport(ctx context.Context) (*usecase.ReportOutput, error) {
	count, err := srv.reportRepo.LowStockCount(ctx, srv.lowStockThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count low-stock products")
	}

	report := fmt.Sprintf("Products low on stock (below %d units): %d", srv.lowStockThreshold, count)

	return &usecase.ReportOutput{Kind: entity.ReportKindInventory, Report: report}, nil
}

// revenueReport always answers with the latest monthly snapshot. Any date
// range in the question is ignored; callers asking for historical revenue
// still get the newest month.
func (srv *reportService) revenueReport(ctx context.Context) (*usecase.ReportOutput, error) {
	latest, err := srv.reportRepo.LatestMonthlyRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load monthly revenue")
	}

	if latest == nil {
		return &usecase.ReportOutput{
			Kind:   entity.ReportKindRevenue,
			Report: "No revenue data is available yet.",
		}, nil
	}

	report := fmt.Sprintf("Revenue for %s: $%s",
		latest.Month.Format("January 2006"), latest.Amount.StringFixed(2))

	return &usecase.ReportOutput{Kind: entity.ReportKindRevenue, Report: report}, nil
}
