package impl

import (
	"context"
	"log/slog"

	deliverycontext "musika/internal/delivery/context"
	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	logger        *slog.Logger
}

// AnalyticsServiceParams holds dependencies for analyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	Logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
		logger:        params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordVisit appends an analytics row. The raw device string is stored as
// captured; classification into buckets happens at aggregation time.
func (srv *analyticsService) RecordVisit(ctx context.Context, input *usecase.RecordVisitInput) (*entity.UserAnalytics, error) {
	record := &entity.UserAnalytics{
		ID:      uuid.New(),
		UserID:  input.UserID,
		Browser: input.Browser,
		Device:  input.UserAgent,
	}

	if err := srv.analyticsRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create analytics record")
	}

	srv.log(ctx).Debug("Visit recorded",
		slog.Any("recordID", record.ID),
		slog.String("device", record.Device),
	)

	return record, nil
}

// GetVisit retrieves a single analytics record.
func (srv *analyticsService) GetVisit(ctx context.Context, id uuid.UUID) (*entity.UserAnalytics, error) {
	record, err := srv.analyticsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnalyticsNotFound) {
			return nil, domainerrors.ErrAnalyticsNotFound
		}

		return nil, errors.Wrap(err, "failed to find analytics record")
	}

	return record, nil
}

// ListVisits retrieves all analytics records, newest first.
func (srv *analyticsService) ListVisits(ctx context.Context) ([]*entity.UserAnalytics, error) {
	records, err := srv.analyticsRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analytics records")
	}

	return records, nil
}

// DeleteVisit removes an analytics record.
func (srv *analyticsService) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	if err := srv.analyticsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAnalyticsNotFound) {
			return domainerrors.ErrAnalyticsNotFound
		}

		return errors.Wrap(err, "failed to delete analytics record")
	}

	return nil
}

// Summarize counts all recorded visits per device bucket. The whole table is
// loaded and counted in memory; fine at current volume, revisit if the
// analytics table grows past a few hundred thousand rows.
func (srv *analyticsService) Summarize(ctx context.Context) (*usecase.AnalyticsSummary, error) {
	records, err := srv.analyticsRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analytics records")
	}

	summary := &usecase.AnalyticsSummary{
		Total: int64(len(records)),
		Devices: map[entity.DeviceBucket]int64{
			entity.DeviceBucketMobile:  0,
			entity.DeviceBucketTablet:  0,
			entity.DeviceBucketDesktop: 0,
			entity.DeviceBucketOther:   0,
			entity.DeviceBucketUnknown: 0,
		},
	}

	for _, record := range records {
		summary.Devices[record.Bucket()]++
	}

	return summary, nil
}
