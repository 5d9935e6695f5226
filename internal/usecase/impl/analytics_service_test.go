package impl

import (
	"context"
	"testing"

	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	mockRepo "musika/internal/mocks/repository"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(t *testing.T) (usecase.AnalyticsUsecase, *mockRepo.MockAnalyticsRepository) {
	t.Helper()

	mockAnalyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	svc := NewAnalyticsService(AnalyticsServiceParams{
		AnalyticsRepo: mockAnalyticsRepo,
		Logger:        newDiscardLogger(),
	})

	return svc, mockAnalyticsRepo
}

func TestClassifyDevice(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      entity.DeviceBucket
	}{
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", entity.DeviceBucketMobile},
		{"android phone", "Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari", entity.DeviceBucketMobile},
		{"opera mini", "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)", entity.DeviceBucketMobile},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", entity.DeviceBucketTablet},
		{"android tablet", "Mozilla/5.0 (Linux; Android 13; SM-X710 Tablet)", entity.DeviceBucketTablet},
		{"kindle", "Mozilla/5.0 (Linux; U; en-us; KFAPWI Build) Kindle Silk", entity.DeviceBucketTablet},
		{"windows desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", entity.DeviceBucketDesktop},
		{"mac desktop", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", entity.DeviceBucketDesktop},
		{"linux desktop", "Mozilla/5.0 (X11; Linux x86_64)", entity.DeviceBucketDesktop},
		{"bot", "curl/8.4.0", entity.DeviceBucketOther},
		{"empty", "", entity.DeviceBucketUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.ClassifyDevice(tt.userAgent))
		})
	}
}

func TestAnalyticsService_RecordVisit(t *testing.T) {
	svc, mockAnalyticsRepo := newAnalyticsService(t)
	ctx := context.Background()
	userID := uuid.New()

	mockAnalyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserAnalytics")).
		Return(nil)

	record, err := svc.RecordVisit(ctx, &usecase.RecordVisitInput{
		UserID:    &userID,
		Browser:   "Safari",
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DeviceBucketMobile, record.Bucket())
	assert.Equal(t, &userID, record.UserID)
}

func TestAnalyticsService_GetVisit_NotFound(t *testing.T) {
	svc, mockAnalyticsRepo := newAnalyticsService(t)
	ctx := context.Background()
	id := uuid.New()

	mockAnalyticsRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAnalyticsNotFound)

	record, err := svc.GetVisit(ctx, id)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrAnalyticsNotFound)
}

func TestAnalyticsService_Summarize(t *testing.T) {
	svc, mockAnalyticsRepo := newAnalyticsService(t)
	ctx := context.Background()

	records := []*entity.UserAnalytics{
		{ID: uuid.New(), Device: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"},
		{ID: uuid.New(), Device: "Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari"},
		{ID: uuid.New(), Device: "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)"},
		{ID: uuid.New(), Device: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"},
		{ID: uuid.New(), Device: "curl/8.4.0"},
		{ID: uuid.New(), Device: ""},
	}
	mockAnalyticsRepo.EXPECT().FindAll(ctx).Return(records, nil)

	summary, err := svc.Summarize(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(6), summary.Total)
	assert.Equal(t, int64(2), summary.Devices[entity.DeviceBucketMobile])
	assert.Equal(t, int64(1), summary.Devices[entity.DeviceBucketTablet])
	assert.Equal(t, int64(1), summary.Devices[entity.DeviceBucketDesktop])
	assert.Equal(t, int64(1), summary.Devices[entity.DeviceBucketOther])
	assert.Equal(t, int64(1), summary.Devices[entity.DeviceBucketUnknown])
}

func TestAnalyticsService_Summarize_Empty(t *testing.T) {
	svc, mockAnalyticsRepo := newAnalyticsService(t)
	ctx := context.Background()

	mockAnalyticsRepo.EXPECT().FindAll(ctx).Return(nil, nil)

	summary, err := svc.Summarize(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.Total)
	// All buckets are present even when empty.
	assert.Len(t, summary.Devices, 5)
}

func TestAnalyticsService_DeleteVisit_NotFound(t *testing.T) {
	svc, mockAnalyticsRepo := newAnalyticsService(t)
	ctx := context.Background()
	id := uuid.New()

	mockAnalyticsRepo.EXPECT().Delete(ctx, id).Return(repository.ErrAnalyticsNotFound)

	err := svc.DeleteVisit(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrAnalyticsNotFound)
}
