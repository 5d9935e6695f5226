package usecase

import (
	"context"

	"musika/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordVisitInput defines the data captured for a single page visit.
type RecordVisitInput struct {
	UserID    *uuid.UUID
	Browser   string
	UserAgent string
}

// AnalyticsSummary aggregates recorded visits into device buckets.
type AnalyticsSummary struct {
	Total   int64                         `json:"total"`
	Devices map[entity.DeviceBucket]int64 `json:"devices"`
}

// AnalyticsUsecase defines the interface for visitor analytics operations.
type AnalyticsUsecase interface {
	// RecordVisit classifies the visitor's device and appends an analytics row.
	RecordVisit(ctx context.Context, input *RecordVisitInput) (*entity.UserAnalytics, error)

	// GetVisit retrieves a single analytics record.
	GetVisit(ctx context.Context, id uuid.UUID) (*entity.UserAnalytics, error)

	// ListVisits retrieves all analytics records, newest first.
	ListVisits(ctx context.Context) ([]*entity.UserAnalytics, error)

	// DeleteVisit removes an analytics record.
	DeleteVisit(ctx context.Context, id uuid.UUID) error

	// Summarize counts all recorded visits per device bucket.
	Summarize(ctx context.Context) (*AnalyticsSummary, error)
}
