package repository

import (
	"context"

	"musika/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsRepository persists append-only visit records.
type AnalyticsRepository interface {
	// Create appends a visit record.
	Create(ctx context.Context, record *entity.UserAnalytics) error

	// FindByID retrieves a record, or ErrAnalyticsNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserAnalytics, error)

	// FindAll returns every visit record, newest first. The device-bucket
	// summary iterates this full set in memory; acceptable only at the
	// current scale (documented limitation).
	FindAll(ctx context.Context) ([]*entity.UserAnalytics, error)

	// Delete removes a record, or ErrAnalyticsNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
