package repository

import (
	"context"

	"musika/internal/domain/entity"

	"github.com/google/uuid"
)

// MultimediaRepository persists multimedia metadata records.
type MultimediaRepository interface {
	// Create persists a new metadata record.
	Create(ctx context.Context, media *entity.Multimedia) error

	// FindByID retrieves a record, or ErrMultimediaNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Multimedia, error)

	// FindByUser retrieves all records for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Multimedia, error)

	// Delete removes a record, or ErrMultimediaNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
