package usecase

import (
	"context"

	"musika/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMultimediaInput defines the metadata recorded for an uploaded file.
type CreateMultimediaInput struct {
	UserID        uuid.UUID
	FileType      entity.FileType
	URL           string
	ExtractedText string
}

// MultimediaUsecase defines the interface for multimedia metadata operations.
type MultimediaUsecase interface {
	// CreateMultimedia validates the file type and records the metadata.
	CreateMultimedia(ctx context.Context, input *CreateMultimediaInput) (*entity.Multimedia, error)

	// GetMultimedia retrieves a single metadata record.
	GetMultimedia(ctx context.Context, id uuid.UUID) (*entity.Multimedia, error)

	// ListUserMultimedia retrieves all metadata records owned by a user.
	ListUserMultimedia(ctx context.Context, userID uuid.UUID) ([]*entity.Multimedia, error)

	// DeleteMultimedia removes a metadata record.
	DeleteMultimedia(ctx context.Context, id uuid.UUID) error
}
