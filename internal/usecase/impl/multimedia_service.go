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

// multimediaService implements the MultimediaUsecase interface.
type multimediaService struct {
	multimediaRepo repository.MultimediaRepository
	logger         *slog.Logger
}

// MultimediaServiceParams holds dependencies for multimediaService, injected by Fx.
type MultimediaServiceParams struct {
	fx.In

	MultimediaRepo repository.MultimediaRepository
	Logger         *slog.Logger
}

// NewMultimediaService is the constructor for multimediaService.
func NewMultimediaService(params MultimediaServiceParams) usecase.MultimediaUsecase {
	return &multimediaService{
		multimediaRepo: params.MultimediaRepo,
		logger:         params.Logger,
	}
}

func (srv *multimediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMultimedia validates the file type and records the metadata.
func (srv *multimediaService) CreateMultimedia(ctx context.Context, input *usecase.CreateMultimediaInput) (*entity.Multimedia, error) {
	if !input.FileType.Valid() {
		return nil, domainerrors.ErrInvalidFileType
	}

	media := &entity.Multimedia{
		ID:       uuid.New(),
		UserID:   input.UserID,
		FileType: input.FileType,
		URL:      input.URL,
	}
	if input.ExtractedText != "" {
		media.ExtractedText = &input.ExtractedText
	}

	if err := srv.multimediaRepo.Create(ctx, media); err != nil {
		return nil, errors.Wrap(err, "failed to create multimedia record")
	}

	srv.log(ctx).Debug("Multimedia recorded",
		slog.Any("mediaID", media.ID),
		slog.String("fileType", string(media.FileType)),
	)

	return media, nil
}

// GetMultimedia retrieves a single metadata record.
func (srv *multimediaService) GetMultimedia(ctx context.Context, id uuid.UUID) (*entity.Multimedia, error) {
	media, err := srv.multimediaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMultimediaNotFound) {
			return nil, domainerrors.ErrMultimediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find multimedia record")
	}

	return media, nil
}

// ListUserMultimedia retrieves all metadata records owned by a user.
func (srv *multimediaService) ListUserMultimedia(ctx context.Context, userID uuid.UUID) ([]*entity.Multimedia, error) {
	media, err := srv.multimediaRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list multimedia records")
	}

	return media, nil
}

// DeleteMultimedia removes a metadata record.
func (srv *multimediaService) DeleteMultimedia(ctx context.Context, id uuid.UUID) error {
	if err := srv.multimediaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMultimediaNotFound) {
			return domainerrors.ErrMultimediaNotFound
		}

		return errors.Wrap(err, "failed to delete multimedia record")
	}

	return nil
}
