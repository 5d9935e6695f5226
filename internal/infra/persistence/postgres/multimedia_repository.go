package postgres

import (
	"context"

	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	"musika/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// multimediaRepository implements the repository.MultimediaRepository interface.
type multimediaRepository struct {
	db *gorm.DB
}

// NewMultimediaRepository is the constructor for multimediaRepository.
func NewMultimediaRepository(db *gorm.DB) repository.MultimediaRepository {
	return &multimediaRepository{
		db: db,
	}
}

// Create persists a new metadata record.
func (repo *multimediaRepository) Create(ctx context.Context, media *entity.Multimedia) error {
	mediaM := fromMultimediaDomain(media)

	if err := repo.db.WithContext(ctx).Create(mediaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference on multimedia record")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required multimedia information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create multimedia record")
	}

	media.ID = mediaM.ID
	media.CreatedAt = mediaM.CreatedAt
	media.UpdatedAt = mediaM.UpdatedAt

	return nil
}

// FindByID retrieves a record, or ErrMultimediaNotFound.
func (repo *multimediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Multimedia, error) {
	var mediaM model.MultimediaModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mediaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMultimediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find multimedia record by id")
	}

	return toMultimediaDomain(&mediaM), nil
}

// FindByUser retrieves all records for a user, newest first.
func (repo *multimediaRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Multimedia, error) {
	var mediaModels []*model.MultimediaModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&mediaModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find multimedia records by user")
	}

	records := make([]*entity.Multimedia, 0, len(mediaModels))
	for _, mediaM := range mediaModels {
		records = append(records, toMultimediaDomain(mediaM))
	}

	return records, nil
}

// Delete removes a record, or ErrMultimediaNotFound when absent.
func (repo *multimediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MultimediaModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete multimedia record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMultimediaNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMultimediaDomain converts a GORM MultimediaModel to a domain entity.
func toMultimediaDomain(data *model.MultimediaModel) *entity.Multimedia {
	if data == nil {
		return nil
	}

	return &entity.Multimedia{
		ID:            data.ID,
		UserID:        data.UserID,
		FileType:      entity.FileType(data.FileType),
		URL:           data.URL,
		ExtractedText: data.ExtractedText,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromMultimediaDomain converts a domain entity to a GORM MultimediaModel.
func fromMultimediaDomain(data *entity.Multimedia) *model.MultimediaModel {
	if data == nil {
		return nil
	}

	return &model.MultimediaModel{
		ID:            data.ID,
		UserID:        data.UserID,
		FileType:      string(data.FileType),
		URL:           data.URL,
		ExtractedText: data.ExtractedText,
	}
}
