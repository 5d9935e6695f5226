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

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// Create appends a visit record.
func (repo *analyticsRepository) Create(ctx context.Context, record *entity.UserAnalytics) error {
	recordM := fromAnalyticsDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference on analytics record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create analytics record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindByID retrieves a record, or ErrAnalyticsNotFound.
func (repo *analyticsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserAnalytics, error) {
	var recordM model.UserAnalyticsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnalyticsNotFound
		}

		return nil, errors.Wrap(err, "failed to find analytics record by id")
	}

	return toAnalyticsDomain(&recordM), nil
}

// FindAll returns every visit record, newest first. The device summary walks
// this full set in memory; fine at current volumes, revisit before the table
// grows past what one process can hold.
func (repo *analyticsRepository) FindAll(ctx context.Context) ([]*entity.UserAnalytics, error) {
	var recordModels []*model.UserAnalyticsModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list analytics records")
	}

	records := make([]*entity.UserAnalytics, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toAnalyticsDomain(recordM))
	}

	return records, nil
}

// Delete removes a record, or ErrAnalyticsNotFound when absent.
func (repo *analyticsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserAnalyticsModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete analytics record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnalyticsNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAnalyticsDomain converts a GORM UserAnalyticsModel to a domain entity.
func toAnalyticsDomain(data *model.UserAnalyticsModel) *entity.UserAnalytics {
	if data == nil {
		return nil
	}

	return &entity.UserAnalytics{
		ID:        data.ID,
		UserID:    data.UserID,
		Browser:   data.Browser,
		Device:    data.Device,
		CreatedAt: data.CreatedAt,
	}
}

// fromAnalyticsDomain converts a domain entity to a GORM UserAnalyticsModel.
func fromAnalyticsDomain(data *entity.UserAnalytics) *model.UserAnalyticsModel {
	if data == nil {
		return nil
	}

	return &model.UserAnalyticsModel{
		ID:      data.ID,
		UserID:  data.UserID,
		Browser: data.Browser,
		Device:  data.Device,
	}
}
