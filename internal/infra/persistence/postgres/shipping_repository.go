package postgres

import (
	"context"

	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	"musika/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// shippingRepository implements the repository.ShippingRepository interface.
type shippingRepository struct {
	db *gorm.DB
}

// NewShippingRepository is the constructor for shippingRepository.
func NewShippingRepository(db *gorm.DB) repository.ShippingRepository {
	return &shippingRepository{
		db: db,
	}
}

// Create persists the shipping details captured at order creation.
func (repo *shippingRepository) Create(ctx context.Context, details *entity.ShippingDetails) error {
	detailsM := &model.ShippingDetailsModel{
		ID:         details.ID,
		OrderID:    details.OrderID,
		UserID:     details.UserID,
		FullName:   details.FullName,
		Street:     details.Street,
		City:       details.City,
		Province:   details.Province,
		PostalCode: details.PostalCode,
		Country:    details.Country,
		Phone:      details.Phone,
	}

	if err := repo.db.WithContext(ctx).Create(detailsM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid order reference on shipping details")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required shipping information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipping details")
	}

	details.ID = detailsM.ID
	details.CreatedAt = detailsM.CreatedAt

	return nil
}

// financialRepository implements the repository.FinancialRepository interface.
type financialRepository struct {
	db *gorm.DB
}

// NewFinancialRepository is the constructor for financialRepository.
func NewFinancialRepository(db *gorm.DB) repository.FinancialRepository {
	return &financialRepository{
		db: db,
	}
}

// Create persists a bookkeeping entry attached to an order.
func (repo *financialRepository) Create(ctx context.Context, record *entity.FinancialRecord) error {
	recordM := &model.FinancialRecordModel{
		ID:          record.ID,
		OrderID:     record.OrderID,
		Type:        string(record.Type),
		Amount:      record.Amount,
		Description: record.Description,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid order reference on financial record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create financial record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}
