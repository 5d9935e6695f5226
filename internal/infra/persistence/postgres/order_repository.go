package postgres

import (
	"context"

	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	"musika/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists an order and its items in a single insert with associations.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid user or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// FindByID retrieves an order with its items, or ErrOrderNotFound.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves a user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus sets the order status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ListPurchasers returns distinct users with paid orders, biggest spenders first.
func (repo *orderRepository) ListPurchasers(ctx context.Context) ([]*repository.Purchaser, error) {
	var rows []struct {
		UserID     uuid.UUID
		OrderCount int64
		TotalSpent decimal.Decimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("user_id, COUNT(*) AS order_count, SUM(total_price) AS total_spent").
		Where("status = ? AND user_id IS NOT NULL", string(entity.OrderStatusPaid)).
		Group("user_id").
		Order("total_spent DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchasers")
	}

	purchasers := make([]*repository.Purchaser, 0, len(rows))
	for _, row := range rows {
		purchasers = append(purchasers, &repository.Purchaser{
			UserID:     row.UserID,
			OrderCount: row.OrderCount,
			TotalSpent: row.TotalSpent,
		})
	}

	return purchasers, nil
}

// PurchaseStats aggregates count, revenue and average over paid orders.
func (repo *orderRepository) PurchaseStats(ctx context.Context) (*repository.PurchaseStats, error) {
	var row struct {
		OrderCount   int64
		TotalRevenue decimal.NullDecimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS order_count, SUM(total_price) AS total_revenue").
		Where("status = ?", string(entity.OrderStatusPaid)).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate purchase stats")
	}

	stats := &repository.PurchaseStats{
		OrderCount:        row.OrderCount,
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	if row.TotalRevenue.Valid {
		stats.TotalRevenue = row.TotalRevenue.Decimal
	}
	if row.OrderCount > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.DivRound(decimal.NewFromInt(row.OrderCount), 2)
	}

	return stats, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.UnitPrice,
		})
	}

	return &entity.Order{
		ID:         data.ID,
		UserID:     data.UserID,
		TotalPrice: data.TotalPrice,
		Status:     entity.OrderStatus(data.Status),
		Items:      items,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:         data.ID,
		UserID:     data.UserID,
		TotalPrice: data.TotalPrice,
		Status:     string(data.Status),
		Items:      items,
	}
}
