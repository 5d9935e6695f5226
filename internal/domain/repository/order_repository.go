// Package repository defines the persistence interfaces the usecase layer
// depends on, keeping it decoupled from GORM.
package repository

import (
	"context"

	"musika/internal/domain/entity"
	"musika/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentinel errors shared by repository implementations.
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrAnalyticsNotFound  = errors.New("analytics record not found")
	ErrMultimediaNotFound = errors.New("multimedia record not found")
	ErrProductNotFound    = errors.New("product not found")
)

// Purchaser is a user who has at least one paid order.
type Purchaser struct {
	UserID     uuid.UUID       `json:"user_id"`
	OrderCount int64           `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// PurchaseStats aggregates order activity over all paid orders.
type PurchaseStats struct {
	OrderCount        int64           `json:"order_count"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// OrderRepository persists orders and answers commerce queries.
type OrderRepository interface {
	// Create persists an order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items, or ErrOrderNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves a user's orders, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus sets the order status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// ListPurchasers returns distinct users with paid orders.
	ListPurchasers(ctx context.Context) ([]*Purchaser, error)

	// PurchaseStats aggregates count, revenue and average over paid orders.
	PurchaseStats(ctx context.Context) (*PurchaseStats, error)
}

// ShippingRepository persists shipping details captured at order creation.
type ShippingRepository interface {
	Create(ctx context.Context, details *entity.ShippingDetails) error
}

// FinancialRepository persists bookkeeping entries attached to orders.
type FinancialRepository interface {
	Create(ctx context.Context, record *entity.FinancialRecord) error
}
