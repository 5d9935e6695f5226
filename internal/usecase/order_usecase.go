// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"musika/internal/domain/entity"
	"musika/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// OrderItemInput defines a single line item of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// ShippingInput defines the delivery address attached to a new order.
type ShippingInput struct {
	FullName   string
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
	Phone      string
}

// CreateOrderInput defines the data required to place a new order.
type CreateOrderInput struct {
	UserID        *uuid.UUID
	Items         []OrderItemInput
	PaymentMethod entity.PaymentMethod
	Phone         string
	Shipping      ShippingInput
}

// --- Output DTOs ---

// CreateOrderOutput returns the newly created order and its payment record.
type CreateOrderOutput struct {
	Order   *entity.Order
	Payment *entity.Payment
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// CreateOrder validates the input, charges the customer when the payment
	// method requires it, and persists the order with its payment and
	// shipping records atomically.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error)

	// GetOrder retrieves a single order with its items.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// GetUserOrderHistory retrieves all orders placed by a user, newest first.
	GetUserOrderHistory(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListPurchasers lists distinct users that have at least one paid order.
	ListPurchasers(ctx context.Context) ([]*repository.Purchaser, error)

	// GetPurchaseStats returns aggregate purchase statistics across paid orders.
	GetPurchaseStats(ctx context.Context) (*repository.PurchaseStats, error)
}
