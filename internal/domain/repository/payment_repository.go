package repository

import (
	"context"

	"musika/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository persists payment records.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByTransactionID retrieves a payment by its unique gateway
	// reference, or ErrPaymentNotFound.
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)

	// FindByOrder retrieves all payments recorded against an order.
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// UpdateStatus sets the payment status for the row matched by
	// transaction id.
	UpdateStatus(ctx context.Context, transactionID string, status entity.PaymentStatus) error
}
