package usecase

import (
	"context"

	"musika/internal/domain/entity"
)

// PaymentCallbackInput defines the data delivered by the gateway's
// status callback.
type PaymentCallbackInput struct {
	TransactionID string
	Status        string
}

// PaymentUsecase defines the interface for payment status operations.
type PaymentUsecase interface {
	// HandleCallback resolves a pending payment from a gateway callback.
	// A "SUCCESS" status completes the payment, anything else fails it.
	HandleCallback(ctx context.Context, input *PaymentCallbackInput) (*entity.Payment, error)
}
