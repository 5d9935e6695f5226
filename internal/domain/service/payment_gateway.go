// Package service defines interfaces for external collaborators (payment
// gateway, AI assistant, token signing) consumed by the usecase layer.
package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentRequest is the payload for a mobile-money payment initiation.
type PaymentRequest struct {
	Phone     string          // Customer phone, 263XXXXXXXXX format.
	Amount    decimal.Decimal // Charge amount in the configured currency.
	Reference string          // Locally generated transaction id, used as the idempotency key.
}

// PaymentGateway initiates mobile-money payments against the EcoCash API.
// The call is synchronous and bounded by the client's timeout; any failure is
// surfaced to the caller without retries.
type PaymentGateway interface {
	// InitiatePayment requests a customer charge. A non-2xx upstream
	// response or transport failure returns a *domainerrors.GatewayError.
	InitiatePayment(ctx context.Context, req *PaymentRequest) error
}
