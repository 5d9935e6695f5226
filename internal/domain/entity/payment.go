package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the closed set of states a payment can be in.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// A payment is mutated exactly once, by the gateway callback. Only the
// Pending state may move; Completed and Failed are terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s != PaymentStatusPending {
		return false
	}

	return next == PaymentStatusCompleted || next == PaymentStatusFailed
}

// Valid reports whether s is a member of the closed status set.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// PaymentMethod identifies how an order is paid for.
type PaymentMethod string

const (
	PaymentMethodEcoCash        PaymentMethod = "ecocash"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodEcoCash, PaymentMethodCashOnDelivery, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

// Payment records a payment attempt against an order. TransactionID is
// generated locally and doubles as the gateway idempotency reference, so it
// is unique per payment.
type Payment struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	UserID        *uuid.UUID      `json:"user_id"`
	Method        PaymentMethod   `json:"method"`
	TransactionID string          `json:"transaction_id"`
	Phone         string          `json:"phone,omitempty"` // EcoCash customer reference.
	Amount        decimal.Decimal `json:"amount"`
	Status        PaymentStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
