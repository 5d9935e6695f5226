package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialType classifies a financial record attached to an order.
type FinancialType string

const (
	FinancialTypeIncome   FinancialType = "income"
	FinancialTypeExpense  FinancialType = "expense"
	FinancialTypeRefund   FinancialType = "refund"
	FinancialTypeTax      FinancialType = "tax"
	FinancialTypeShipping FinancialType = "shipping"
)

// Valid reports whether t is a member of the financial type enum.
func (t FinancialType) Valid() bool {
	switch t {
	case FinancialTypeIncome, FinancialTypeExpense, FinancialTypeRefund,
		FinancialTypeTax, FinancialTypeShipping:
		return true
	default:
		return false
	}
}

// FinancialRecord is a bookkeeping entry attached to an order.
type FinancialRecord struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	Type        FinancialType   `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
