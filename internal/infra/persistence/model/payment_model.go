package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the 'payments' table. TransactionID is the locally
// generated gateway reference and is unique per payment.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID        *uuid.UUID      `gorm:"type:uuid"`
	Method        string          `gorm:"type:varchar(30);not null"`
	TransactionID string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Phone         string          `gorm:"type:varchar(20)"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
