// Package model contains the GORM persistence models mirroring the database
// tables. Domain entities are mapped to and from these in the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     *uuid.UUID      `gorm:"type:uuid;index"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items    []OrderItemModel `gorm:"foreignKey:OrderID"`
	Payments []PaymentModel   `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Rows are immutable once created.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ShippingDetailsModel mirrors the 'shipping_details' table, 1:1 with orders.
type ShippingDetailsModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	UserID     *uuid.UUID `gorm:"type:uuid"`
	FullName   string     `gorm:"type:varchar(120);not null"`
	Street     string     `gorm:"type:varchar(255);not null"`
	City       string     `gorm:"type:varchar(100);not null"`
	Province   string     `gorm:"type:varchar(100)"`
	PostalCode string     `gorm:"type:varchar(20)"`
	Country    string     `gorm:"type:varchar(100);not null"`
	Phone      string     `gorm:"type:varchar(20)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingDetailsModel) TableName() string {
	return "shipping_details"
}

// FinancialRecordModel mirrors the 'financial_records' table.
type FinancialRecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FinancialRecordModel) TableName() string {
	return "financial_records"
}
