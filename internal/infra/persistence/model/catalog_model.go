package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BlogModel mirrors the 'blogs' table.
type BlogModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Content     string    `gorm:"type:text"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

// MonthlyRevenueModel mirrors the 'monthly_revenues' table of pre-computed
// revenue snapshots.
type MonthlyRevenueModel struct {
	ID     uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Month  time.Time       `gorm:"type:date;not null;uniqueIndex"`
	Amount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (MonthlyRevenueModel) TableName() string {
	return "monthly_revenues"
}
