package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShippingDetails holds the delivery address captured at order creation time.
// The record is tied 1:1 to the order and is never updated afterwards.
type ShippingDetails struct {
	ID         uuid.UUID  `json:"id"`
	OrderID    uuid.UUID  `json:"order_id"`
	UserID     *uuid.UUID `json:"user_id"`
	FullName   string     `json:"full_name"`
	Street     string     `json:"street"`
	City       string     `json:"city"`
	Province   string     `json:"province"`
	PostalCode string     `json:"postal_code"`
	Country    string     `json:"country"`
	Phone      string     `json:"phone"`
	CreatedAt  time.Time  `json:"created_at"`
}
