package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the delivery state of an order.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusInProgress, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// Order is a purchase of a product by a user. UnitPrice is the product price
// captured when the order was placed; Total is always UnitPrice * Quantity.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	ProductID    uuid.UUID   `json:"productId"`
	PurchaseDate time.Time   `json:"purchaseDate"`
	Quantity     int         `json:"qty"`
	UnitPrice    float64     `json:"unitPrice"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Location     string      `json:"location"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`

	Customer *User    `json:"customer,omitempty"`
	Product  *Product `json:"product,omitempty"`
}

// RecalculateTotal sets Total from the captured unit price and quantity.
func (o *Order) RecalculateTotal() {
	o.Total = o.UnitPrice * float64(o.Quantity)
}
