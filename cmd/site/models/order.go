package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks fulfilment of a container order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a container purchase or rental order placed against an
// inventory item
// Maps to: container_order table
type Order struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	CustomerName string      `db:"customer_name" json:"customer_name"`
	Email        string      `db:"email" json:"email"`
	Phone        string      `db:"phone" json:"phone,omitempty"`
	ItemID       uuid.UUID   `db:"item_id" json:"item_id"`
	Quantity     int         `db:"quantity" json:"quantity"`
	Notes        string      `db:"notes" json:"notes,omitempty"`
	Status       OrderStatus `db:"status" json:"status"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

// Key returns the record's primary key
func (o *Order) Key() uuid.UUID {
	return o.ID
}
