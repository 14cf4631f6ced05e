package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemCondition describes the state of a container for sale or rent
type ItemCondition string

const (
	ConditionNew         ItemCondition = "new"
	ConditionUsed        ItemCondition = "used"
	ConditionRefurbished ItemCondition = "refurbished"
)

// Valid reports whether the condition is one of the known values
func (c ItemCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionRefurbished:
		return true
	}
	return false
}

// InventoryItem is a storage container listed on the site
// Maps to: inventory_item table
type InventoryItem struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Size        string        `db:"size" json:"size"`
	Condition   ItemCondition `db:"condition" json:"condition"`
	PriceCents  int64         `db:"price_cents" json:"price_cents"`
	Description string        `db:"description" json:"description,omitempty"`
	Available   bool          `db:"available" json:"available"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// Key returns the record's primary key
func (i *InventoryItem) Key() uuid.UUID {
	return i.ID
}
