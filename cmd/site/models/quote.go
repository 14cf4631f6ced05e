package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus tracks how far along the sales follow-up is
type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusClosed    QuoteStatus = "closed"
)

// Valid reports whether the status is one of the known values
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusContacted, QuoteStatusClosed:
		return true
	}
	return false
}

// Quote is a storage-container quote request from the public site
// Maps to: quote table
type Quote struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	Name          string      `db:"name" json:"name"`
	Email         string      `db:"email" json:"email"`
	Phone         string      `db:"phone" json:"phone,omitempty"`
	ContainerSize string      `db:"container_size" json:"container_size"`
	DeliveryZip   string      `db:"delivery_zip" json:"delivery_zip,omitempty"`
	Message       string      `db:"message" json:"message,omitempty"`
	Status        QuoteStatus `db:"status" json:"status"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
}

// Key returns the record's primary key
func (q *Quote) Key() uuid.UUID {
	return q.ID
}
