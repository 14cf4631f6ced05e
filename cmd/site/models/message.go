package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission
// Maps to: message table
type Message struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	Subject   string    `db:"subject" json:"subject,omitempty"`
	Body      string    `db:"body" json:"body"`
	Read      bool      `db:"read" json:"read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Key returns the record's primary key
func (m *Message) Key() uuid.UUID {
	return m.ID
}
