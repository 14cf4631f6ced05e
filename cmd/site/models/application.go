package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus tracks hiring progress for a job application
type ApplicationStatus string

const (
	ApplicationStatusReceived     ApplicationStatus = "received"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusHired        ApplicationStatus = "hired"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the known values
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusReceived, ApplicationStatusInterviewing,
		ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is a careers-page job application
// Maps to: application table
type Application struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	Name      string            `db:"name" json:"name"`
	Email     string            `db:"email" json:"email"`
	Phone     string            `db:"phone" json:"phone,omitempty"`
	Position  string            `db:"position" json:"position"`
	CoverNote string            `db:"cover_note" json:"cover_note,omitempty"`
	Status    ApplicationStatus `db:"status" json:"status"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
}

// Key returns the record's primary key
func (a *Application) Key() uuid.UUID {
	return a.ID
}
