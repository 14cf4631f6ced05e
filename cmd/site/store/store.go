package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when updating a record that does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when creating a record whose key already exists
	ErrDuplicate = errors.New("record already exists")
)

// Record is anything with a stable primary key
type Record interface {
	Key() uuid.UUID
}

// Store is the persistence capability the services program against.
// Callers never know whether the backing implementation is Postgres,
// the in-memory copy, or the fallback combination of both.
type Store[T Record] interface {
	Create(ctx context.Context, record T) error
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, record T) error
}
