package store

import (
	"context"
	"errors"

	"github.com/midwaymobile/storage-site/common/logger"
)

// Fallback combines a durable primary store (Postgres-backed) with the
// in-memory copy. Writes land in memory first and are mirrored to the
// primary best-effort; reads prefer the primary and fall back to memory
// when the primary errors or holds nothing. The primary may be nil, in
// which case the store is purely in-memory.
type Fallback[T Record] struct {
	primary Store[T]
	memory  *Memory[T]
	log     *logger.Logger
}

// NewFallback creates a fallback store; primary may be nil
func NewFallback[T Record](primary Store[T], memory *Memory[T], log *logger.Logger) *Fallback[T] {
	return &Fallback[T]{
		primary: primary,
		memory:  memory,
		log:     log,
	}
}

// Create stores the record in memory and mirrors it to the primary.
// A primary write failure is logged, not propagated: the record is
// already visible to this process.
func (f *Fallback[T]) Create(ctx context.Context, record T) error {
	if err := f.memory.Create(ctx, record); err != nil {
		return err
	}

	if f.primary != nil {
		if err := f.primary.Create(ctx, record); err != nil {
			f.log.Warn("primary store create failed, record kept in memory",
				"key", record.Key(), "error", err)
		}
	}

	return nil
}

// List reads from the primary and falls back to memory per MergeLists
func (f *Fallback[T]) List(ctx context.Context) ([]T, error) {
	memRecords, _ := f.memory.List(ctx)

	if f.primary == nil {
		return memRecords, nil
	}

	primaryRecords, err := f.primary.List(ctx)
	if err != nil {
		f.log.Warn("primary store list failed, serving in-memory records", "error", err)
	}

	return MergeLists(primaryRecords, err, memRecords), nil
}

// Update replaces the record in memory and mirrors it to the primary.
// A missing record surfaces ErrNotFound from whichever copy holds the
// truth for this process.
func (f *Fallback[T]) Update(ctx context.Context, record T) error {
	memErr := f.memory.Update(ctx, record)

	var primaryErr error
	if f.primary != nil {
		primaryErr = f.primary.Update(ctx, record)
		if primaryErr != nil && !errors.Is(primaryErr, ErrNotFound) {
			f.log.Warn("primary store update failed, record updated in memory",
				"key", record.Key(), "error", primaryErr)
		}
	}

	// The record may exist only in the database (written before a
	// restart). A successful primary update makes the whole operation
	// a success even though memory never saw the record.
	if memErr != nil {
		if f.primary != nil && primaryErr == nil {
			return nil
		}
		return memErr
	}

	return nil
}

// MergeLists is the explicit merge policy between the primary rows and
// the in-memory rows: the primary wins unless it failed or came back
// empty while memory has data. Kept as a standalone function so the
// policy is testable without a database.
func MergeLists[T Record](primary []T, primaryErr error, fallback []T) []T {
	if primaryErr != nil {
		return fallback
	}
	if len(primary) == 0 && len(fallback) > 0 {
		return fallback
	}
	return primary
}
