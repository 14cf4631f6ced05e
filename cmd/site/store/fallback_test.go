package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midwaymobile/storage-site/common/logger"
)

// failingStore simulates a primary that errors on every call
type failingStore struct {
	err error
}

func (f *failingStore) Create(ctx context.Context, record *testRecord) error {
	return f.err
}

func (f *failingStore) List(ctx context.Context) ([]*testRecord, error) {
	return nil, f.err
}

func (f *failingStore) Update(ctx context.Context, record *testRecord) error {
	return f.err
}

func TestFallbackNilPrimary(t *testing.T) {
	f := NewFallback[*testRecord](nil, NewMemory[*testRecord](), logger.Discard())
	ctx := context.Background()

	record := &testRecord{id: uuid.New(), val: "only-in-memory"}
	require.NoError(t, f.Create(ctx, record))

	records, err := f.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "only-in-memory", records[0].val)
}

func TestFallbackCreateSwallowsPrimaryFailure(t *testing.T) {
	primary := &failingStore{err: errors.New("connection refused")}
	f := NewFallback[*testRecord](primary, NewMemory[*testRecord](), logger.Discard())
	ctx := context.Background()

	record := &testRecord{id: uuid.New()}
	require.NoError(t, f.Create(ctx, record))

	// Primary errors on list too, so the memory copy is served
	records, err := f.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestFallbackListPrefersPrimary(t *testing.T) {
	primary := NewMemory[*testRecord]()
	memory := NewMemory[*testRecord]()
	f := NewFallback[*testRecord](primary, memory, logger.Discard())
	ctx := context.Background()

	require.NoError(t, primary.Create(ctx, &testRecord{id: uuid.New(), val: "durable"}))
	require.NoError(t, memory.Create(ctx, &testRecord{id: uuid.New(), val: "ephemeral"}))

	records, err := f.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "durable", records[0].val)
}

func TestFallbackUpdateDBOnlyRecord(t *testing.T) {
	// Record written before a restart exists only in the primary
	primary := NewMemory[*testRecord]()
	f := NewFallback[*testRecord](primary, NewMemory[*testRecord](), logger.Discard())
	ctx := context.Background()

	record := &testRecord{id: uuid.New(), val: "before"}
	require.NoError(t, primary.Create(ctx, record))

	require.NoError(t, f.Update(ctx, &testRecord{id: record.id, val: "after"}))

	records, err := primary.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "after", records[0].val)
}

func TestFallbackUpdateUnknownEverywhere(t *testing.T) {
	f := NewFallback[*testRecord](NewMemory[*testRecord](), NewMemory[*testRecord](), logger.Discard())

	err := f.Update(context.Background(), &testRecord{id: uuid.New()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMergeLists(t *testing.T) {
	primary := []*testRecord{{id: uuid.New(), val: "p"}}
	fallback := []*testRecord{{id: uuid.New(), val: "f"}}

	t.Run("primary error serves fallback", func(t *testing.T) {
		merged := MergeLists(primary, errors.New("timeout"), fallback)
		require.Len(t, merged, 1)
		assert.Equal(t, "f", merged[0].val)
	})

	t.Run("empty primary with memory data serves fallback", func(t *testing.T) {
		merged := MergeLists(nil, nil, fallback)
		require.Len(t, merged, 1)
		assert.Equal(t, "f", merged[0].val)
	})

	t.Run("healthy primary wins", func(t *testing.T) {
		merged := MergeLists(primary, nil, fallback)
		require.Len(t, merged, 1)
		assert.Equal(t, "p", merged[0].val)
	})

	t.Run("both empty stays empty", func(t *testing.T) {
		assert.Empty(t, MergeLists[*testRecord](nil, nil, nil))
	})
}
