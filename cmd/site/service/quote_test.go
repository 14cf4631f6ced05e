package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/logger"
)

func newTestQuoteService() *QuoteService {
	return NewQuoteService(store.NewMemory[*models.Quote](), logger.Discard())
}

func TestQuoteSubmitAndList(t *testing.T) {
	svc := newTestQuoteService()
	ctx := context.Background()

	quote, err := svc.Submit(ctx, QuoteRequest{
		Name:          "Pat Jones",
		Email:         "pat@example.com",
		ContainerSize: "20ft",
		DeliveryZip:   "49001",
	})
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusNew, quote.Status)
	assert.NotEqual(t, uuid.Nil, quote.ID)
	assert.False(t, quote.CreatedAt.IsZero())

	quotes, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, quote.ID, quotes[0].ID)
}

func TestQuoteSubmitValidation(t *testing.T) {
	svc := newTestQuoteService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  QuoteRequest
	}{
		{"missing name", QuoteRequest{Email: "a@b.com", ContainerSize: "20ft"}},
		{"missing email", QuoteRequest{Name: "Pat", ContainerSize: "20ft"}},
		{"malformed email", QuoteRequest{Name: "Pat", Email: "not-an-email", ContainerSize: "20ft"}},
		{"missing container size", QuoteRequest{Name: "Pat", Email: "a@b.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.req)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestQuoteUpdateStatus(t *testing.T) {
	svc := newTestQuoteService()
	ctx := context.Background()

	quote, err := svc.Submit(ctx, QuoteRequest{
		Name: "Pat", Email: "a@b.com", ContainerSize: "40ft",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, quote.ID, models.QuoteStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusContacted, updated.Status)

	quotes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusContacted, quotes[0].Status)
}

func TestQuoteUpdateStatusUnknownValue(t *testing.T) {
	svc := newTestQuoteService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "sold")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestQuoteUpdateStatusUnknownID(t *testing.T) {
	svc := newTestQuoteService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), models.QuoteStatusClosed)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
