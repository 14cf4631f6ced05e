package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/logger"
)

// QuoteService handles quote request operations
type QuoteService struct {
	records store.Store[*models.Quote]
	log     *logger.Logger
}

// NewQuoteService creates a new quote service
func NewQuoteService(records store.Store[*models.Quote], log *logger.Logger) *QuoteService {
	return &QuoteService{
		records: records,
		log:     log,
	}
}

// QuoteRequest is the public quote form payload
type QuoteRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ContainerSize string `json:"container_size"`
	DeliveryZip   string `json:"delivery_zip"`
	Message       string `json:"message"`
}

// Submit validates and stores a new quote request
func (s *QuoteService) Submit(ctx context.Context, req QuoteRequest) (*models.Quote, error) {
	if err := requireField("name", req.Name); err != nil {
		return nil, err
	}
	if err := requireEmail("email", req.Email); err != nil {
		return nil, err
	}
	if err := requireField("container_size", req.ContainerSize); err != nil {
		return nil, err
	}

	quote := &models.Quote{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ContainerSize: req.ContainerSize,
		DeliveryZip:   req.DeliveryZip,
		Message:       req.Message,
		Status:        models.QuoteStatusNew,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.records.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to store quote: %w", err)
	}

	s.log.Info("quote submitted",
		"quote_id", quote.ID,
		"container_size", quote.ContainerSize,
	)

	return quote, nil
}

// List returns all quote requests
func (s *QuoteService) List(ctx context.Context) ([]*models.Quote, error) {
	quotes, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	return quotes, nil
}

// UpdateStatus moves a quote through the sales follow-up states
func (s *QuoteService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuoteStatus) (*models.Quote, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}

	quote, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	quote.Status = status
	if err := s.records.Update(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to update quote: %w", err)
	}

	s.log.Info("quote status updated", "quote_id", id, "status", status)
	return quote, nil
}

func (s *QuoteService) find(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	quotes, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	for _, quote := range quotes {
		if quote.ID == id {
			return quote, nil
		}
	}

	return nil, fmt.Errorf("quote %s: %w", id, store.ErrNotFound)
}
