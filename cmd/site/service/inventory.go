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

// InventoryService handles container inventory operations
type InventoryService struct {
	records store.Store[*models.InventoryItem]
	log     *logger.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(records store.Store[*models.InventoryItem], log *logger.Logger) *InventoryService {
	return &InventoryService{
		records: records,
		log:     log,
	}
}

// InventoryInput is the admin payload for creating or updating an item
type InventoryInput struct {
	Name        string               `json:"name"`
	Size        string               `json:"size"`
	Condition   models.ItemCondition `json:"condition"`
	PriceCents  int64                `json:"price_cents"`
	Description string               `json:"description"`
	Available   bool                 `json:"available"`
}

func (in InventoryInput) validate() error {
	if err := requireField("name", in.Name); err != nil {
		return err
	}
	if err := requireField("size", in.Size); err != nil {
		return err
	}
	if !in.Condition.Valid() {
		return &ValidationError{Field: "condition", Reason: fmt.Sprintf("unknown condition %q", in.Condition)}
	}
	if in.PriceCents < 0 {
		return &ValidationError{Field: "price_cents", Reason: "must not be negative"}
	}
	return nil
}

// Create adds a new container to the inventory
func (s *InventoryService) Create(ctx context.Context, in InventoryInput) (*models.InventoryItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &models.InventoryItem{
		ID:          uuid.New(),
		Name:        in.Name,
		Size:        in.Size,
		Condition:   in.Condition,
		PriceCents:  in.PriceCents,
		Description: in.Description,
		Available:   in.Available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.records.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to store inventory item: %w", err)
	}

	s.log.Info("inventory item created", "item_id", item.ID, "size", item.Size)
	return item, nil
}

// List returns inventory items; availableOnly hides sold and reserved
// containers for the public listing
func (s *InventoryService) List(ctx context.Context, availableOnly bool) ([]*models.InventoryItem, error) {
	items, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	if !availableOnly {
		return items, nil
	}

	available := make([]*models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}

// Update replaces an item's listing details
func (s *InventoryService) Update(ctx context.Context, id uuid.UUID, in InventoryInput) (*models.InventoryItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	item, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Size = in.Size
	item.Condition = in.Condition
	item.PriceCents = in.PriceCents
	item.Description = in.Description
	item.Available = in.Available
	item.UpdatedAt = time.Now().UTC()

	if err := s.records.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	s.log.Info("inventory item updated", "item_id", id, "available", item.Available)
	return item, nil
}

// Find returns a single item by id
func (s *InventoryService) Find(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	items, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}

	return nil, fmt.Errorf("inventory item %s: %w", id, store.ErrNotFound)
}
