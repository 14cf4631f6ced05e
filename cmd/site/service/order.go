package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/logger"
)

// OrderService handles container orders placed against inventory items
type OrderService struct {
	records   store.Store[*models.Order]
	inventory *InventoryService
	log       *logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(records store.Store[*models.Order], inventory *InventoryService, log *logger.Logger) *OrderService {
	return &OrderService{
		records:   records,
		inventory: inventory,
		log:       log,
	}
}

// OrderRequest is the public order form payload
type OrderRequest struct {
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ItemID       uuid.UUID `json:"item_id"`
	Quantity     int       `json:"quantity"`
	Notes        string    `json:"notes"`
}

// Place validates and stores a new order. The referenced inventory
// item must exist and be listed as available.
func (s *OrderService) Place(ctx context.Context, req OrderRequest) (*models.Order, error) {
	if err := requireField("customer_name", req.CustomerName); err != nil {
		return nil, err
	}
	if err := requireEmail("email", req.Email); err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	item, err := s.inventory.Find(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &ValidationError{Field: "item_id", Reason: "unknown inventory item"}
		}
		return nil, err
	}
	if !item.Available {
		return nil, &ValidationError{Field: "item_id", Reason: "item is not available"}
	}

	order := &models.Order{
		ID:           uuid.New(),
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		ItemID:       req.ItemID,
		Quantity:     req.Quantity,
		Notes:        req.Notes,
		Status:       models.OrderStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.records.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	s.log.Info("order placed",
		"order_id", order.ID,
		"item_id", order.ItemID,
		"quantity", order.Quantity,
	)

	return order, nil
}

// List returns all orders
func (s *OrderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus moves an order through fulfilment
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}

	orders, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	for _, order := range orders {
		if order.ID != id {
			continue
		}

		order.Status = status
		if err := s.records.Update(ctx, order); err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}

		s.log.Info("order status updated", "order_id", id, "status", status)
		return order, nil
	}

	return nil, fmt.Errorf("order %s: %w", id, store.ErrNotFound)
}
