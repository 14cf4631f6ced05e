package repository

import (
	"context"
	"fmt"

	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/db"
)

// OrderRepository handles database operations for container orders
type OrderRepository struct {
	db *db.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *db.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new container order
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO container_order (id, customer_name, email, phone, item_id, quantity, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.CustomerName,
		order.Email,
		order.Phone,
		order.ItemID,
		order.Quantity,
		order.Notes,
		order.Status,
		order.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// List retrieves all container orders, oldest first
func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT id, customer_name, email, phone, item_id, quantity, notes, status, created_at
		FROM container_order
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.Email,
			&order.Phone,
			&order.ItemID,
			&order.Quantity,
			&order.Notes,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// Update rewrites an existing container order
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	query := `
		UPDATE container_order
		SET customer_name = $2, email = $3, phone = $4, item_id = $5,
		    quantity = $6, notes = $7, status = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		order.ID,
		order.CustomerName,
		order.Email,
		order.Phone,
		order.ItemID,
		order.Quantity,
		order.Notes,
		order.Status,
	)

	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update order %s: %w", order.ID, store.ErrNotFound)
	}

	return nil
}
