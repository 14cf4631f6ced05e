package repository

import (
	"context"
	"fmt"

	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/db"
)

// InventoryRepository handles database operations for inventory items
type InventoryRepository struct {
	db *db.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *db.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create inserts a new inventory item
func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_item (id, name, size, condition, price_cents, description, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Size,
		item.Condition,
		item.PriceCents,
		item.Description,
		item.Available,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}

	return nil
}

// List retrieves all inventory items, oldest first
func (r *InventoryRepository) List(ctx context.Context) ([]*models.InventoryItem, error) {
	query := `
		SELECT id, name, size, condition, price_cents, description, available, created_at, updated_at
		FROM inventory_item
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item := &models.InventoryItem{}
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Size,
			&item.Condition,
			&item.PriceCents,
			&item.Description,
			&item.Available,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory: %w", err)
	}

	return items, nil
}

// Update rewrites an existing inventory item
func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory_item
		SET name = $2, size = $3, condition = $4, price_cents = $5,
		    description = $6, available = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Size,
		item.Condition,
		item.PriceCents,
		item.Description,
		item.Available,
		item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update inventory item %s: %w", item.ID, store.ErrNotFound)
	}

	return nil
}
