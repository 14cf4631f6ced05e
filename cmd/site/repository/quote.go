package repository

import (
	"context"
	"fmt"

	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/db"
)

// QuoteRepository handles database operations for quote requests
type QuoteRepository struct {
	db *db.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *db.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Create inserts a new quote request
func (r *QuoteRepository) Create(ctx context.Context, quote *models.Quote) error {
	query := `
		INSERT INTO quote (id, name, email, phone, container_size, delivery_zip, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		quote.ID,
		quote.Name,
		quote.Email,
		quote.Phone,
		quote.ContainerSize,
		quote.DeliveryZip,
		quote.Message,
		quote.Status,
		quote.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}

	return nil
}

// List retrieves all quote requests, oldest first
func (r *QuoteRepository) List(ctx context.Context) ([]*models.Quote, error) {
	query := `
		SELECT id, name, email, phone, container_size, delivery_zip, message, status, created_at
		FROM quote
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*models.Quote
	for rows.Next() {
		quote := &models.Quote{}
		err := rows.Scan(
			&quote.ID,
			&quote.Name,
			&quote.Email,
			&quote.Phone,
			&quote.ContainerSize,
			&quote.DeliveryZip,
			&quote.Message,
			&quote.Status,
			&quote.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, quote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quotes: %w", err)
	}

	return quotes, nil
}

// Update rewrites an existing quote request
func (r *QuoteRepository) Update(ctx context.Context, quote *models.Quote) error {
	query := `
		UPDATE quote
		SET name = $2, email = $3, phone = $4, container_size = $5,
		    delivery_zip = $6, message = $7, status = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		quote.ID,
		quote.Name,
		quote.Email,
		quote.Phone,
		quote.ContainerSize,
		quote.DeliveryZip,
		quote.Message,
		quote.Status,
	)

	if err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update quote %s: %w", quote.ID, store.ErrNotFound)
	}

	return nil
}
