package repository

import (
	"context"
	"fmt"

	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/db"
)

// MessageRepository handles database operations for contact messages
type MessageRepository struct {
	db *db.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *db.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new contact message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO message (id, name, email, phone, subject, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Phone,
		message.Subject,
		message.Body,
		message.Read,
		message.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// List retrieves all contact messages, oldest first
func (r *MessageRepository) List(ctx context.Context) ([]*models.Message, error) {
	query := `
		SELECT id, name, email, phone, subject, body, read, created_at
		FROM message
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message := &models.Message{}
		err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Phone,
			&message.Subject,
			&message.Body,
			&message.Read,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}

// Update rewrites an existing contact message
func (r *MessageRepository) Update(ctx context.Context, message *models.Message) error {
	query := `
		UPDATE message
		SET name = $2, email = $3, phone = $4, subject = $5, body = $6, read = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Phone,
		message.Subject,
		message.Body,
		message.Read,
	)

	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update message %s: %w", message.ID, store.ErrNotFound)
	}

	return nil
}
