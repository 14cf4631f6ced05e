package repository

import (
	"context"
	"fmt"

	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/db"
)

// ApplicationRepository handles database operations for job applications
type ApplicationRepository struct {
	db *db.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *db.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new job application
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO application (id, name, email, phone, position, cover_note, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		application.ID,
		application.Name,
		application.Email,
		application.Phone,
		application.Position,
		application.CoverNote,
		application.Status,
		application.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// List retrieves all job applications, oldest first
func (r *ApplicationRepository) List(ctx context.Context) ([]*models.Application, error) {
	query := `
		SELECT id, name, email, phone, position, cover_note, status, created_at
		FROM application
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		application := &models.Application{}
		err := rows.Scan(
			&application.ID,
			&application.Name,
			&application.Email,
			&application.Phone,
			&application.Position,
			&application.CoverNote,
			&application.Status,
			&application.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return applications, nil
}

// Update rewrites an existing job application
func (r *ApplicationRepository) Update(ctx context.Context, application *models.Application) error {
	query := `
		UPDATE application
		SET name = $2, email = $3, phone = $4, position = $5, cover_note = $6, status = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		application.ID,
		application.Name,
		application.Email,
		application.Phone,
		application.Position,
		application.CoverNote,
		application.Status,
	)

	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update application %s: %w", application.ID, store.ErrNotFound)
	}

	return nil
}
