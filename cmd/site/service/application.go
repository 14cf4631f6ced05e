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

// ApplicationService handles careers-page job applications
type ApplicationService struct {
	records store.Store[*models.Application]
	log     *logger.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(records store.Store[*models.Application], log *logger.Logger) *ApplicationService {
	return &ApplicationService{
		records: records,
		log:     log,
	}
}

// ApplicationRequest is the public careers form payload
type ApplicationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Position  string `json:"position"`
	CoverNote string `json:"cover_note"`
}

// Submit validates and stores a new job application
func (s *ApplicationService) Submit(ctx context.Context, req ApplicationRequest) (*models.Application, error) {
	if err := requireField("name", req.Name); err != nil {
		return nil, err
	}
	if err := requireEmail("email", req.Email); err != nil {
		return nil, err
	}
	if err := requireField("position", req.Position); err != nil {
		return nil, err
	}

	application := &models.Application{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		CoverNote: req.CoverNote,
		Status:    models.ApplicationStatusReceived,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.records.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to store application: %w", err)
	}

	s.log.Info("job application submitted",
		"application_id", application.ID,
		"position", application.Position,
	)

	return application, nil
}

// List returns all job applications
func (s *ApplicationService) List(ctx context.Context) ([]*models.Application, error) {
	applications, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return applications, nil
}

// UpdateStatus moves an application through the hiring pipeline
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}

	applications, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	for _, application := range applications {
		if application.ID != id {
			continue
		}

		application.Status = status
		if err := s.records.Update(ctx, application); err != nil {
			return nil, fmt.Errorf("failed to update application: %w", err)
		}

		s.log.Info("application status updated", "application_id", id, "status", status)
		return application, nil
	}

	return nil, fmt.Errorf("application %s: %w", id, store.ErrNotFound)
}
