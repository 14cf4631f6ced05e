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

// MessageService handles contact-form operations
type MessageService struct {
	records store.Store[*models.Message]
	log     *logger.Logger
}

// NewMessageService creates a new message service
func NewMessageService(records store.Store[*models.Message], log *logger.Logger) *MessageService {
	return &MessageService{
		records: records,
		log:     log,
	}
}

// MessageRequest is the public contact form payload
type MessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Submit validates and stores a new contact message
func (s *MessageService) Submit(ctx context.Context, req MessageRequest) (*models.Message, error) {
	if err := requireField("name", req.Name); err != nil {
		return nil, err
	}
	if err := requireEmail("email", req.Email); err != nil {
		return nil, err
	}
	if err := requireField("body", req.Body); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Body:      req.Body,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.records.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	s.log.Info("contact message submitted", "message_id", message.ID)
	return message, nil
}

// List returns all contact messages
func (s *MessageService) List(ctx context.Context) ([]*models.Message, error) {
	messages, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

// MarkRead flags a message as handled by the operator
func (s *MessageService) MarkRead(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	messages, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	for _, message := range messages {
		if message.ID != id {
			continue
		}

		message.Read = true
		if err := s.records.Update(ctx, message); err != nil {
			return nil, fmt.Errorf("failed to update message: %w", err)
		}

		s.log.Info("message marked read", "message_id", id)
		return message, nil
	}

	return nil, fmt.Errorf("message %s: %w", id, store.ErrNotFound)
}
