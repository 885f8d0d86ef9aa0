package services

import (
	"context"
	"errors"
	"strings"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidMessage is returned when a contact message misses required fields
var ErrInvalidMessage = errors.New("name, email and message are required")

// ContactInfoRepository is the interface that wraps contact-info data access
type ContactInfoRepository interface {
	Get(ctx context.Context) (*models.ContactInfo, error)
	Update(ctx context.Context, req *models.UpdateContactInfoRequest) error
}

// MessageRepository is the interface that wraps contact message data access
type MessageRepository interface {
	GetAll(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, req *models.CreateMessageRequest) (int, error)
	MarkRead(ctx context.Context, id int) error
}

// contactService implements contact info and inbound message business logic
type contactService struct {
	contactRepo ContactInfoRepository
	messageRepo MessageRepository
	logger      *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(contactRepo ContactInfoRepository, messageRepo MessageRepository, logger *zap.Logger) *contactService {
	return &contactService{
		contactRepo: contactRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// GetContactInfo returns the contact info section
func (s *contactService) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	return s.contactRepo.Get(ctx)
}

// UpdateContactInfo updates the contact info section
func (s *contactService) UpdateContactInfo(ctx context.Context, req *models.UpdateContactInfoRequest) error {
	return s.contactRepo.Update(ctx, req)
}

// GetMessages returns all inbound messages
func (s *contactService) GetMessages(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.GetAll(ctx)
}

// CreateMessage stores a new inbound contact message
func (s *contactService) CreateMessage(ctx context.Context, req *models.CreateMessageRequest) (int, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || strings.TrimSpace(req.Message) == "" {
		return 0, ErrInvalidMessage
	}

	return s.messageRepo.Create(ctx, req)
}

// MarkMessageRead marks a message as read
func (s *contactService) MarkMessageRead(ctx context.Context, id int) error {
	return s.messageRepo.MarkRead(ctx, id)
}
