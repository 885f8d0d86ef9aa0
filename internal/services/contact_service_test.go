package services

import (
	"context"
	"errors"
	"testing"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockContactInfoRepository is a mock implementation of ContactInfoRepository
type mockContactInfoRepository struct {
	info    *models.ContactInfo
	err     error
	updated *models.UpdateContactInfoRequest
}

func (m *mockContactInfoRepository) Get(ctx context.Context) (*models.ContactInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.info, nil
}

func (m *mockContactInfoRepository) Update(ctx context.Context, req *models.UpdateContactInfoRequest) error {
	if m.err != nil {
		return m.err
	}
	m.updated = req
	return nil
}

// mockMessageRepository is a mock implementation of MessageRepository
type mockMessageRepository struct {
	messages []models.Message
	err      error

	created    *models.CreateMessageRequest
	markedRead int
}

func (m *mockMessageRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

func (m *mockMessageRepository) Create(ctx context.Context, req *models.CreateMessageRequest) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.created = req
	return 1, nil
}

func (m *mockMessageRepository) MarkRead(ctx context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	m.markedRead = id
	return nil
}

func TestContactService_CreateMessage(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.CreateMessageRequest
		expectedError error
	}{
		{
			name: "valid message",
			req:  &models.CreateMessageRequest{Name: "Alice", Email: "alice@example.com", Subject: "Hi", Message: "Hello there"},
		},
		{
			name: "subject is optional",
			req:  &models.CreateMessageRequest{Name: "Alice", Email: "alice@example.com", Message: "Hello there"},
		},
		{
			name:          "missing name",
			req:           &models.CreateMessageRequest{Email: "alice@example.com", Message: "Hello"},
			expectedError: ErrInvalidMessage,
		},
		{
			name:          "missing email",
			req:           &models.CreateMessageRequest{Name: "Alice", Message: "Hello"},
			expectedError: ErrInvalidMessage,
		},
		{
			name:          "missing message body",
			req:           &models.CreateMessageRequest{Name: "Alice", Email: "alice@example.com"},
			expectedError: ErrInvalidMessage,
		},
		{
			name:          "whitespace only fields",
			req:           &models.CreateMessageRequest{Name: "  ", Email: " ", Message: "\t"},
			expectedError: ErrInvalidMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messageRepo := &mockMessageRepository{}
			svc := NewContactService(&mockContactInfoRepository{}, messageRepo, zap.NewNop())

			id, err := svc.CreateMessage(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, id)
				assert.Nil(t, messageRepo.created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, id)
			assert.Equal(t, tt.req, messageRepo.created)
		})
	}
}

func TestContactService_CreateMessage_TrimsFields(t *testing.T) {
	messageRepo := &mockMessageRepository{}
	svc := NewContactService(&mockContactInfoRepository{}, messageRepo, zap.NewNop())

	_, err := svc.CreateMessage(context.Background(), &models.CreateMessageRequest{
		Name:    "  Alice  ",
		Email:   " alice@example.com ",
		Message: "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", messageRepo.created.Name)
	assert.Equal(t, "alice@example.com", messageRepo.created.Email)
}

func TestContactService_GetMessages(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		messageRepo := &mockMessageRepository{
			messages: []models.Message{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}},
		}
		svc := NewContactService(&mockContactInfoRepository{}, messageRepo, zap.NewNop())

		messages, err := svc.GetMessages(context.Background())

		require.NoError(t, err)
		assert.Len(t, messages, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		messageRepo := &mockMessageRepository{err: errors.New("database error")}
		svc := NewContactService(&mockContactInfoRepository{}, messageRepo, zap.NewNop())

		messages, err := svc.GetMessages(context.Background())

		assert.Error(t, err)
		assert.Nil(t, messages)
	})
}

func TestContactService_MarkMessageRead(t *testing.T) {
	messageRepo := &mockMessageRepository{}
	svc := NewContactService(&mockContactInfoRepository{}, messageRepo, zap.NewNop())

	err := svc.MarkMessageRead(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, messageRepo.markedRead)
}

func TestContactService_ContactInfo(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		contactRepo := &mockContactInfoRepository{
			info: &models.ContactInfo{ID: 1, Email: "me@example.com"},
		}
		svc := NewContactService(contactRepo, &mockMessageRepository{}, zap.NewNop())

		info, err := svc.GetContactInfo(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "me@example.com", info.Email)
	})

	t.Run("update", func(t *testing.T) {
		contactRepo := &mockContactInfoRepository{}
		svc := NewContactService(contactRepo, &mockMessageRepository{}, zap.NewNop())

		req := &models.UpdateContactInfoRequest{Email: "new@example.com"}
		err := svc.UpdateContactInfo(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, req, contactRepo.updated)
	})
}
