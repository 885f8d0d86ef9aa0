package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// messageRepository implements contact message data access
type messageRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *sql.DB, logger *zap.Logger) *messageRepository {
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all messages, newest first
func (r *messageRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, name, email, subject, message, seen, created_at
		FROM messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get messages", zap.Error(err))
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var message models.Message
		err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Subject,
			&message.Message,
			&message.Read,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message rows: %w", err)
	}

	return messages, nil
}

// Create inserts a new message and returns its id
func (r *messageRepository) Create(ctx context.Context, req *models.CreateMessageRequest) (int, error) {
	query := `INSERT INTO messages (name, email, subject, message) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		r.logger.Error("failed to create message", zap.Error(err))
		return 0, fmt.Errorf("failed to create message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return int(id), nil
}

// MarkRead marks a message as read
func (r *messageRepository) MarkRead(ctx context.Context, id int) error {
	query := `UPDATE messages SET seen = 1 WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.logger.Error("failed to mark message as read", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to mark message as read: %w", err)
	}

	return nil
}
