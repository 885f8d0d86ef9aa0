package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/soumyadiya/portfolio-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupMessageTestRepository creates a message repository with a mock database
func setupMessageTestRepository(t *testing.T) (*messageRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewMessageRepository(db, zap.NewNop())

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestMessageRepository_GetAll(t *testing.T) {
	createdAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("returns messages newest first", func(t *testing.T) {
		repo, mock, cleanup := setupMessageTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "seen", "created_at"}).
			AddRow(2, "Bob", "bob@example.com", "Hi", "Second message", false, createdAt.Add(time.Hour)).
			AddRow(1, "Alice", "alice@example.com", "Hello", "First message", true, createdAt)
		mock.ExpectQuery(`SELECT id, name, email, subject, message, seen, created_at FROM messages ORDER BY created_at DESC`).
			WillReturnRows(rows)

		messages, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, 2, messages[0].ID)
		assert.False(t, messages[0].Read)
		assert.Equal(t, 1, messages[1].ID)
		assert.True(t, messages[1].Read)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupMessageTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT id, name, email, subject, message, seen, created_at FROM messages`).
			WillReturnError(errors.New("database error"))

		messages, err := repo.GetAll(context.Background())

		assert.Error(t, err)
		assert.Nil(t, messages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMessageRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupMessageTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO messages`).
			WithArgs("Alice", "alice@example.com", "Hello", "A message").
			WillReturnResult(sqlmock.NewResult(4, 1))

		id, err := repo.Create(context.Background(), &models.CreateMessageRequest{
			Name:    "Alice",
			Email:   "alice@example.com",
			Subject: "Hello",
			Message: "A message",
		})

		require.NoError(t, err)
		assert.Equal(t, 4, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupMessageTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO messages`).
			WithArgs("Alice", "alice@example.com", "Hello", "A message").
			WillReturnError(errors.New("database error"))

		id, err := repo.Create(context.Background(), &models.CreateMessageRequest{
			Name:    "Alice",
			Email:   "alice@example.com",
			Subject: "Hello",
			Message: "A message",
		})

		assert.Error(t, err)
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMessageRepository_MarkRead(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupMessageTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE messages SET seen = 1 WHERE id = \?`).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkRead(context.Background(), 7)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupMessageTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE messages SET seen = 1 WHERE id = \?`).
			WithArgs(7).
			WillReturnError(errors.New("database error"))

		err := repo.MarkRead(context.Background(), 7)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
