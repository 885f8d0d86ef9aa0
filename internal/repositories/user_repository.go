package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// userRepository implements user data access
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// scanUser scans a full user row, decoding the nullable descriptor and token columns
func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	user := &models.User{}
	var descriptor, token sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&descriptor,
		&token,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if token.Valid {
		user.Token = token.String
	}
	if descriptor.Valid && descriptor.String != "" {
		if err := json.Unmarshal([]byte(descriptor.String), &user.FaceDescriptor); err != nil {
			return nil, fmt.Errorf("failed to decode face descriptor: %w", err)
		}
	}

	return user, nil
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// GetByUsername retrieves a user by exact username match
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, face_descriptor, token, created_at
		FROM users
		WHERE username = ?
		LIMIT 1
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, face_descriptor, token, created_at
		FROM users
		WHERE id = ?
		LIMIT 1
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by id", zap.Error(err), zap.Int("userId", userID))
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// ListWithDescriptors retrieves all users that have an enrolled face descriptor.
// Rows are ordered by ascending id so distance ties resolve to the lowest user id.
func (r *userRepository) ListWithDescriptors(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, username, email, password_hash, face_descriptor, token, created_at
		FROM users
		WHERE face_descriptor IS NOT NULL
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to list users with descriptors", zap.Error(err))
		return nil, fmt.Errorf("failed to list users with descriptors: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.logger.Error("failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}

// UpdateToken persists a new session token for a user
func (r *userRepository) UpdateToken(ctx context.Context, userID int, token string) error {
	query := `UPDATE users SET token = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, token, userID); err != nil {
		r.logger.Error("failed to update token", zap.Error(err), zap.Int("userId", userID))
		return fmt.Errorf("failed to update token: %w", err)
	}

	return nil
}

// UpdateFaceDescriptor replaces a user's face descriptor and session token
// in a single statement
func (r *userRepository) UpdateFaceDescriptor(ctx context.Context, userID int, descriptor []float64, token string) error {
	encoded, err := json.Marshal(descriptor)
	if err != nil {
		return fmt.Errorf("failed to encode face descriptor: %w", err)
	}

	query := `UPDATE users SET face_descriptor = ?, token = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, string(encoded), token, userID); err != nil {
		r.logger.Error("failed to update face descriptor", zap.Error(err), zap.Int("userId", userID))
		return fmt.Errorf("failed to update face descriptor: %w", err)
	}

	return nil
}

// UpdatePasswordHash replaces a user's password hash
func (r *userRepository) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	query := `UPDATE users SET password_hash = ? WHERE username = ?`

	if _, err := r.db.ExecContext(ctx, query, passwordHash, username); err != nil {
		r.logger.Error("failed to update password hash", zap.Error(err), zap.String("username", username))
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	return nil
}

// ExistsByUsername checks if a user exists with the given username
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE username = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check username existence", zap.Error(err), zap.String("username", username))
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}
