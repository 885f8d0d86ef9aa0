package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// resumeRepository implements resume file record data access
type resumeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository(db *sql.DB, logger *zap.Logger) *resumeRepository {
	return &resumeRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the current resume record
func (r *resumeRepository) Get(ctx context.Context) (*models.Resume, error) {
	query := `
		SELECT id, filename, original_name, file_path, uploaded_at
		FROM resume
		WHERE id = 1
	`

	resume := &models.Resume{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&resume.ID,
		&resume.Filename,
		&resume.OriginalName,
		&resume.FilePath,
		&resume.UploadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get resume", zap.Error(err))
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	return resume, nil
}

// Replace upserts the singleton resume record
func (r *resumeRepository) Replace(ctx context.Context, resume *models.Resume) error {
	query := `
		INSERT INTO resume (id, filename, original_name, file_path, uploaded_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON DUPLICATE KEY UPDATE
			filename = VALUES(filename),
			original_name = VALUES(original_name),
			file_path = VALUES(file_path),
			uploaded_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.ExecContext(ctx, query, resume.Filename, resume.OriginalName, resume.FilePath); err != nil {
		r.logger.Error("failed to save resume record", zap.Error(err))
		return fmt.Errorf("failed to save resume record: %w", err)
	}

	return nil
}
