package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// aboutRepository implements about-section data access for the singleton about row
type aboutRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAboutRepository creates a new about repository
func NewAboutRepository(db *sql.DB, logger *zap.Logger) *aboutRepository {
	return &aboutRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the about row
func (r *aboutRepository) Get(ctx context.Context) (*models.About, error) {
	query := `
		SELECT id, about_text, frontend, backend, db_stack, tools, image, updated_at
		FROM about
		WHERE id = 1
	`

	about := &models.About{}
	var image sql.NullString

	err := r.db.QueryRowContext(ctx, query).Scan(
		&about.ID,
		&about.AboutText,
		&about.Frontend,
		&about.Backend,
		&about.Database,
		&about.Tools,
		&image,
		&about.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get about", zap.Error(err))
		return nil, fmt.Errorf("failed to get about: %w", err)
	}

	about.Image = image.String
	return about, nil
}

// Update updates the about row. The image column is only touched when a new
// upload path is provided.
func (r *aboutRepository) Update(ctx context.Context, req *models.UpdateAboutRequest) error {
	query := `
		UPDATE about
		SET about_text = ?, frontend = ?, backend = ?, db_stack = ?, tools = ?,
		    image = COALESCE(NULLIF(?, ''), image),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`

	_, err := r.db.ExecContext(ctx, query,
		req.AboutText, req.Frontend, req.Backend, req.Database, req.Tools, req.Image,
	)
	if err != nil {
		r.logger.Error("failed to update about", zap.Error(err))
		return fmt.Errorf("failed to update about: %w", err)
	}

	return nil
}
