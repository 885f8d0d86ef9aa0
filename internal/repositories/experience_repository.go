package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// experienceRepository implements experience data access
type experienceRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewExperienceRepository creates a new experience repository
func NewExperienceRepository(db *sql.DB, logger *zap.Logger) *experienceRepository {
	return &experienceRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all experience entries, most recent first
func (r *experienceRepository) GetAll(ctx context.Context) ([]models.Experience, error) {
	query := `
		SELECT id, title, company, location, start_date, end_date, description, current, created_at
		FROM experience
		ORDER BY start_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get experience entries", zap.Error(err))
		return nil, fmt.Errorf("failed to get experience entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Experience
	for rows.Next() {
		var entry models.Experience
		var endDate sql.NullString
		err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Company,
			&entry.Location,
			&entry.StartDate,
			&endDate,
			&entry.Description,
			&entry.Current,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		entry.EndDate = endDate.String
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate experience rows: %w", err)
	}

	return entries, nil
}

// Create inserts a new experience entry and returns its id
func (r *experienceRepository) Create(ctx context.Context, req *models.SaveExperienceRequest) (int, error) {
	query := `
		INSERT INTO experience (title, company, location, start_date, end_date, description, current)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		req.Title, req.Company, req.Location, req.StartDate, req.EndDate, req.Description, req.Current,
	)
	if err != nil {
		r.logger.Error("failed to create experience entry", zap.Error(err))
		return 0, fmt.Errorf("failed to create experience entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return int(id), nil
}

// Update updates an existing experience entry
func (r *experienceRepository) Update(ctx context.Context, req *models.SaveExperienceRequest) error {
	query := `
		UPDATE experience
		SET title = ?, company = ?, location = ?, start_date = ?, end_date = ?, description = ?, current = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		req.Title, req.Company, req.Location, req.StartDate, req.EndDate, req.Description, req.Current, req.ID,
	)
	if err != nil {
		r.logger.Error("failed to update experience entry", zap.Error(err), zap.Int("id", req.ID))
		return fmt.Errorf("failed to update experience entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an experience entry by id
func (r *experienceRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM experience WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete experience entry", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete experience entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
