package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// projectRepository implements project data access
type projectRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB, logger *zap.Logger) *projectRepository {
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all projects, newest first
func (r *projectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, title, description, image, technologies, github_url, live_url, featured, created_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get projects", zap.Error(err))
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		var image sql.NullString
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&image,
			&project.Technologies,
			&project.GithubURL,
			&project.LiveURL,
			&project.Featured,
			&project.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		project.Image = image.String
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project rows: %w", err)
	}

	return projects, nil
}

// Create inserts a new project and returns its id
func (r *projectRepository) Create(ctx context.Context, req *models.CreateProjectRequest) (int, error) {
	query := `
		INSERT INTO projects (title, description, image, technologies, github_url, live_url, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		req.Title, req.Description, req.Image, req.Technologies, req.GithubURL, req.LiveURL, req.Featured,
	)
	if err != nil {
		r.logger.Error("failed to create project", zap.Error(err))
		return 0, fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return int(id), nil
}

// Delete removes a project by id
func (r *projectRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM projects WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.logger.Error("failed to delete project", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
