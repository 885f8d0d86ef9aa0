package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// skillRepository implements skill data access
type skillRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *sql.DB, logger *zap.Logger) *skillRepository {
	return &skillRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all skills ordered by category and name
func (r *skillRepository) GetAll(ctx context.Context) ([]models.Skill, error) {
	query := `
		SELECT id, name, category, percentage, icon, created_at
		FROM skills
		ORDER BY category, name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get skills", zap.Error(err))
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var skill models.Skill
		err := rows.Scan(&skill.ID, &skill.Name, &skill.Category, &skill.Percentage, &skill.Icon, &skill.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate skill rows: %w", err)
	}

	return skills, nil
}

// Create inserts a new skill and returns its id
func (r *skillRepository) Create(ctx context.Context, req *models.CreateSkillRequest) (int, error) {
	query := `INSERT INTO skills (name, category, percentage, icon) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, req.Name, req.Category, req.Percentage, req.Icon)
	if err != nil {
		r.logger.Error("failed to create skill", zap.Error(err))
		return 0, fmt.Errorf("failed to create skill: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return int(id), nil
}

// Delete removes a skill by id
func (r *skillRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM skills WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.logger.Error("failed to delete skill", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	return nil
}
