package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// achievementRepository implements achievement data access
type achievementRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *sql.DB, logger *zap.Logger) *achievementRepository {
	return &achievementRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all achievements, most recent first
func (r *achievementRepository) GetAll(ctx context.Context) ([]models.Achievement, error) {
	query := `
		SELECT id, title, description, date, category, created_at
		FROM achievements
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get achievements", zap.Error(err))
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var achievement models.Achievement
		err := rows.Scan(
			&achievement.ID,
			&achievement.Title,
			&achievement.Description,
			&achievement.Date,
			&achievement.Category,
			&achievement.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan achievement row: %w", err)
		}
		achievements = append(achievements, achievement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate achievement rows: %w", err)
	}

	return achievements, nil
}

// Create inserts a new achievement and returns its id
func (r *achievementRepository) Create(ctx context.Context, req *models.SaveAchievementRequest) (int, error) {
	query := `INSERT INTO achievements (title, description, date, category) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, req.Title, req.Description, req.Date, req.Category)
	if err != nil {
		r.logger.Error("failed to create achievement", zap.Error(err))
		return 0, fmt.Errorf("failed to create achievement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return int(id), nil
}

// Update updates an existing achievement
func (r *achievementRepository) Update(ctx context.Context, id int, req *models.SaveAchievementRequest) error {
	query := `UPDATE achievements SET title = ?, description = ?, date = ?, category = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, req.Title, req.Description, req.Date, req.Category, id); err != nil {
		r.logger.Error("failed to update achievement", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to update achievement: %w", err)
	}

	return nil
}

// Delete removes an achievement by id
func (r *achievementRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM achievements WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.logger.Error("failed to delete achievement", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete achievement: %w", err)
	}

	return nil
}
