package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// profileRepository implements profile data access for the singleton profile row
type profileRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sql.DB, logger *zap.Logger) *profileRepository {
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the profile row
func (r *profileRepository) Get(ctx context.Context) (*models.Profile, error) {
	query := `
		SELECT id, name, title, bio, photo, cv_url, location, email, phone, updated_at
		FROM profile
		WHERE id = 1
	`

	profile := &models.Profile{}
	var photo, cvURL sql.NullString

	err := r.db.QueryRowContext(ctx, query).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Title,
		&profile.Bio,
		&photo,
		&cvURL,
		&profile.Location,
		&profile.Email,
		&profile.Phone,
		&profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get profile", zap.Error(err))
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.Photo = photo.String
	profile.CVURL = cvURL.String
	return profile, nil
}

// Update updates the profile row. Photo and cv_url columns are only touched
// when a new upload path is provided.
func (r *profileRepository) Update(ctx context.Context, req *models.UpdateProfileRequest) error {
	query := `
		UPDATE profile
		SET name = ?, title = ?, bio = ?, location = ?, email = ?, phone = ?,
		    photo = COALESCE(NULLIF(?, ''), photo),
		    cv_url = COALESCE(NULLIF(?, ''), cv_url),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`

	_, err := r.db.ExecContext(ctx, query,
		req.Name, req.Title, req.Bio, req.Location, req.Email, req.Phone,
		req.Photo, req.CVURL,
	)
	if err != nil {
		r.logger.Error("failed to update profile", zap.Error(err))
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}
