package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// contactInfoRepository implements contact-info data access for the singleton row
type contactInfoRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewContactInfoRepository creates a new contact info repository
func NewContactInfoRepository(db *sql.DB, logger *zap.Logger) *contactInfoRepository {
	return &contactInfoRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the contact info row
func (r *contactInfoRepository) Get(ctx context.Context) (*models.ContactInfo, error) {
	query := `
		SELECT id, title, description, email, phone, location, github, linkedin, twitter, updated_at
		FROM contact_info
		WHERE id = 1
	`

	info := &models.ContactInfo{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&info.ID,
		&info.Title,
		&info.Description,
		&info.Email,
		&info.Phone,
		&info.Location,
		&info.Github,
		&info.Linkedin,
		&info.Twitter,
		&info.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get contact info", zap.Error(err))
		return nil, fmt.Errorf("failed to get contact info: %w", err)
	}

	return info, nil
}

// Update updates the contact info row
func (r *contactInfoRepository) Update(ctx context.Context, req *models.UpdateContactInfoRequest) error {
	query := `
		UPDATE contact_info
		SET email = ?, phone = ?, location = ?, github = ?, linkedin = ?, twitter = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`

	_, err := r.db.ExecContext(ctx, query,
		req.Email, req.Phone, req.Location, req.Github, req.Linkedin, req.Twitter,
	)
	if err != nil {
		r.logger.Error("failed to update contact info", zap.Error(err))
		return fmt.Errorf("failed to update contact info: %w", err)
	}

	return nil
}
