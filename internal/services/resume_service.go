package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// ResumeRepository is the interface that wraps resume record data access
type ResumeRepository interface {
	Get(ctx context.Context) (*models.Resume, error)
	Replace(ctx context.Context, resume *models.Resume) error
}

// resumeService implements resume upload business logic
type resumeService struct {
	resumeRepo ResumeRepository
	storage    UploadStorage
	logger     *zap.Logger
}

// NewResumeService creates a new resume service
func NewResumeService(resumeRepo ResumeRepository, storage UploadStorage, logger *zap.Logger) *resumeService {
	return &resumeService{
		resumeRepo: resumeRepo,
		storage:    storage,
		logger:     logger,
	}
}

// GetResume returns the current resume record
func (s *resumeService) GetResume(ctx context.Context) (*models.Resume, error) {
	return s.resumeRepo.Get(ctx)
}

// UploadResume stores the uploaded file and replaces the resume record
func (s *resumeService) UploadResume(ctx context.Context, file multipart.File, originalName string) (*models.Resume, error) {
	filename, err := s.storage.Save(file, originalName)
	if err != nil {
		return nil, fmt.Errorf("failed to store resume file: %w", err)
	}

	resume := &models.Resume{
		ID:           1,
		Filename:     filename,
		OriginalName: strings.TrimSpace(originalName),
		FilePath:     uploadsURLPrefix + filename,
	}

	if err := s.resumeRepo.Replace(ctx, resume); err != nil {
		return nil, err
	}

	return resume, nil
}
