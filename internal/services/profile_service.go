package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// uploadsURLPrefix is the public path under which stored files are served
const uploadsURLPrefix = "/uploads/"

// UploadStorage is the interface that wraps upload file storage
type UploadStorage interface {
	// Method Save stores an uploaded file and returns the stored filename.
	Save(file io.Reader, originalName string) (string, error)
}

// ProfileRepository is the interface that wraps profile data access
type ProfileRepository interface {
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, req *models.UpdateProfileRequest) error
}

// AboutRepository is the interface that wraps about-section data access
type AboutRepository interface {
	Get(ctx context.Context) (*models.About, error)
	Update(ctx context.Context, req *models.UpdateAboutRequest) error
}

// profileService implements profile and about-section business logic
type profileService struct {
	profileRepo ProfileRepository
	aboutRepo   AboutRepository
	storage     UploadStorage
	logger      *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo ProfileRepository, aboutRepo AboutRepository, storage UploadStorage, logger *zap.Logger) *profileService {
	return &profileService{
		profileRepo: profileRepo,
		aboutRepo:   aboutRepo,
		storage:     storage,
		logger:      logger,
	}
}

// GetProfile returns the public profile
func (s *profileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	return s.profileRepo.Get(ctx)
}

// UpdateProfile updates the profile, storing new photo and CV uploads when provided
func (s *profileService) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, photo multipart.File, photoName string, cv multipart.File, cvName string) error {
	if photo != nil {
		path, err := s.storeUpload(photo, photoName)
		if err != nil {
			return fmt.Errorf("failed to store photo: %w", err)
		}
		req.Photo = path
	}

	if cv != nil {
		path, err := s.storeUpload(cv, cvName)
		if err != nil {
			return fmt.Errorf("failed to store cv: %w", err)
		}
		req.CVURL = path
	}

	return s.profileRepo.Update(ctx, req)
}

// GetAbout returns the about section
func (s *profileService) GetAbout(ctx context.Context) (*models.About, error) {
	return s.aboutRepo.Get(ctx)
}

// UpdateAbout updates the about section, storing a new image upload when provided
func (s *profileService) UpdateAbout(ctx context.Context, req *models.UpdateAboutRequest, image multipart.File, imageName string) error {
	if image != nil {
		path, err := s.storeUpload(image, imageName)
		if err != nil {
			return fmt.Errorf("failed to store image: %w", err)
		}
		req.Image = path
	}

	return s.aboutRepo.Update(ctx, req)
}

// storeUpload saves a file and returns its public serving path
func (s *profileService) storeUpload(file io.Reader, originalName string) (string, error) {
	filename, err := s.storage.Save(file, originalName)
	if err != nil {
		return "", err
	}
	return uploadsURLPrefix + filename, nil
}
