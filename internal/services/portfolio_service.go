package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/soumyadiya/portfolio-backend/internal/models"
	"go.uber.org/zap"
)

// SkillRepository is the interface that wraps skill data access
type SkillRepository interface {
	GetAll(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, req *models.CreateSkillRequest) (int, error)
	Delete(ctx context.Context, id int) error
}

// ProjectRepository is the interface that wraps project data access
type ProjectRepository interface {
	GetAll(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest) (int, error)
	Delete(ctx context.Context, id int) error
}

// ExperienceRepository is the interface that wraps experience data access
type ExperienceRepository interface {
	GetAll(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, req *models.SaveExperienceRequest) (int, error)
	Update(ctx context.Context, req *models.SaveExperienceRequest) error
	Delete(ctx context.Context, id int) error
}

// AchievementRepository is the interface that wraps achievement data access
type AchievementRepository interface {
	GetAll(ctx context.Context) ([]models.Achievement, error)
	Create(ctx context.Context, req *models.SaveAchievementRequest) (int, error)
	Update(ctx context.Context, id int, req *models.SaveAchievementRequest) error
	Delete(ctx context.Context, id int) error
}

// portfolioService implements skills, projects, experience and achievements
// business logic
type portfolioService struct {
	skillRepo       SkillRepository
	projectRepo     ProjectRepository
	experienceRepo  ExperienceRepository
	achievementRepo AchievementRepository
	storage         UploadStorage
	logger          *zap.Logger
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(
	skillRepo SkillRepository,
	projectRepo ProjectRepository,
	experienceRepo ExperienceRepository,
	achievementRepo AchievementRepository,
	storage UploadStorage,
	logger *zap.Logger,
) *portfolioService {
	return &portfolioService{
		skillRepo:       skillRepo,
		projectRepo:     projectRepo,
		experienceRepo:  experienceRepo,
		achievementRepo: achievementRepo,
		storage:         storage,
		logger:          logger,
	}
}

// GetSkills returns all skills
func (s *portfolioService) GetSkills(ctx context.Context) ([]models.Skill, error) {
	return s.skillRepo.GetAll(ctx)
}

// CreateSkill adds a new skill
func (s *portfolioService) CreateSkill(ctx context.Context, req *models.CreateSkillRequest) (int, error) {
	return s.skillRepo.Create(ctx, req)
}

// DeleteSkill removes a skill
func (s *portfolioService) DeleteSkill(ctx context.Context, id int) error {
	return s.skillRepo.Delete(ctx, id)
}

// GetProjects returns all projects
func (s *portfolioService) GetProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

// CreateProject adds a new project, storing its image upload when provided
func (s *portfolioService) CreateProject(ctx context.Context, req *models.CreateProjectRequest, image multipart.File, imageName string) (int, error) {
	if image != nil {
		filename, err := s.storage.Save(image, imageName)
		if err != nil {
			return 0, fmt.Errorf("failed to store project image: %w", err)
		}
		req.Image = uploadsURLPrefix + filename
	}

	return s.projectRepo.Create(ctx, req)
}

// DeleteProject removes a project
func (s *portfolioService) DeleteProject(ctx context.Context, id int) error {
	return s.projectRepo.Delete(ctx, id)
}

// GetExperience returns all experience entries
func (s *portfolioService) GetExperience(ctx context.Context) ([]models.Experience, error) {
	return s.experienceRepo.GetAll(ctx)
}

// CreateExperience adds a new experience entry
func (s *portfolioService) CreateExperience(ctx context.Context, req *models.SaveExperienceRequest) (int, error) {
	return s.experienceRepo.Create(ctx, req)
}

// UpdateExperience updates an existing experience entry
func (s *portfolioService) UpdateExperience(ctx context.Context, req *models.SaveExperienceRequest) error {
	return s.experienceRepo.Update(ctx, req)
}

// DeleteExperience removes an experience entry
func (s *portfolioService) DeleteExperience(ctx context.Context, id int) error {
	return s.experienceRepo.Delete(ctx, id)
}

// GetAchievements returns all achievements
func (s *portfolioService) GetAchievements(ctx context.Context) ([]models.Achievement, error) {
	return s.achievementRepo.GetAll(ctx)
}

// CreateAchievement adds a new achievement
func (s *portfolioService) CreateAchievement(ctx context.Context, req *models.SaveAchievementRequest) (int, error) {
	return s.achievementRepo.Create(ctx, req)
}

// UpdateAchievement updates an existing achievement
func (s *portfolioService) UpdateAchievement(ctx context.Context, id int, req *models.SaveAchievementRequest) error {
	return s.achievementRepo.Update(ctx, id, req)
}

// DeleteAchievement removes an achievement
func (s *portfolioService) DeleteAchievement(ctx context.Context, id int) error {
	return s.achievementRepo.Delete(ctx, id)
}
