package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/soumyadiya/portfolio-backend/internal/models"
	"github.com/soumyadiya/portfolio-backend/internal/repositories"
	"go.uber.org/zap"
)

// PortfolioService is the interface that wraps skills, projects, experience
// and achievements business logic.
type PortfolioService interface {
	GetSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, req *models.CreateSkillRequest) (int, error)
	DeleteSkill(ctx context.Context, id int) error

	GetProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, req *models.CreateProjectRequest, image multipart.File, imageName string) (int, error)
	DeleteProject(ctx context.Context, id int) error

	GetExperience(ctx context.Context) ([]models.Experience, error)
	CreateExperience(ctx context.Context, req *models.SaveExperienceRequest) (int, error)
	UpdateExperience(ctx context.Context, req *models.SaveExperienceRequest) error
	DeleteExperience(ctx context.Context, id int) error

	GetAchievements(ctx context.Context) ([]models.Achievement, error)
	CreateAchievement(ctx context.Context, req *models.SaveAchievementRequest) (int, error)
	UpdateAchievement(ctx context.Context, id int, req *models.SaveAchievementRequest) error
	DeleteAchievement(ctx context.Context, id int) error
}

// PortfolioHandler handles skills, projects, experience and achievements
// HTTP requests
type PortfolioHandler struct {
	BaseHandler
	service PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(service PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all portfolio handler routes
// Note: This assumes the router is already scoped to /api
func (h *PortfolioHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/skills", h.GetSkills)
	r.With(requireAuth).Post("/skills", h.CreateSkill)
	r.With(requireAuth).Delete("/skills/{id}", h.DeleteSkill)

	r.Get("/projects", h.GetProjects)
	r.With(requireAuth).Post("/projects", h.CreateProject)
	r.With(requireAuth).Delete("/projects/{id}", h.DeleteProject)

	r.Get("/experience", h.GetExperience)
	r.With(requireAuth).Post("/experience", h.CreateExperience)
	r.With(requireAuth).Post("/experience/update", h.UpdateExperience)
	r.With(requireAuth).Delete("/experience/{id}", h.DeleteExperience)

	r.Get("/achievements", h.GetAchievements)
	r.With(requireAuth).Post("/achievements", h.CreateAchievement)
	r.With(requireAuth).Put("/achievements/{id}", h.UpdateAchievement)
	r.With(requireAuth).Delete("/achievements/{id}", h.DeleteAchievement)
}

// urlParamID parses the {id} URL parameter
func urlParamID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// GetSkills handles GET /skills
// @Summary List skills
// @Tags portfolio
// @Produce json
// @Success 200 {array} models.Skill "Skills ordered by category and name"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /skills [get]
func (h *PortfolioHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.GetSkills(r.Context())
	if err != nil {
		h.Logger.Error("failed to get skills", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, skills)
}

// CreateSkill handles POST /skills
// @Summary Add a skill
// @Tags portfolio
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateSkillRequest true "Skill"
// @Success 200 {object} map[string]any "Skill added"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /skills [post]
func (h *PortfolioHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.CreateSkill(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create skill", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{"id": id, "message": "skill added successfully"})
}

// DeleteSkill handles DELETE /skills/{id}
// @Summary Delete a skill
// @Tags portfolio
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} map[string]string "Skill deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /skills/{id} [delete]
func (h *PortfolioHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.DeleteSkill(r.Context(), id); err != nil {
		h.Logger.Error("failed to delete skill", zap.Error(err), zap.Int("id", id))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "skill deleted successfully"})
}

// GetProjects handles GET /projects
// @Summary List projects
// @Tags portfolio
// @Produce json
// @Success 200 {array} models.Project "Projects, newest first"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [get]
func (h *PortfolioHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetProjects(r.Context())
	if err != nil {
		h.Logger.Error("failed to get projects", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, projects)
}

// CreateProject handles POST /projects
// @Summary Add a project
// @Tags portfolio
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param technologies formData string false "Technologies"
// @Param github_url formData string false "GitHub URL"
// @Param live_url formData string false "Live URL"
// @Param featured formData bool false "Featured flag"
// @Param image formData file false "Project image"
// @Success 200 {object} map[string]any "Project added"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [post]
func (h *PortfolioHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	featured, _ := strconv.ParseBool(r.FormValue("featured"))
	req := &models.CreateProjectRequest{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Technologies: r.FormValue("technologies"),
		GithubURL:    r.FormValue("github_url"),
		LiveURL:      r.FormValue("live_url"),
		Featured:     featured,
	}

	image, imageName, err := formFile(r, "image")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to process image file")
		return
	}
	if image != nil {
		defer image.Close()
	}

	id, err := h.service.CreateProject(r.Context(), req, image, imageName)
	if err != nil {
		h.Logger.Error("failed to create project", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{"id": id, "message": "project added successfully"})
}

// DeleteProject handles DELETE /projects/{id}
// @Summary Delete a project
// @Tags portfolio
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]string "Project deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id} [delete]
func (h *PortfolioHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.DeleteProject(r.Context(), id); err != nil {
		h.Logger.Error("failed to delete project", zap.Error(err), zap.Int("id", id))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "project deleted successfully"})
}

// GetExperience handles GET /experience
// @Summary List experience entries
// @Tags portfolio
// @Produce json
// @Success 200 {array} models.Experience "Experience entries, most recent first"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /experience [get]
func (h *PortfolioHandler) GetExperience(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetExperience(r.Context())
	if err != nil {
		h.Logger.Error("failed to get experience entries", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, entries)
}

// CreateExperience handles POST /experience
// @Summary Add an experience entry
// @Tags portfolio
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.SaveExperienceRequest true "Experience entry"
// @Success 200 {object} map[string]any "Experience added"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /experience [post]
func (h *PortfolioHandler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var req models.SaveExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.CreateExperience(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create experience entry", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{"id": id, "message": "experience added successfully"})
}

// UpdateExperience handles POST /experience/update
// @Summary Update an experience entry
// @Tags portfolio
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.SaveExperienceRequest true "Experience entry with id"
// @Success 200 {object} map[string]string "Experience updated"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Experience not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /experience/update [post]
func (h *PortfolioHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	var req models.SaveExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateExperience(r.Context(), &req); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "experience not found")
			return
		}
		h.Logger.Error("failed to update experience entry", zap.Error(err), zap.Int("id", req.ID))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "experience updated successfully"})
}

// DeleteExperience handles DELETE /experience/{id}
// @Summary Delete an experience entry
// @Tags portfolio
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Experience ID"
// @Success 200 {object} map[string]string "Experience deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Experience not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /experience/{id} [delete]
func (h *PortfolioHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.DeleteExperience(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "experience not found")
			return
		}
		h.Logger.Error("failed to delete experience entry", zap.Error(err), zap.Int("id", id))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "experience deleted successfully"})
}

// GetAchievements handles GET /achievements
// @Summary List achievements
// @Tags portfolio
// @Produce json
// @Success 200 {array} models.Achievement "Achievements, most recent first"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /achievements [get]
func (h *PortfolioHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.service.GetAchievements(r.Context())
	if err != nil {
		h.Logger.Error("failed to get achievements", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, achievements)
}

// CreateAchievement handles POST /achievements
// @Summary Add an achievement
// @Tags portfolio
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.SaveAchievementRequest true "Achievement"
// @Success 200 {object} map[string]any "Achievement added"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /achievements [post]
func (h *PortfolioHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.CreateAchievement(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create achievement", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{"id": id, "message": "achievement added successfully"})
}

// UpdateAchievement handles PUT /achievements/{id}
// @Summary Update an achievement
// @Tags portfolio
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Achievement ID"
// @Param request body models.SaveAchievementRequest true "Achievement"
// @Success 200 {object} map[string]string "Achievement updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /achievements/{id} [put]
func (h *PortfolioHandler) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.SaveAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateAchievement(r.Context(), id, &req); err != nil {
		h.Logger.Error("failed to update achievement", zap.Error(err), zap.Int("id", id))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "achievement updated successfully"})
}

// DeleteAchievement handles DELETE /achievements/{id}
// @Summary Delete an achievement
// @Tags portfolio
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Achievement ID"
// @Success 200 {object} map[string]string "Achievement deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /achievements/{id} [delete]
func (h *PortfolioHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.DeleteAchievement(r.Context(), id); err != nil {
		h.Logger.Error("failed to delete achievement", zap.Error(err), zap.Int("id", id))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "achievement deleted successfully"})
}
