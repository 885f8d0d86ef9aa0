package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soumyadiya/portfolio-backend/internal/models"
	"github.com/soumyadiya/portfolio-backend/internal/repositories"
	"go.uber.org/zap"
)

// ResumeService is the interface that wraps resume upload business logic.
type ResumeService interface {
	GetResume(ctx context.Context) (*models.Resume, error)
	UploadResume(ctx context.Context, file multipart.File, originalName string) (*models.Resume, error)
}

// ResumeHandler handles resume HTTP requests
type ResumeHandler struct {
	BaseHandler
	service ResumeService
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(service ResumeService, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all resume handler routes
// Note: This assumes the router is already scoped to /api
func (h *ResumeHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/resume", h.GetResume)
	r.With(requireAuth).Post("/upload-resume", h.UploadResume)
}

// GetResume handles GET /resume
// @Summary Get current resume info
// @Tags resume
// @Produce json
// @Success 200 {object} models.Resume "Resume record"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resume [get]
func (h *ResumeHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	resume, err := h.service.GetResume(r.Context())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondJSON(w, http.StatusOK, map[string]string{})
			return
		}
		h.Logger.Error("failed to get resume", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, resume)
}

// UploadResume handles POST /upload-resume
// @Summary Upload a resume file
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param resume formData file true "Resume file"
// @Success 200 {object} map[string]string "Resume uploaded"
// @Failure 400 {object} map[string]string "No file uploaded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /upload-resume [post]
func (h *ResumeHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	file, filename, err := formFile(r, "resume")
	if err != nil || file == nil {
		h.RespondError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	resume, err := h.service.UploadResume(r.Context(), file, filename)
	if err != nil {
		h.Logger.Error("failed to upload resume", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "error saving resume info")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{
		"message":  "resume uploaded successfully",
		"path":     resume.FilePath,
		"filename": resume.OriginalName,
	})
}
