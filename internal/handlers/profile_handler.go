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

// ProfileService is the interface that wraps profile and about-section business logic.
type ProfileService interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, photo multipart.File, photoName string, cv multipart.File, cvName string) error
	GetAbout(ctx context.Context) (*models.About, error)
	UpdateAbout(ctx context.Context, req *models.UpdateAboutRequest, image multipart.File, imageName string) error
}

// ProfileHandler handles profile and about-section HTTP requests
type ProfileHandler struct {
	BaseHandler
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all profile handler routes
// Note: This assumes the router is already scoped to /api
func (h *ProfileHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/profile", h.GetProfile)
	r.With(requireAuth).Put("/profile", h.UpdateProfile)
	r.Get("/about", h.GetAbout)
	r.With(requireAuth).Put("/about", h.UpdateAbout)
}

// formFile extracts an optional file from a parsed multipart form.
// Returns a nil file when the field is absent or empty.
func formFile(r *http.Request, field string) (multipart.File, string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	if header.Size == 0 {
		file.Close()
		return nil, "", nil
	}
	return file, header.Filename, nil
}

// GetProfile handles GET /profile
// @Summary Get profile
// @Description Get the public profile section
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondJSON(w, http.StatusOK, map[string]string{})
			return
		}
		h.Logger.Error("failed to get profile", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile
// @Summary Update profile
// @Description Update the profile section with optional photo and CV uploads
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param name formData string false "Name"
// @Param title formData string false "Title"
// @Param bio formData string false "Bio"
// @Param location formData string false "Location"
// @Param email formData string false "Email"
// @Param phone formData string false "Phone"
// @Param photo formData file false "Profile photo"
// @Param cv formData file false "CV file"
// @Success 200 {object} map[string]string "Profile updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	req := &models.UpdateProfileRequest{
		Name:     r.FormValue("name"),
		Title:    r.FormValue("title"),
		Bio:      r.FormValue("bio"),
		Location: r.FormValue("location"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
	}

	photo, photoName, err := formFile(r, "photo")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to process photo file")
		return
	}
	if photo != nil {
		defer photo.Close()
	}

	cv, cvName, err := formFile(r, "cv")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to process cv file")
		return
	}
	if cv != nil {
		defer cv.Close()
	}

	if err := h.service.UpdateProfile(r.Context(), req, photo, photoName, cv, cvName); err != nil {
		h.Logger.Error("failed to update profile", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "profile updated successfully"})
}

// GetAbout handles GET /about
// @Summary Get about section
// @Description Get the public about section
// @Tags profile
// @Produce json
// @Success 200 {object} models.About "About section"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /about [get]
func (h *ProfileHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.service.GetAbout(r.Context())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondJSON(w, http.StatusOK, map[string]string{})
			return
		}
		h.Logger.Error("failed to get about", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, about)
}

// UpdateAbout handles PUT /about
// @Summary Update about section
// @Description Update the about section with an optional image upload
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param aboutText formData string false "About text"
// @Param frontend formData string false "Frontend stack"
// @Param backend formData string false "Backend stack"
// @Param database formData string false "Database stack"
// @Param tools formData string false "Tooling"
// @Param image formData file false "About image"
// @Success 200 {object} map[string]string "About updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /about [put]
func (h *ProfileHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	req := &models.UpdateAboutRequest{
		AboutText: r.FormValue("aboutText"),
		Frontend:  r.FormValue("frontend"),
		Backend:   r.FormValue("backend"),
		Database:  r.FormValue("database"),
		Tools:     r.FormValue("tools"),
	}

	image, imageName, err := formFile(r, "image")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "failed to process image file")
		return
	}
	if image != nil {
		defer image.Close()
	}

	if err := h.service.UpdateAbout(r.Context(), req, image, imageName); err != nil {
		h.Logger.Error("failed to update about", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "about section updated successfully"})
}
