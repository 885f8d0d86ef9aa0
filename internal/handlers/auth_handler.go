package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soumyadiya/portfolio-backend/internal/middleware"
	"github.com/soumyadiya/portfolio-backend/internal/models"
	"github.com/soumyadiya/portfolio-backend/internal/services"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Login authenticates a user by username and password and returns
	// a fresh session token together with the public user info.
	//
	// Unknown usernames and wrong passwords both yield services.ErrInvalidCredentials.
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	// Method LoginByFace authenticates a user by face descriptor.
	//
	// An empty descriptor yields services.ErrInvalidDescriptor; no enrolled
	// descriptor within the acceptance threshold yields services.ErrFaceNotRecognized.
	LoginByFace(ctx context.Context, descriptor []float64) (*models.AuthResponse, error)
	// Method SaveFaceDescriptor replaces the caller's enrolled descriptor and
	// returns a freshly minted session token.
	SaveFaceDescriptor(ctx context.Context, userID int, username string, descriptor []float64) (string, error)
	// Method ChangePassword verifies the current password and replaces the hash.
	ChangePassword(ctx context.Context, req *models.ChangePasswordRequest) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api
func (h *AuthHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/face-login", h.FaceLogin)
		r.With(requireAuth).Post("/save-face", h.SaveFace)
	})
	// Password change is deliberately left outside the session guard; the
	// current password is re-verified instead.
	r.Put("/change-password", h.ChangePassword)
}

// Login handles POST /auth/login
// @Summary Login with username and password
// @Description Authenticate with username and password. Returns a session token and the user info.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.RespondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.Logger.Error("failed to login user", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// FaceLogin handles POST /auth/face-login
// @Summary Login with a face descriptor
// @Description Authenticate by matching a face descriptor against enrolled users. Returns the matched user's session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.FaceLoginRequest true "Face login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} map[string]string "Descriptor is required"
// @Failure 401 {object} map[string]string "Face not recognized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/face-login [post]
func (h *AuthHandler) FaceLogin(w http.ResponseWriter, r *http.Request) {
	var req models.FaceLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authService.LoginByFace(r.Context(), req.Descriptor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDescriptor):
			h.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrFaceNotRecognized):
			h.RespondError(w, http.StatusUnauthorized, err.Error())
		default:
			h.Logger.Error("failed to login user by face", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "database error")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// SaveFace handles POST /auth/save-face
// @Summary Save face descriptor
// @Description Replace the authenticated user's face descriptor and rotate the session token.
// @Tags auth
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.FaceLoginRequest true "Descriptor to enroll"
// @Success 200 {object} map[string]string "Descriptor saved"
// @Failure 400 {object} map[string]string "Descriptor is required"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/save-face [post]
func (h *AuthHandler) SaveFace(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	username, okName := middleware.GetUsername(r.Context())
	if !ok || !okName {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.FaceLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.SaveFaceDescriptor(r.Context(), userID, username, req.Descriptor)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDescriptor) {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to save face descriptor", zap.Error(err), zap.Int("userId", userID))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "face descriptor and token saved successfully",
		"token":   token,
	})
}

// ChangePassword handles PUT /change-password
// @Summary Change password
// @Description Verify the current password and replace it with a new one. The existing session token stays valid.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Password change request"
// @Success 200 {object} map[string]string "Password updated"
// @Failure 400 {object} map[string]string "User not found or invalid request"
// @Failure 401 {object} map[string]string "Current password is incorrect"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /change-password [put]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.ChangePassword(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			h.RespondError(w, http.StatusBadRequest, "user not found")
		case errors.Is(err, services.ErrInvalidCredentials):
			h.RespondError(w, http.StatusUnauthorized, "current password is incorrect")
		default:
			h.Logger.Error("failed to change password", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to update password")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "password updated successfully"})
}
