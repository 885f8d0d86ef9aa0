package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soumyadiya/portfolio-backend/internal/models"
	"github.com/soumyadiya/portfolio-backend/internal/repositories"
	"github.com/soumyadiya/portfolio-backend/internal/services"
	"go.uber.org/zap"
)

// ContactService is the interface that wraps contact info and inbound
// message business logic.
type ContactService interface {
	GetContactInfo(ctx context.Context) (*models.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, req *models.UpdateContactInfoRequest) error
	GetMessages(ctx context.Context) ([]models.Message, error)
	CreateMessage(ctx context.Context, req *models.CreateMessageRequest) (int, error)
	MarkMessageRead(ctx context.Context, id int) error
}

// ContactHandler handles contact info and message HTTP requests
type ContactHandler struct {
	BaseHandler
	service ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all contact handler routes
// Note: This assumes the router is already scoped to /api
func (h *ContactHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/contact-info", h.GetContactInfo)
	r.Put("/contact-info", h.UpdateContactInfo)

	r.Post("/messages", h.CreateMessage)
	r.With(requireAuth).Get("/messages", h.GetMessages)
	r.With(requireAuth).Put("/messages/{id}/read", h.MarkMessageRead)
}

// GetContactInfo handles GET /contact-info
// @Summary Get contact info
// @Tags contact
// @Produce json
// @Success 200 {object} models.ContactInfo "Contact info"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contact-info [get]
func (h *ContactHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetContactInfo(r.Context())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondJSON(w, http.StatusOK, map[string]string{})
			return
		}
		h.Logger.Error("failed to get contact info", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, info)
}

// UpdateContactInfo handles PUT /contact-info
// @Summary Update contact info
// @Tags contact
// @Accept json
// @Produce json
// @Param request body models.UpdateContactInfoRequest true "Contact info"
// @Success 200 {object} map[string]string "Contact info updated"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contact-info [put]
func (h *ContactHandler) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateContactInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateContactInfo(r.Context(), &req); err != nil {
		h.Logger.Error("failed to update contact info", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to update contact info")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "contact info updated successfully"})
}

// GetMessages handles GET /messages
// @Summary List inbound messages
// @Tags contact
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Message "Messages, newest first"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages [get]
func (h *ContactHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.GetMessages(r.Context())
	if err != nil {
		h.Logger.Error("failed to get messages", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, messages)
}

// CreateMessage handles POST /messages
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body models.CreateMessageRequest true "Message"
// @Success 200 {object} map[string]any "Message sent"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages [post]
func (h *ContactHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.CreateMessage(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMessage) {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to create message", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{"id": id, "message": "message sent successfully"})
}

// MarkMessageRead handles PUT /messages/{id}/read
// @Summary Mark a message as read
// @Tags contact
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]string "Message marked as read"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages/{id}/read [put]
func (h *ContactHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.MarkMessageRead(r.Context(), id); err != nil {
		h.Logger.Error("failed to mark message as read", zap.Error(err), zap.Int("id", id))
		h.RespondError(w, http.StatusInternalServerError, "database error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "message marked as read"})
}
