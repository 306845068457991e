package contact

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "foodiexpress/internal/errors"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCreateRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	contact, err := c.service.Create(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, contact)
}

func (c *Controller) GetAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.service.GetAll(r.Context())
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, contacts)
}

func (c *Controller) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	contact, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, contact)
}

func (c *Controller) GetUnread(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.service.GetUnread(r.Context())
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, contacts)
}

func (c *Controller) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	contact, err := c.service.MarkRead(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, contact)
}

func (c *Controller) MarkResolved(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	contact, err := c.service.MarkResolved(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, contact)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateCreateRequest(req CreateContactRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.FirstName) == "" || len(req.FirstName) > 50 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "firstName",
			Message: "firstName is required and must be at most 50 characters",
		})
	}

	if strings.TrimSpace(req.LastName) == "" || len(req.LastName) > 50 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lastName",
			Message: "lastName is required and must be at most 50 characters",
		})
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") || len(req.Email) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if strings.TrimSpace(req.Subject) == "" || len(req.Subject) > 50 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "subject",
			Message: "subject is required and must be at most 50 characters",
		})
	}

	if strings.TrimSpace(req.Message) == "" || len(req.Message) > 2000 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "message",
			Message: "message is required and must be at most 2000 characters",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *Controller) parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.writeValidationError(w, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}

	c.logger.Error("contact request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
