package menu

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

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.ListAvailable(r.Context())
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, items)
}

func (c *Controller) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	item, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, item)
}

func (c *Controller) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	items, err := c.service.ListByCategory(r.Context(), category)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, items)
}

func (c *Controller) ListPopular(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.ListPopular(r.Context())
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, items)
}

func (c *Controller) Search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		c.writeValidationError(w, "missing search term", apperrors.ValidationDetail{
			Field:   "q",
			Message: "q query parameter is required",
		})
		return
	}

	items, err := c.service.Search(r.Context(), term)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, items)
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
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

	item, err := c.service.Create(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, item)
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	var req UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateUpdateRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	item, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, item)
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

func validateCreateRequest(req CreateMenuItemRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" || len(req.Name) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required and must be at most 100 characters",
		})
	}

	if len(req.Description) > 500 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "description",
			Message: "description exceeds maximum length of 500",
		})
	}

	if req.Price < 0.01 || req.Price > 9999.99 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be between 0.01 and 9999.99",
		})
	}

	if req.Category == "" || len(req.Category) > 50 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category is required and must be at most 50 characters",
		})
	}

	if req.Rating < 0 || req.Rating > 5 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "rating",
			Message: "rating must be between 0 and 5",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func validateUpdateRequest(req UpdateMenuItemRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name != nil && (*req.Name == "" || len(*req.Name) > 100) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must be non-empty and at most 100 characters",
		})
	}

	if req.Price != nil && (*req.Price < 0.01 || *req.Price > 9999.99) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be between 0.01 and 9999.99",
		})
	}

	if req.Category != nil && (*req.Category == "" || len(*req.Category) > 50) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category must be non-empty and at most 50 characters",
		})
	}

	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "rating",
			Message: "rating must be between 0 and 5",
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

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "CONFLICT",
			"message": err.Error(),
		})
		return
	}

	c.logger.Error("menu request failed", zap.Error(err))
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
