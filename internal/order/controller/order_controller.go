package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"foodiexpress/internal/domain"
	apperrors "foodiexpress/internal/errors"
	"foodiexpress/internal/order/dto"
)

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.OrderDTO, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*dto.OrderDTO, error)
	GetAll(ctx context.Context) ([]dto.OrderDTO, error)
	GetByStatus(ctx context.Context, status string) ([]dto.OrderDTO, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*dto.OrderDTO, error)
	Delete(ctx context.Context, id uint) error
}

type Controller struct {
	service OrderService
	logger  *zap.Logger
}

func NewController(service OrderService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCreateRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("order validation failed", zap.Int("detailCount", len(ve.Details)))
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.service.Create(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *Controller) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.GetAll(r.Context())
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, orders)
}

func (c *Controller) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	order, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, order)
}

func (c *Controller) GetByOrderNumber(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	order, err := c.service.GetByOrderNumber(r.Context(), orderNumber)
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, order)
}

func (c *Controller) GetByStatus(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, "status")

	orders, err := c.service.GetByStatus(r.Context(), status)
	if err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	c.writeJSON(w, http.StatusOK, orders)
}

func (c *Controller) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if !domain.ValidOrderStatus(req.Status) {
		c.writeValidationError(w, "invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(domain.OrderStatuses(), ", "),
		})
		return
	}

	order, err := c.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}
	c.writeJSON(w, http.StatusOK, order)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.handleServiceError(w, err, c.requestLogger())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateCreateRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	if len(req.CustomerName) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName exceeds maximum length of 100",
		})
	}

	if len(req.CustomerEmail) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerEmail",
			Message: "customerEmail exceeds maximum length of 100",
		})
	}

	if req.CustomerEmail != "" && !strings.Contains(req.CustomerEmail, "@") {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerEmail",
			Message: "customerEmail must be a valid email address",
		})
	}

	if len(req.DeliveryAddress) > 500 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "deliveryAddress",
			Message: "deliveryAddress exceeds maximum length of 500",
		})
	}

	if len(req.Notes) > 500 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "notes",
			Message: "notes exceeds maximum length of 500",
		})
	}

	for idx, item := range req.Items {
		prefix := "items[" + strconv.Itoa(idx) + "]"

		if item.MenuItemID == 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + ".menuItemId",
				Message: "menuItemId is required",
			})
		}

		if item.ItemName == "" || len(item.ItemName) > 100 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + ".itemName",
				Message: "itemName is required and must be at most 100 characters",
			})
		}

		if item.Quantity < 1 || item.Quantity > 100 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + ".quantity",
				Message: "quantity must be between 1 and 100",
			})
		}

		if item.Price < 0.01 || item.Price > 9999.99 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + ".price",
				Message: "price must be between 0.01 and 9999.99",
			})
		}

		if len(item.SpecialInstructions) > 500 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + ".specialInstructions",
				Message: "specialInstructions exceeds maximum length of 500",
			})
		}
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

func (c *Controller) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		logger.Error("order number conflict persisted after retry", zap.Error(err))
		c.writeError(w, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeError(w http.ResponseWriter, status int, code string, message string) {
	c.writeJSON(w, status, errorResponse{
		Error:   code,
		Message: message,
	})
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
