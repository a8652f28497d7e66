package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/delivery/http/middleware"
	"lifelink-api/internal/domain/entity"
	"lifelink-api/internal/usecase"
	"lifelink-api/pkg/response"
	"lifelink-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
	validator    *validator.CustomValidator
}

func NewAlertHandler(alertUsecase usecase.AlertUsecase, validator *validator.CustomValidator) *AlertHandler {
	return &AlertHandler{
		alertUsecase: alertUsecase,
		validator:    validator,
	}
}

// Create broadcasts a new blood alert
// @Summary Create alert
// @Tags Alerts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAlertRequest true "Create Alert Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /alerts [post]
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	alert, err := h.alertUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidExpiryFormat:
			response.BadRequest(w, "Invalid expiry format, use RFC3339")
		default:
			response.InternalServerError(w, "Failed to create alert")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Alert created successfully", alert)
}

// List returns every alert regardless of state
// @Summary List all alerts
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /alerts [get]
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.alertUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list alerts")
		return
	}

	response.Success(w, http.StatusOK, "Alerts retrieved successfully", result)
}

// ListActive returns currently active alerts. Donor callers additionally get
// a has_accepted flag per alert.
// @Summary List active alerts
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /alerts/active [get]
func (h *AlertHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRoleFromContext(r.Context())
	if entity.UserRole(role) == entity.RoleDonor {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Invalid token")
			return
		}

		result, err := h.alertUsecase.ListActiveForDonor(r.Context(), userID, middleware.GetDonorIDFromContext(r.Context()))
		if err != nil {
			writeResolverError(w, err, "Failed to list active alerts")
			return
		}

		response.Success(w, http.StatusOK, "Active alerts retrieved successfully", result)
		return
	}

	result, err := h.alertUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list active alerts")
		return
	}

	response.Success(w, http.StatusOK, "Active alerts retrieved successfully", result)
}

// ListPast returns resolved, cancelled and expired alerts
// @Summary List past alerts
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /alerts/past [get]
func (h *AlertHandler) ListPast(w http.ResponseWriter, r *http.Request) {
	result, err := h.alertUsecase.ListPast(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list past alerts")
		return
	}

	response.Success(w, http.StatusOK, "Past alerts retrieved successfully", result)
}

// Get returns one alert by ID
// @Summary Get alert
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /alerts/{id} [get]
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid alert ID")
		return
	}

	alert, err := h.alertUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAlertNotFound:
			response.NotFound(w, "Alert not found")
		default:
			response.InternalServerError(w, "Failed to get alert")
		}
		return
	}

	response.Success(w, http.StatusOK, "Alert retrieved successfully", alert)
}

// Update modifies an alert's mutable fields
// @Summary Update alert
// @Tags Alerts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param request body dto.UpdateAlertRequest true "Update Alert Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /alerts/{id} [put]
func (h *AlertHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid alert ID")
		return
	}

	var req dto.UpdateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	alert, err := h.alertUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAlertNotFound:
			response.NotFound(w, "Alert not found")
		default:
			response.InternalServerError(w, "Failed to update alert")
		}
		return
	}

	response.Success(w, http.StatusOK, "Alert updated successfully", alert)
}

// Accept records the calling donor's acceptance of an alert
// @Summary Accept alert
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /alerts/{id}/accept [post]
func (h *AlertHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid alert ID")
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.alertUsecase.Accept(r.Context(), id, userID, middleware.GetDonorIDFromContext(r.Context()))
	if err != nil {
		switch err {
		case usecase.ErrAlertNotFound:
			response.NotFound(w, "Alert not found")
		case usecase.ErrAlertNotActive:
			response.BadRequest(w, "Alert is not active")
		case usecase.ErrAlertExpired:
			response.BadRequest(w, "Alert has expired")
		default:
			writeResolverError(w, err, "Failed to accept alert")
		}
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}

// AcceptedDonors lists the donors who accepted an alert
// @Summary List accepted donors
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /alerts/{id}/donors [get]
func (h *AlertHandler) AcceptedDonors(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid alert ID")
		return
	}

	result, err := h.alertUsecase.AcceptedDonors(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAlertNotFound:
			response.NotFound(w, "Alert not found")
		default:
			response.InternalServerError(w, "Failed to list accepted donors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Accepted donors retrieved successfully", result)
}

// Resolve marks an alert RESOLVED
// @Summary Resolve alert
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /alerts/{id}/resolve [patch]
func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.alertUsecase.MarkResolved, "Alert resolved successfully")
}

// Cancel marks an alert CANCELLED
// @Summary Cancel alert
// @Tags Alerts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /alerts/{id}/cancel [patch]
func (h *AlertHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.alertUsecase.Cancel, "Alert cancelled successfully")
}

func (h *AlertHandler) updateStatus(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) error, message string) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid alert ID")
		return
	}

	if err := fn(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAlertNotFound:
			response.NotFound(w, "Alert not found")
		default:
			response.InternalServerError(w, "Failed to update alert status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}
