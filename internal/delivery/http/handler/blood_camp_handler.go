package handler

import (
	"encoding/json"
	"net/http"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/delivery/http/middleware"
	"lifelink-api/internal/usecase"
	"lifelink-api/pkg/response"
	"lifelink-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BloodCampHandler struct {
	campUsecase usecase.BloodCampUsecase
	validator   *validator.CustomValidator
}

func NewBloodCampHandler(campUsecase usecase.BloodCampUsecase, validator *validator.CustomValidator) *BloodCampHandler {
	return &BloodCampHandler{
		campUsecase: campUsecase,
		validator:   validator,
	}
}

// Create schedules a new blood donation camp
func (h *BloodCampHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateBloodCampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	camp, err := h.campUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create blood camp")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blood camp created successfully", camp)
}

// List returns blood camps, optionally filtered by status
func (h *BloodCampHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.campUsecase.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.InternalServerError(w, "Failed to list blood camps")
		return
	}

	response.Success(w, http.StatusOK, "Blood camps retrieved successfully", result)
}

// Get returns one blood camp by ID
func (h *BloodCampHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid camp ID")
		return
	}

	camp, err := h.campUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrCampNotFound:
			response.NotFound(w, "Camp not found")
		default:
			response.InternalServerError(w, "Failed to get blood camp")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood camp retrieved successfully", camp)
}

// Update modifies a blood camp
func (h *BloodCampHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid camp ID")
		return
	}

	var req dto.UpdateBloodCampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	camp, err := h.campUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCampNotFound:
			response.NotFound(w, "Camp not found")
		default:
			response.InternalServerError(w, "Failed to update blood camp")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood camp updated successfully", camp)
}

// Delete removes a blood camp
func (h *BloodCampHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid camp ID")
		return
	}

	if err := h.campUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrCampNotFound:
			response.NotFound(w, "Camp not found")
		default:
			response.InternalServerError(w, "Failed to delete blood camp")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood camp deleted successfully", nil)
}
