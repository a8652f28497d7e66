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

type MedicalCampHandler struct {
	campUsecase usecase.MedicalCampUsecase
	validator   *validator.CustomValidator
}

func NewMedicalCampHandler(campUsecase usecase.MedicalCampUsecase, validator *validator.CustomValidator) *MedicalCampHandler {
	return &MedicalCampHandler{
		campUsecase: campUsecase,
		validator:   validator,
	}
}

// Create schedules a new medical camp
func (h *MedicalCampHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicalCampRequest
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
		case usecase.ErrInvalidBudget:
			response.BadRequest(w, "Invalid budget amount")
		default:
			response.InternalServerError(w, "Failed to create medical camp")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical camp created successfully", camp)
}

// List returns medical camps, optionally filtered by status
func (h *MedicalCampHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.campUsecase.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.InternalServerError(w, "Failed to list medical camps")
		return
	}

	response.Success(w, http.StatusOK, "Medical camps retrieved successfully", result)
}

// Get returns one medical camp by ID
func (h *MedicalCampHandler) Get(w http.ResponseWriter, r *http.Request) {
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
			response.InternalServerError(w, "Failed to get medical camp")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical camp retrieved successfully", camp)
}

// Update modifies a medical camp
func (h *MedicalCampHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid camp ID")
		return
	}

	var req dto.UpdateMedicalCampRequest
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
		case usecase.ErrInvalidBudget:
			response.BadRequest(w, "Invalid budget amount")
		default:
			response.InternalServerError(w, "Failed to update medical camp")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical camp updated successfully", camp)
}

// Delete removes a medical camp
func (h *MedicalCampHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
			response.InternalServerError(w, "Failed to delete medical camp")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical camp deleted successfully", nil)
}
