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

type EventHandler struct {
	eventUsecase usecase.EventUsecase
	validator    *validator.CustomValidator
}

func NewEventHandler(eventUsecase usecase.EventUsecase, validator *validator.CustomValidator) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
		validator:    validator,
	}
}

// Create registers a new NGO event
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	event, err := h.eventUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create event")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Event created successfully", event)
}

// List returns events, optionally filtered by category
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.eventUsecase.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		response.InternalServerError(w, "Failed to list events")
		return
	}

	response.Success(w, http.StatusOK, "Events retrieved successfully", result)
}

// ListUpcoming returns upcoming events ordered by date
func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	result, err := h.eventUsecase.ListUpcoming(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list upcoming events")
		return
	}

	response.Success(w, http.StatusOK, "Upcoming events retrieved successfully", result)
}

// Get returns one event by ID
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	event, err := h.eventUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrEventNotFound:
			response.NotFound(w, "Event not found")
		default:
			response.InternalServerError(w, "Failed to get event")
		}
		return
	}

	response.Success(w, http.StatusOK, "Event retrieved successfully", event)
}

// Update modifies an event
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	var req dto.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	event, err := h.eventUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrEventNotFound:
			response.NotFound(w, "Event not found")
		default:
			response.InternalServerError(w, "Failed to update event")
		}
		return
	}

	response.Success(w, http.StatusOK, "Event updated successfully", event)
}

// Delete removes an event
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	if err := h.eventUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrEventNotFound:
			response.NotFound(w, "Event not found")
		default:
			response.InternalServerError(w, "Failed to delete event")
		}
		return
	}

	response.Success(w, http.StatusOK, "Event deleted successfully", nil)
}
