package handler

import (
	"encoding/json"
	"net/http"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/usecase"
	"lifelink-api/pkg/response"
	"lifelink-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TeamMemberHandler struct {
	memberUsecase usecase.TeamMemberUsecase
	validator     *validator.CustomValidator
}

func NewTeamMemberHandler(memberUsecase usecase.TeamMemberUsecase, validator *validator.CustomValidator) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberUsecase: memberUsecase,
		validator:     validator,
	}
}

// Create adds a team member
func (h *TeamMemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.memberUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTeamMemberExists:
			response.Conflict(w, "Team member with this name already exists")
		default:
			response.InternalServerError(w, "Failed to create team member")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Team member created successfully", member)
}

// List returns the active team roster
func (h *TeamMemberHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.memberUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list team members")
		return
	}

	response.Success(w, http.StatusOK, "Team members retrieved successfully", result)
}

// Get returns one team member by ID
func (h *TeamMemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid team member ID")
		return
	}

	member, err := h.memberUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTeamMemberNotFound:
			response.NotFound(w, "Team member not found")
		default:
			response.InternalServerError(w, "Failed to get team member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Team member retrieved successfully", member)
}

// Update modifies a team member
func (h *TeamMemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid team member ID")
		return
	}

	var req dto.UpdateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.memberUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTeamMemberNotFound:
			response.NotFound(w, "Team member not found")
		case usecase.ErrTeamMemberExists:
			response.Conflict(w, "Team member with this name already exists")
		default:
			response.InternalServerError(w, "Failed to update team member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Team member updated successfully", member)
}

// Delete deactivates a team member
func (h *TeamMemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid team member ID")
		return
	}

	if err := h.memberUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTeamMemberNotFound:
			response.NotFound(w, "Team member not found")
		default:
			response.InternalServerError(w, "Failed to delete team member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Team member deleted successfully", nil)
}
