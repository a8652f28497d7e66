package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/delivery/http/middleware"
	"lifelink-api/internal/usecase"
	"lifelink-api/pkg/response"
	"lifelink-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DonorHandler struct {
	donorUsecase usecase.DonorUsecase
	validator    *validator.CustomValidator
}

func NewDonorHandler(donorUsecase usecase.DonorUsecase, validator *validator.CustomValidator) *DonorHandler {
	return &DonorHandler{
		donorUsecase: donorUsecase,
		validator:    validator,
	}
}

// List returns a filtered, paginated donor listing
// @Summary List donors
// @Tags Donors
// @Security BearerAuth
// @Produce json
// @Param blood_group query string false "Blood group filter"
// @Param is_eligible query string false "Eligibility filter (true/false)"
// @Param search query string false "Search across name, email, phone"
// @Success 200 {object} response.Response
// @Router /donors [get]
func (h *DonorHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	query := &dto.ListDonorsQuery{
		BloodGroup: q.Get("blood_group"),
		Gender:     q.Get("gender"),
		IsEligible: q.Get("is_eligible"),
		Search:     q.Get("search"),
		Page:       page,
		Limit:      limit,
	}

	result, err := h.donorUsecase.List(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to list donors")
		return
	}

	response.Success(w, http.StatusOK, "Donors retrieved successfully", result)
}

// Get returns a single donor by ID
// @Summary Get donor
// @Tags Donors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Donor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id} [get]
func (h *DonorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid donor ID")
		return
	}

	donor, err := h.donorUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		default:
			response.InternalServerError(w, "Failed to get donor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donor retrieved successfully", donor)
}

// Create registers a donor profile without an auth account (admin data entry)
// @Summary Create donor
// @Tags Donors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDonorRequest true "Create Donor Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /donors [post]
func (h *DonorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDonorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donor, err := h.donorUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPhoneAlreadyExists:
			response.Conflict(w, "Phone number already registered")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create donor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Donor created successfully", donor)
}

// Update modifies a donor profile
// @Summary Update donor
// @Tags Donors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Donor ID"
// @Param request body dto.UpdateDonorRequest true "Update Donor Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id} [put]
func (h *DonorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid donor ID")
		return
	}

	var req dto.UpdateDonorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donor, err := h.donorUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		default:
			response.InternalServerError(w, "Failed to update donor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donor updated successfully", donor)
}

// Delete soft-deletes a donor
// @Summary Deactivate donor
// @Tags Donors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Donor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id} [delete]
func (h *DonorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid donor ID")
		return
	}

	if err := h.donorUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		default:
			response.InternalServerError(w, "Failed to deactivate donor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donor deactivated successfully", nil)
}

// RecordDonation records a donation date against a donor (admin)
// @Summary Record donation
// @Tags Donors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Donor ID"
// @Param request body dto.UpdateLastDonationRequest true "Donation Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id}/donation [patch]
func (h *DonorHandler) RecordDonation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid donor ID")
		return
	}

	var req dto.UpdateLastDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donor, err := h.donorUsecase.RecordDonation(r.Context(), id, &req)
	if err != nil {
		h.writeDonationError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Donation recorded successfully", donor)
}

// RefreshEligibility triggers an on-demand eligibility sweep
// @Summary Refresh all donor eligibility flags
// @Tags Donors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /donors/refresh-eligibility [post]
func (h *DonorHandler) RefreshEligibility(w http.ResponseWriter, r *http.Request) {
	result, err := h.donorUsecase.RefreshAllEligibility(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to refresh eligibility")
		return
	}

	response.Success(w, http.StatusOK, "Eligibility refreshed successfully", result)
}

// MyProfile returns the calling donor's own profile
// @Summary Get my donor profile
// @Tags Donors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/me [get]
func (h *DonorHandler) MyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	donor, err := h.donorUsecase.GetMyProfile(r.Context(), userID, middleware.GetDonorIDFromContext(r.Context()))
	if err != nil {
		writeResolverError(w, err, "Failed to get donor profile")
		return
	}

	response.Success(w, http.StatusOK, "Donor profile retrieved successfully", donor)
}

// RecordMyDonation lets the calling donor self-report a donation
// @Summary Record my donation
// @Tags Donors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateLastDonationRequest true "Donation Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/me/donation [patch]
func (h *DonorHandler) RecordMyDonation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateLastDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donor, err := h.donorUsecase.RecordMyDonation(r.Context(), userID, middleware.GetDonorIDFromContext(r.Context()), &req)
	if err != nil {
		h.writeDonationError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Donation recorded successfully", donor)
}

func (h *DonorHandler) writeDonationError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrDonorNotFound:
		response.NotFound(w, "Donor not found")
	case usecase.ErrUserNotFound:
		response.NotFound(w, "User not found")
	case usecase.ErrUserPhoneMissing:
		response.NotFound(w, "User phone number not found")
	case usecase.ErrDonorProfileNotFound:
		response.NotFound(w, "Donor profile not found")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	case usecase.ErrFutureDonationDate:
		response.BadRequest(w, "Donation date cannot be in the future")
	default:
		response.InternalServerError(w, "Failed to record donation")
	}
}

// writeResolverError maps donor resolution failures to their HTTP responses.
// Shared by every donor-facing handler that goes through the resolver.
func writeResolverError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrUserNotFound:
		response.NotFound(w, "User not found")
	case usecase.ErrUserPhoneMissing:
		response.NotFound(w, "User phone number not found")
	case usecase.ErrDonorProfileNotFound:
		response.NotFound(w, "Donor profile not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
