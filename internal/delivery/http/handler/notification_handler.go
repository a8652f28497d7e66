package handler

import (
	"encoding/json"
	"net/http"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/delivery/http/middleware"
	"lifelink-api/internal/usecase"
	"lifelink-api/pkg/response"
	"lifelink-api/pkg/validator"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

// RegisterToken stores an FCM device token for the caller
// @Summary Register device token
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterTokenRequest true "Register Token Request"
// @Success 200 {object} response.Response
// @Router /notifications/tokens [post]
func (h *NotificationHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RegisterTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.notificationUsecase.RegisterToken(r.Context(), userID, &req); err != nil {
		response.InternalServerError(w, "Failed to register device token")
		return
	}

	response.Success(w, http.StatusOK, "Device token registered successfully", nil)
}

// UnregisterToken deactivates one of the caller's device tokens
// @Summary Unregister device token
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UnregisterTokenRequest true "Unregister Token Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/tokens [delete]
func (h *NotificationHandler) UnregisterToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UnregisterTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.notificationUsecase.UnregisterToken(r.Context(), userID, &req); err != nil {
		switch err {
		case usecase.ErrDeviceTokenNotFound:
			response.NotFound(w, "Device token not found")
		default:
			response.InternalServerError(w, "Failed to unregister device token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Device token unregistered successfully", nil)
}

// Broadcast sends a push notification to an audience (admin only)
// @Summary Broadcast notification
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BroadcastRequest true "Broadcast Request"
// @Success 200 {object} response.Response
// @Router /notifications/broadcast [post]
func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req dto.BroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.notificationUsecase.Broadcast(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidAudienceUser:
			response.BadRequest(w, "Invalid user ID for user audience")
		default:
			response.InternalServerError(w, "Failed to send broadcast")
		}
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}
