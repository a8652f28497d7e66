package handler

import (
	"net/http"

	"lifelink-api/internal/usecase"
	"lifelink-api/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// Overview returns headline counts for the admin dashboard
// @Summary Dashboard overview
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardUsecase.Overview(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard overview")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard overview retrieved successfully", overview)
}
