package converter

import (
	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
)

// AlertToResponse converts an Alert entity to AlertResponse DTO
func AlertToResponse(alert *entity.Alert) *dto.AlertResponse {
	if alert == nil {
		return nil
	}

	return &dto.AlertResponse{
		ID:              alert.ID,
		Title:           alert.Title,
		Message:         alert.Message,
		HospitalName:    alert.HospitalName,
		HospitalAddress: alert.HospitalAddress,
		ContactPerson:   alert.ContactPerson,
		ContactPhone:    alert.ContactPhone,
		BloodGroup:      string(alert.BloodGroup),
		UnitsRequired:   alert.UnitsRequired,
		Urgency:         string(alert.Urgency),
		Status:          string(alert.Status),
		Notes:           alert.Notes,
		ExpiresAt:       alert.ExpiresAt,
		CreatedBy:       alert.CreatedBy,
		CreatedAt:       alert.CreatedAt,
		UpdatedAt:       alert.UpdatedAt,
	}
}

// AlertWithCountToResponse includes the accepted-donor annotation
func AlertWithCountToResponse(alert *entity.AlertWithCount) *dto.AlertResponse {
	if alert == nil {
		return nil
	}

	response := AlertToResponse(&alert.Alert)
	response.AcceptedDonorsCount = alert.AcceptedDonorsCount
	return response
}

// AlertsWithCountToResponses converts a slice of annotated alerts
func AlertsWithCountToResponses(alerts []entity.AlertWithCount) []dto.AlertResponse {
	responses := make([]dto.AlertResponse, len(alerts))
	for i, alert := range alerts {
		resp := AlertWithCountToResponse(&alert)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
