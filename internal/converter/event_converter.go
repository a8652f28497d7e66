package converter

import (
	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
)

// EventToResponse converts an Event entity to EventResponse DTO
func EventToResponse(event *entity.Event) *dto.EventResponse {
	if event == nil {
		return nil
	}

	return &dto.EventResponse{
		ID:                     event.ID,
		Title:                  event.Title,
		Description:            event.Description,
		EventDate:              event.EventDate.Format("2006-01-02"),
		StartTime:              event.StartTime,
		EndTime:                event.EndTime,
		Location:               event.Location,
		Address:                event.Address,
		Category:               string(event.Category),
		RegisteredParticipants: event.RegisteredParticipants,
		BloodUnitsCollected:    event.BloodUnitsCollected,
		Status:                 string(event.Status),
		CreatedAt:              event.CreatedAt,
		UpdatedAt:              event.UpdatedAt,
	}
}

// EventsToResponses converts a slice of Event entities
func EventsToResponses(events []entity.Event) []dto.EventResponse {
	responses := make([]dto.EventResponse, len(events))
	for i, event := range events {
		resp := EventToResponse(&event)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
