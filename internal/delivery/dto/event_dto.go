package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
	EventDate   string `json:"event_date" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Address     string `json:"address" validate:"omitempty"`
	Category    string `json:"category" validate:"required,oneof=BLOOD_CAMP MEDICAL_CAMP AWARENESS FUNDRAISER OTHER"`
}

type UpdateEventRequest struct {
	Title                  string `json:"title" validate:"omitempty"`
	Description            string `json:"description" validate:"omitempty"`
	RegisteredParticipants int    `json:"registered_participants" validate:"omitempty,min=0"`
	BloodUnitsCollected    int    `json:"blood_units_collected" validate:"omitempty,min=0"`
	Status                 string `json:"status" validate:"omitempty,oneof=UPCOMING ONGOING COMPLETED CANCELLED"`
}

// Response DTOs

type EventResponse struct {
	ID                     uuid.UUID `json:"id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description,omitempty"`
	EventDate              string    `json:"event_date"`
	StartTime              string    `json:"start_time"`
	EndTime                string    `json:"end_time"`
	Location               string    `json:"location"`
	Address                string    `json:"address,omitempty"`
	Category               string    `json:"category"`
	RegisteredParticipants int       `json:"registered_participants"`
	BloodUnitsCollected    int       `json:"blood_units_collected"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}
