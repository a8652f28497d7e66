package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAlertRequest struct {
	Title           string `json:"title" validate:"required"`
	Message         string `json:"message" validate:"required"`
	HospitalName    string `json:"hospital_name" validate:"required"`
	HospitalAddress string `json:"hospital_address" validate:"required"`
	ContactPerson   string `json:"contact_person" validate:"required"`
	ContactPhone    string `json:"contact_phone" validate:"required"`
	BloodGroup      string `json:"blood_group" validate:"required,oneof=A_POSITIVE A_NEGATIVE B_POSITIVE B_NEGATIVE AB_POSITIVE AB_NEGATIVE O_POSITIVE O_NEGATIVE"`
	UnitsRequired   int    `json:"units_required" validate:"required,min=1"`
	Urgency         string `json:"urgency" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	ExpiresAt       string `json:"expires_at" validate:"omitempty"`
	Notes           string `json:"notes" validate:"omitempty"`
}

type UpdateAlertRequest struct {
	Title         string `json:"title" validate:"omitempty"`
	Message       string `json:"message" validate:"omitempty"`
	ContactPerson string `json:"contact_person" validate:"omitempty"`
	ContactPhone  string `json:"contact_phone" validate:"omitempty"`
	UnitsRequired int    `json:"units_required" validate:"omitempty,min=1"`
	Urgency       string `json:"urgency" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Notes         string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AlertResponse struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Message             string    `json:"message"`
	HospitalName        string    `json:"hospital_name"`
	HospitalAddress     string    `json:"hospital_address"`
	ContactPerson       string    `json:"contact_person"`
	ContactPhone        string    `json:"contact_phone"`
	BloodGroup          string    `json:"blood_group"`
	UnitsRequired       int       `json:"units_required"`
	Urgency             string    `json:"urgency"`
	Status              string    `json:"status"`
	Notes               string    `json:"notes,omitempty"`
	ExpiresAt           time.Time `json:"expires_at"`
	CreatedBy           uuid.UUID `json:"created_by"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	AcceptedDonorsCount int64     `json:"accepted_donors_count"`
	HasAccepted         *bool     `json:"has_accepted,omitempty"`
}

type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Total  int             `json:"total"`
}

type AcceptAlertResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AcceptedDonorListResponse struct {
	Donors []AcceptedDonorResponse `json:"donors"`
	Total  int                     `json:"total"`
}
