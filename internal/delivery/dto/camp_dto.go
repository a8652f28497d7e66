package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBloodCampRequest struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"omitempty"`
	CampDate         string `json:"camp_date" validate:"required"`
	StartTime        string `json:"start_time" validate:"required"`
	EndTime          string `json:"end_time" validate:"required"`
	Location         string `json:"location" validate:"required"`
	Address          string `json:"address" validate:"required"`
	TargetUnits      int    `json:"target_units" validate:"omitempty,min=0"`
	ContactPerson    string `json:"contact_person" validate:"omitempty"`
	ContactPhone     string `json:"contact_phone" validate:"omitempty"`
	RegistrationLink string `json:"registration_link" validate:"omitempty"`
}

type UpdateBloodCampRequest struct {
	Title          string `json:"title" validate:"omitempty"`
	Description    string `json:"description" validate:"omitempty"`
	TargetUnits    int    `json:"target_units" validate:"omitempty,min=0"`
	CollectedUnits int    `json:"collected_units" validate:"omitempty,min=0"`
	Status         string `json:"status" validate:"omitempty,oneof=UPCOMING ONGOING COMPLETED CANCELLED"`
	ContactPerson  string `json:"contact_person" validate:"omitempty"`
	ContactPhone   string `json:"contact_phone" validate:"omitempty"`
}

type CreateMedicalCampRequest struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"omitempty"`
	CampDate         string `json:"camp_date" validate:"required"`
	StartTime        string `json:"start_time" validate:"required"`
	EndTime          string `json:"end_time" validate:"required"`
	Location         string `json:"location" validate:"required"`
	Address          string `json:"address" validate:"required"`
	Specialties      string `json:"specialties" validate:"omitempty"`
	ExpectedPatients int    `json:"expected_patients" validate:"omitempty,min=0"`
	EstimatedBudget  string `json:"estimated_budget" validate:"omitempty"`
	ContactPerson    string `json:"contact_person" validate:"omitempty"`
	ContactPhone     string `json:"contact_phone" validate:"omitempty"`
}

type UpdateMedicalCampRequest struct {
	Title            string `json:"title" validate:"omitempty"`
	Description      string `json:"description" validate:"omitempty"`
	ExpectedPatients int    `json:"expected_patients" validate:"omitempty,min=0"`
	PatientsServed   int    `json:"patients_served" validate:"omitempty,min=0"`
	EstimatedBudget  string `json:"estimated_budget" validate:"omitempty"`
	Status           string `json:"status" validate:"omitempty,oneof=UPCOMING ONGOING COMPLETED CANCELLED"`
}

// Response DTOs

type BloodCampResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	CampDate         string    `json:"camp_date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Location         string    `json:"location"`
	Address          string    `json:"address"`
	TargetUnits      int       `json:"target_units"`
	CollectedUnits   int       `json:"collected_units"`
	Status           string    `json:"status"`
	ContactPerson    string    `json:"contact_person,omitempty"`
	ContactPhone     string    `json:"contact_phone,omitempty"`
	RegistrationLink string    `json:"registration_link,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type MedicalCampResponse struct {
	ID               uuid.UUID       `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	CampDate         string          `json:"camp_date"`
	StartTime        string          `json:"start_time"`
	EndTime          string          `json:"end_time"`
	Location         string          `json:"location"`
	Address          string          `json:"address"`
	Specialties      string          `json:"specialties,omitempty"`
	ExpectedPatients int             `json:"expected_patients"`
	PatientsServed   int             `json:"patients_served"`
	EstimatedBudget  decimal.Decimal `json:"estimated_budget"`
	Status           string          `json:"status"`
	ContactPerson    string          `json:"contact_person,omitempty"`
	ContactPhone     string          `json:"contact_phone,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type BloodCampListResponse struct {
	Camps []BloodCampResponse `json:"camps"`
	Total int                 `json:"total"`
}

type MedicalCampListResponse struct {
	Camps []MedicalCampResponse `json:"camps"`
	Total int                   `json:"total"`
}
