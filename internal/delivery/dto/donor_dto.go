package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDonorRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"required,min=10,max=15"`
	BloodGroup  string `json:"blood_group" validate:"required,oneof=A_POSITIVE A_NEGATIVE B_POSITIVE B_NEGATIVE AB_POSITIVE AB_NEGATIVE O_POSITIVE O_NEGATIVE"`
	Gender      string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Address     string `json:"address" validate:"omitempty"`
	City        string `json:"city" validate:"omitempty"`
}

type UpdateDonorRequest struct {
	Name       string `json:"name" validate:"omitempty"`
	Email      string `json:"email" validate:"omitempty,email"`
	BloodGroup string `json:"blood_group" validate:"omitempty,oneof=A_POSITIVE A_NEGATIVE B_POSITIVE B_NEGATIVE AB_POSITIVE AB_NEGATIVE O_POSITIVE O_NEGATIVE"`
	Address    string `json:"address" validate:"omitempty"`
	City       string `json:"city" validate:"omitempty"`
}

type UpdateLastDonationRequest struct {
	LastDonationDate string `json:"last_donation_date" validate:"required"`
}

type ListDonorsQuery struct {
	BloodGroup string `json:"blood_group"`
	Gender     string `json:"gender"`
	IsEligible string `json:"is_eligible"`
	Search     string `json:"search"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

// Response DTOs

type DonorResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email,omitempty"`
	Phone            string     `json:"phone"`
	BloodGroup       string     `json:"blood_group"`
	Gender           string     `json:"gender"`
	DateOfBirth      string     `json:"date_of_birth"`
	Address          string     `json:"address,omitempty"`
	City             string     `json:"city,omitempty"`
	LastDonationDate *time.Time `json:"last_donation_date,omitempty"`
	IsEligible       bool       `json:"is_eligible"`
	TotalDonations   int        `json:"total_donations"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type DonorListResponse struct {
	Donors []DonorResponse `json:"donors"`
	Total  int64           `json:"total"`
}

type RefreshEligibilityResponse struct {
	Updated int `json:"updated"`
}

// AcceptedDonorResponse merges a donor profile with the acceptance timestamp
type AcceptedDonorResponse struct {
	DonorResponse
	AcceptedAt time.Time `json:"accepted_at"`
}
