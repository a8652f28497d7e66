package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterDonorRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"required,min=10,max=15"`
	Password    string `json:"password" validate:"required,min=8"`
	BloodGroup  string `json:"blood_group" validate:"required,oneof=A_POSITIVE A_NEGATIVE B_POSITIVE B_NEGATIVE AB_POSITIVE AB_NEGATIVE O_POSITIVE O_NEGATIVE"`
	Gender      string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Address     string `json:"address" validate:"omitempty"`
	City        string `json:"city" validate:"omitempty"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	DonorID   *uuid.UUID `json:"donor_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
}

type RegisterDonorResponse struct {
	Tokens  TokenResponse  `json:"tokens"`
	Donor   *DonorResponse `json:"donor"`
	Message string         `json:"message"`
}
