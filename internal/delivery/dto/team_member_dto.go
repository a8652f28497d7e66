package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTeamMemberRequest struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Position    string `json:"position" validate:"omitempty"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
	ImageURL    string `json:"image_url" validate:"omitempty"`
	SortOrder   int    `json:"sort_order" validate:"omitempty,min=0"`
}

type UpdateTeamMemberRequest struct {
	Name        string `json:"name" validate:"omitempty"`
	Role        string `json:"role" validate:"omitempty"`
	Position    string `json:"position" validate:"omitempty"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
	ImageURL    string `json:"image_url" validate:"omitempty"`
	SortOrder   *int   `json:"sort_order" validate:"omitempty,min=0"`
}

// Response DTOs

type TeamMemberResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Position    string    `json:"position,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TeamMemberListResponse struct {
	Members []TeamMemberResponse `json:"members"`
	Total   int                  `json:"total"`
}
