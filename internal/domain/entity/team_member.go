package entity

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember represents a member shown on the NGO team page, ordered by SortOrder
type TeamMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Role        string    `gorm:"type:varchar(100);not null" json:"role"`
	Position    string    `gorm:"type:varchar(100)" json:"position,omitempty"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"type:text" json:"image_url,omitempty"`
	SortOrder   int       `gorm:"not null;default:0;index" json:"sort_order"`
	IsActive    *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
