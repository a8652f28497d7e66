package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken stores an FCM registration token for a user's device
type DeviceToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"type:text;not null" json:"token"`
	DeviceID  string    `gorm:"type:varchar(255)" json:"device_id,omitempty"`
	Platform  string    `gorm:"type:varchar(20);default:'mobile'" json:"platform"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DeviceToken) TableName() string {
	return "device_tokens"
}
