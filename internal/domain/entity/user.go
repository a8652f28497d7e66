package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents a user role in the system
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleDonor      UserRole = "DONOR"
)

// User represents the centralized authentication table.
// Phone is the join key to the Donor profile for donor-role users.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Phone        string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'DONOR';index" json:"role"`
	IsActive     *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	DeviceTokens []DeviceToken `gorm:"foreignKey:UserID" json:"device_tokens,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin checks whether the user holds an administrative role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
