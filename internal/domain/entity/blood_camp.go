package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampStatus represents the lifecycle of a camp or event
type CampStatus string

const (
	CampStatusUpcoming  CampStatus = "UPCOMING"
	CampStatusOngoing   CampStatus = "ONGOING"
	CampStatusCompleted CampStatus = "COMPLETED"
	CampStatusCancelled CampStatus = "CANCELLED"
)

// BloodCamp represents a scheduled blood donation drive
type BloodCamp struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title            string     `gorm:"type:varchar(255);not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description,omitempty"`
	CampDate         time.Time  `gorm:"type:date;not null;index" json:"camp_date"`
	StartTime        string     `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime          string     `gorm:"type:varchar(5);not null" json:"end_time"`
	Location         string     `gorm:"type:varchar(255);not null" json:"location"`
	Address          string     `gorm:"type:text;not null" json:"address"`
	TargetUnits      int        `gorm:"not null;default:0" json:"target_units"`
	CollectedUnits   int        `gorm:"not null;default:0" json:"collected_units"`
	Status           CampStatus `gorm:"type:varchar(10);not null;default:'UPCOMING';index" json:"status"`
	ContactPerson    string     `gorm:"type:varchar(255)" json:"contact_person,omitempty"`
	ContactPhone     string     `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	RegistrationLink string     `gorm:"type:text" json:"registration_link,omitempty"`
	CreatedBy        uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BloodCamp) TableName() string {
	return "blood_camps"
}
