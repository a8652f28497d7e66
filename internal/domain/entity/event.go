package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventCategory classifies NGO events
type EventCategory string

const (
	EventCategoryBloodCamp   EventCategory = "BLOOD_CAMP"
	EventCategoryMedicalCamp EventCategory = "MEDICAL_CAMP"
	EventCategoryAwareness   EventCategory = "AWARENESS"
	EventCategoryFundraiser  EventCategory = "FUNDRAISER"
	EventCategoryOther       EventCategory = "OTHER"
)

// Event represents a general NGO activity entry
type Event struct {
	ID                     uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title                  string        `gorm:"type:varchar(255);not null" json:"title"`
	Description            string        `gorm:"type:text" json:"description,omitempty"`
	EventDate              time.Time     `gorm:"type:date;not null;index" json:"event_date"`
	StartTime              string        `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime                string        `gorm:"type:varchar(5);not null" json:"end_time"`
	Location               string        `gorm:"type:varchar(255);not null" json:"location"`
	Address                string        `gorm:"type:text" json:"address,omitempty"`
	Category               EventCategory `gorm:"type:varchar(15);not null;index" json:"category"`
	RegisteredParticipants int           `gorm:"not null;default:0" json:"registered_participants"`
	BloodUnitsCollected    int           `gorm:"not null;default:0" json:"blood_units_collected"`
	Status                 CampStatus    `gorm:"type:varchar(10);not null;default:'UPCOMING';index" json:"status"`
	CreatedBy              uuid.UUID     `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt              time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
