package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MedicalCamp represents a free medical check-up camp organized by the NGO
type MedicalCamp struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title            string          `gorm:"type:varchar(255);not null" json:"title"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	CampDate         time.Time       `gorm:"type:date;not null;index" json:"camp_date"`
	StartTime        string          `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime          string          `gorm:"type:varchar(5);not null" json:"end_time"`
	Location         string          `gorm:"type:varchar(255);not null" json:"location"`
	Address          string          `gorm:"type:text;not null" json:"address"`
	Specialties      string          `gorm:"type:text" json:"specialties,omitempty"`
	ExpectedPatients int             `gorm:"not null;default:0" json:"expected_patients"`
	PatientsServed   int             `gorm:"not null;default:0" json:"patients_served"`
	EstimatedBudget  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"estimated_budget"`
	Status           CampStatus      `gorm:"type:varchar(10);not null;default:'UPCOMING';index" json:"status"`
	ContactPerson    string          `gorm:"type:varchar(255)" json:"contact_person,omitempty"`
	ContactPhone     string          `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	CreatedBy        uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicalCamp) TableName() string {
	return "medical_camps"
}
