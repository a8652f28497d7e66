package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus represents the stored lifecycle state of an alert
type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "ACTIVE"
	AlertStatusResolved  AlertStatus = "RESOLVED"
	AlertStatusCancelled AlertStatus = "CANCELLED"
)

// AlertUrgency represents how urgent a blood request is
type AlertUrgency string

const (
	UrgencyLow      AlertUrgency = "LOW"
	UrgencyMedium   AlertUrgency = "MEDIUM"
	UrgencyHigh     AlertUrgency = "HIGH"
	UrgencyCritical AlertUrgency = "CRITICAL"
)

// DefaultAlertTTL is applied when an alert is created without an explicit expiry
const DefaultAlertTTL = 24 * time.Hour

// Alert represents an emergency blood-request broadcast.
// An alert is currently active iff Status == ACTIVE and ExpiresAt is in the
// future; expiry is evaluated at query time, not by a background transition.
type Alert struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title           string       `gorm:"type:varchar(255);not null" json:"title"`
	Message         string       `gorm:"type:text;not null" json:"message"`
	HospitalName    string       `gorm:"type:varchar(255);not null" json:"hospital_name"`
	HospitalAddress string       `gorm:"type:text;not null" json:"hospital_address"`
	ContactPerson   string       `gorm:"type:varchar(255);not null" json:"contact_person"`
	ContactPhone    string       `gorm:"type:varchar(20);not null" json:"contact_phone"`
	BloodGroup      BloodGroup   `gorm:"type:varchar(15);not null;index" json:"blood_group"`
	UnitsRequired   int          `gorm:"not null" json:"units_required"`
	Urgency         AlertUrgency `gorm:"type:varchar(10);not null" json:"urgency"`
	Status          AlertStatus  `gorm:"type:varchar(10);not null;default:'ACTIVE';index" json:"status"`
	Notes           string       `gorm:"type:text" json:"notes,omitempty"`
	ExpiresAt       time.Time    `gorm:"not null;index" json:"expires_at"`
	CreatedBy       uuid.UUID    `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt       time.Time    `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Acceptances []AlertAcceptance `gorm:"foreignKey:AlertID" json:"acceptances,omitempty"`
}

func (Alert) TableName() string {
	return "alerts"
}

// IsExpired reports whether the alert's expiry timestamp has passed
func (a *Alert) IsExpired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

// IsCurrentlyActive reports whether the alert should appear in active listings
func (a *Alert) IsCurrentlyActive(now time.Time) bool {
	return a.Status == AlertStatusActive && !a.IsExpired(now)
}

// IsPast reports whether the alert belongs to the past partition.
// Active/past are complementary: every alert satisfies exactly one.
func (a *Alert) IsPast(now time.Time) bool {
	return !a.IsCurrentlyActive(now)
}

// AlertWithCount is the scan target for alert listings annotated with the
// number of donors who accepted the alert.
type AlertWithCount struct {
	Alert
	AcceptedDonorsCount int64 `json:"accepted_donors_count"`
}
