package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertAcceptance records a donor's one-time commitment to an alert.
// The composite unique index on (alert_id, donor_id) enforces at most one
// acceptance per donor per alert; rows are never updated or deleted.
type AlertAcceptance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AlertID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_alert_acceptances_alert_donor" json:"alert_id"`
	DonorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_alert_acceptances_alert_donor" json:"donor_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Alert Alert `gorm:"foreignKey:AlertID" json:"alert,omitempty"`
	Donor Donor `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}

func (AlertAcceptance) TableName() string {
	return "alert_acceptances"
}
