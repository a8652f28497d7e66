package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodGroup is the closed 8-value blood group enum
type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A_POSITIVE"
	BloodGroupANegative  BloodGroup = "A_NEGATIVE"
	BloodGroupBPositive  BloodGroup = "B_POSITIVE"
	BloodGroupBNegative  BloodGroup = "B_NEGATIVE"
	BloodGroupABPositive BloodGroup = "AB_POSITIVE"
	BloodGroupABNegative BloodGroup = "AB_NEGATIVE"
	BloodGroupOPositive  BloodGroup = "O_POSITIVE"
	BloodGroupONegative  BloodGroup = "O_NEGATIVE"
)

// Gender constants
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// EligibilityCooldownMonths is the mandatory gap between two donations.
const EligibilityCooldownMonths = 3

// Donor represents a registered blood donor.
// IsEligible is a cache of EligibleAt(LastDonationDate, now) — read paths
// recompute it instead of trusting the stored value.
type Donor struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	Email            string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Phone            string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	BloodGroup       BloodGroup `gorm:"type:varchar(15);not null;index" json:"blood_group"`
	Gender           Gender     `gorm:"type:varchar(10);not null" json:"gender"`
	DateOfBirth      time.Time  `gorm:"type:date;not null" json:"date_of_birth"`
	Address          string     `gorm:"type:text" json:"address,omitempty"`
	City             string     `gorm:"type:varchar(100);index" json:"city,omitempty"`
	LastDonationDate *time.Time `gorm:"index" json:"last_donation_date,omitempty"`
	IsEligible       bool       `gorm:"not null;default:true;index" json:"is_eligible"`
	TotalDonations   int        `gorm:"not null;default:0" json:"total_donations"`
	IsActive         *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Acceptances []AlertAcceptance `gorm:"foreignKey:DonorID" json:"acceptances,omitempty"`
}

func (Donor) TableName() string {
	return "donors"
}

// EligibleAt decides donation eligibility from the last donation timestamp.
// A donor who never donated is eligible. Otherwise the last donation must be
// at least 3 calendar months before now (boundary inclusive). Month
// subtraction follows time.AddDate normalization, so e.g. May 31 minus 3
// months rolls over past the end of February.
func EligibleAt(lastDonationDate *time.Time, now time.Time) bool {
	if lastDonationDate == nil {
		return true
	}
	threshold := now.AddDate(0, -EligibilityCooldownMonths, 0)
	return !lastDonationDate.After(threshold)
}

// RecalculateEligibility refreshes the cached IsEligible flag
func (d *Donor) RecalculateEligibility(now time.Time) {
	d.IsEligible = EligibleAt(d.LastDonationDate, now)
}

// RecordDonation applies a donation event to the donor
func (d *Donor) RecordDonation(donationDate time.Time, now time.Time) {
	d.LastDonationDate = &donationDate
	d.TotalDonations++
	d.RecalculateEligibility(now)
}
