package entity

// DonorFilter is a domain-level filter for querying donors.
// Used by the repository layer to avoid coupling with delivery DTOs.
type DonorFilter struct {
	BloodGroup string // Exact blood group match
	Gender     string // Exact gender match
	IsEligible *bool  // Filter on the cached eligibility column
	Search     string // ILIKE match across name, email and phone
	Page       int
	Limit      int
}
