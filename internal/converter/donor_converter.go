package converter

import (
	"time"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
)

// DonorToResponse converts a Donor entity to DonorResponse DTO.
// Eligibility is recomputed from the last donation date rather than read from
// the stored column, so a stale cache never leaks to callers.
func DonorToResponse(donor *entity.Donor) *dto.DonorResponse {
	if donor == nil {
		return nil
	}

	return &dto.DonorResponse{
		ID:               donor.ID,
		Name:             donor.Name,
		Email:            donor.Email,
		Phone:            donor.Phone,
		BloodGroup:       string(donor.BloodGroup),
		Gender:           string(donor.Gender),
		DateOfBirth:      donor.DateOfBirth.Format("2006-01-02"),
		Address:          donor.Address,
		City:             donor.City,
		LastDonationDate: donor.LastDonationDate,
		IsEligible:       entity.EligibleAt(donor.LastDonationDate, time.Now()),
		TotalDonations:   donor.TotalDonations,
		CreatedAt:        donor.CreatedAt,
		UpdatedAt:        donor.UpdatedAt,
	}
}

// DonorsToResponses converts a slice of Donor entities to DonorResponse DTOs
func DonorsToResponses(donors []entity.Donor) []dto.DonorResponse {
	responses := make([]dto.DonorResponse, len(donors))
	for i, donor := range donors {
		resp := DonorToResponse(&donor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AcceptanceToAcceptedDonor merges an acceptance's donor profile with the
// acceptance timestamp
func AcceptanceToAcceptedDonor(acceptance *entity.AlertAcceptance) *dto.AcceptedDonorResponse {
	if acceptance == nil {
		return nil
	}

	donor := DonorToResponse(&acceptance.Donor)
	if donor == nil {
		return nil
	}

	return &dto.AcceptedDonorResponse{
		DonorResponse: *donor,
		AcceptedAt:    acceptance.CreatedAt,
	}
}
