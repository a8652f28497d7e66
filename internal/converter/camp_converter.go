package converter

import (
	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
)

// BloodCampToResponse converts a BloodCamp entity to BloodCampResponse DTO
func BloodCampToResponse(camp *entity.BloodCamp) *dto.BloodCampResponse {
	if camp == nil {
		return nil
	}

	return &dto.BloodCampResponse{
		ID:               camp.ID,
		Title:            camp.Title,
		Description:      camp.Description,
		CampDate:         camp.CampDate.Format("2006-01-02"),
		StartTime:        camp.StartTime,
		EndTime:          camp.EndTime,
		Location:         camp.Location,
		Address:          camp.Address,
		TargetUnits:      camp.TargetUnits,
		CollectedUnits:   camp.CollectedUnits,
		Status:           string(camp.Status),
		ContactPerson:    camp.ContactPerson,
		ContactPhone:     camp.ContactPhone,
		RegistrationLink: camp.RegistrationLink,
		CreatedAt:        camp.CreatedAt,
		UpdatedAt:        camp.UpdatedAt,
	}
}

// BloodCampsToResponses converts a slice of BloodCamp entities
func BloodCampsToResponses(camps []entity.BloodCamp) []dto.BloodCampResponse {
	responses := make([]dto.BloodCampResponse, len(camps))
	for i, camp := range camps {
		resp := BloodCampToResponse(&camp)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// MedicalCampToResponse converts a MedicalCamp entity to MedicalCampResponse DTO
func MedicalCampToResponse(camp *entity.MedicalCamp) *dto.MedicalCampResponse {
	if camp == nil {
		return nil
	}

	return &dto.MedicalCampResponse{
		ID:               camp.ID,
		Title:            camp.Title,
		Description:      camp.Description,
		CampDate:         camp.CampDate.Format("2006-01-02"),
		StartTime:        camp.StartTime,
		EndTime:          camp.EndTime,
		Location:         camp.Location,
		Address:          camp.Address,
		Specialties:      camp.Specialties,
		ExpectedPatients: camp.ExpectedPatients,
		PatientsServed:   camp.PatientsServed,
		EstimatedBudget:  camp.EstimatedBudget,
		Status:           string(camp.Status),
		ContactPerson:    camp.ContactPerson,
		ContactPhone:     camp.ContactPhone,
		CreatedAt:        camp.CreatedAt,
		UpdatedAt:        camp.UpdatedAt,
	}
}

// MedicalCampsToResponses converts a slice of MedicalCamp entities
func MedicalCampsToResponses(camps []entity.MedicalCamp) []dto.MedicalCampResponse {
	responses := make([]dto.MedicalCampResponse, len(camps))
	for i, camp := range camps {
		resp := MedicalCampToResponse(&camp)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
