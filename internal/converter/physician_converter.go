package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

const birthDateLayout = "2006-01-02"

// PhysicianToResponse converts a Physician entity to PhysicianResponse DTO
func PhysicianToResponse(physician *entity.Physician) *dto.PhysicianResponse {
	if physician == nil {
		return nil
	}

	return &dto.PhysicianResponse{
		ID:            physician.ID,
		FirstName:     physician.FirstName,
		LastName:      physician.LastName,
		FullName:      physician.FullName(),
		NationalID:    physician.NationalID,
		BirthDate:     physician.BirthDate.Format(birthDateLayout),
		BloodType:     string(physician.BloodType),
		LicenseNumber: physician.LicenseNumber,
		Specialty:     string(physician.Specialty),
		DepartmentID:  physician.DepartmentID,
		CreatedAt:     physician.CreatedAt,
	}
}

// PhysiciansToResponses converts a slice of Physician entities to response DTOs
func PhysiciansToResponses(physicians []entity.Physician) []dto.PhysicianResponse {
	responses := make([]dto.PhysicianResponse, len(physicians))
	for i := range physicians {
		resp := PhysicianToResponse(&physicians[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
