package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	response := &dto.HospitalResponse{
		ID:        hospital.ID,
		Name:      hospital.Name,
		Address:   hospital.Address,
		Phone:     hospital.Phone,
		CreatedAt: hospital.CreatedAt,
	}

	for i := range hospital.Departments {
		resp := DepartmentToResponse(&hospital.Departments[i])
		if resp != nil {
			response.Departments = append(response.Departments, *resp)
		}
	}
	for i := range hospital.Patients {
		resp := PatientToResponse(&hospital.Patients[i])
		if resp != nil {
			response.Patients = append(response.Patients, *resp)
		}
	}

	return response
}

// HospitalsToResponses converts a slice of Hospital entities to response DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		resp := HospitalToResponse(&hospitals[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// DepartmentToResponse converts a Department entity to DepartmentResponse DTO
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	response := &dto.DepartmentResponse{
		ID:         department.ID,
		Name:       department.Name,
		Specialty:  string(department.Specialty),
		HospitalID: department.HospitalID,
		CreatedAt:  department.CreatedAt,
	}

	for i := range department.Physicians {
		resp := PhysicianToResponse(&department.Physicians[i])
		if resp != nil {
			response.Physicians = append(response.Physicians, *resp)
		}
	}
	for i := range department.Rooms {
		resp := RoomToResponse(&department.Rooms[i])
		if resp != nil {
			response.Rooms = append(response.Rooms, *resp)
		}
	}

	return response
}

// RoomToResponse converts a Room entity to RoomResponse DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	return &dto.RoomResponse{
		ID:           room.ID,
		Number:       room.Number,
		Type:         room.Type,
		DepartmentID: room.DepartmentID,
		CreatedAt:    room.CreatedAt,
	}
}
