package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PhysicianID:     appointment.PhysicianID,
		RoomID:          appointment.RoomID,
		StartTime:       appointment.StartTime,
		EndTime:         appointment.EndTime(),
		DurationMinutes: appointment.DurationMinutes,
		Cost:            appointment.Cost.StringFixed(2),
		Status:          string(appointment.Status),
		Observations:    appointment.Observations,
		CreatedAt:       appointment.CreatedAt,
	}

	// Include related entities when preloaded
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}
	if appointment.Physician.ID != uuid.Nil {
		response.Physician = PhysicianToResponse(&appointment.Physician)
	}
	if appointment.Room.ID != uuid.Nil {
		response.Room = RoomToResponse(&appointment.Room)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
