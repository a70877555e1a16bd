package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ScheduleAppointmentRequest struct {
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	PhysicianID uuid.UUID `json:"physician_id" validate:"required"`
	RoomID      uuid.UUID `json:"room_id" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	// DurationMinutes falls back to the configured default when omitted.
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	Cost            string `json:"cost" validate:"required"`
}

type CompleteAppointmentRequest struct {
	Observations string `json:"observations"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID          `json:"id"`
	PatientID       uuid.UUID          `json:"patient_id"`
	PhysicianID     uuid.UUID          `json:"physician_id"`
	RoomID          uuid.UUID          `json:"room_id"`
	StartTime       time.Time          `json:"start_time"`
	EndTime         time.Time          `json:"end_time"`
	DurationMinutes int                `json:"duration_minutes"`
	Cost            string             `json:"cost"`
	Status          string             `json:"status"`
	Observations    string             `json:"observations,omitempty"`
	Patient         *PatientResponse   `json:"patient,omitempty"`
	Physician       *PhysicianResponse `json:"physician,omitempty"`
	Room            *RoomResponse      `json:"room,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
