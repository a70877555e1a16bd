package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDepartmentRequest struct {
	Name      string `json:"name" validate:"required,max=80"`
	Specialty string `json:"specialty" validate:"required"`
}

type CreateRoomRequest struct {
	Number string `json:"number" validate:"required,max=20"`
	Type   string `json:"type" validate:"required,max=50"`
}

// Response DTOs

type DepartmentResponse struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	Specialty  string              `json:"specialty"`
	HospitalID *uuid.UUID          `json:"hospital_id,omitempty"`
	Physicians []PhysicianResponse `json:"physicians,omitempty"`
	Rooms      []RoomResponse      `json:"rooms,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	Number       string    `json:"number"`
	Type         string    `json:"type"`
	DepartmentID uuid.UUID `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
}
