package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateHospitalRequest struct {
	Name    string `json:"name" validate:"required,max=80"`
	Address string `json:"address" validate:"required,max=150"`
	Phone   string `json:"phone" validate:"required,max=30"`
}

// Response DTOs

type HospitalResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Address     string               `json:"address"`
	Phone       string               `json:"phone"`
	Departments []DepartmentResponse `json:"departments,omitempty"`
	Patients    []PatientResponse    `json:"patients,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
