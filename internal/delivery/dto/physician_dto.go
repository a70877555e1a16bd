package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPhysicianRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=50"`
	LastName      string `json:"last_name" validate:"required,max=50"`
	NationalID    string `json:"national_id" validate:"required"`
	BirthDate     string `json:"birth_date" validate:"required"`
	BloodType     string `json:"blood_type" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Specialty     string `json:"specialty" validate:"required"`
}

// Response DTOs

type PhysicianResponse struct {
	ID            uuid.UUID  `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	FullName      string     `json:"full_name"`
	NationalID    string     `json:"national_id"`
	BirthDate     string     `json:"birth_date"`
	BloodType     string     `json:"blood_type"`
	LicenseNumber string     `json:"license_number"`
	Specialty     string     `json:"specialty"`
	DepartmentID  *uuid.UUID `json:"department_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type PhysicianListResponse struct {
	Physicians []PhysicianResponse `json:"physicians"`
	Total      int                 `json:"total"`
}
