package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=50"`
	LastName   string `json:"last_name" validate:"required,max=50"`
	NationalID string `json:"national_id" validate:"required"`
	BirthDate  string `json:"birth_date" validate:"required"`
	BloodType  string `json:"blood_type" validate:"required"`
	Phone      string `json:"phone" validate:"required,max=50"`
	Address    string `json:"address" validate:"required,max=100"`
}

// AddRecordEntryRequest deliberately has no required tag on Text: blank
// clinical entries are dropped silently, not rejected.
type AddRecordEntryRequest struct {
	Text string `json:"text"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID               `json:"id"`
	FirstName      string                  `json:"first_name"`
	LastName       string                  `json:"last_name"`
	FullName       string                  `json:"full_name"`
	NationalID     string                  `json:"national_id"`
	BirthDate      string                  `json:"birth_date"`
	BloodType      string                  `json:"blood_type"`
	Phone          string                  `json:"phone"`
	Address        string                  `json:"address"`
	HospitalID     *uuid.UUID              `json:"hospital_id,omitempty"`
	ClinicalRecord *ClinicalRecordResponse `json:"clinical_record,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

type ClinicalRecordResponse struct {
	ID           uuid.UUID `json:"id"`
	RecordNumber string    `json:"record_number"`
	PatientID    uuid.UUID `json:"patient_id"`
	Diagnoses    []string  `json:"diagnoses"`
	Treatments   []string  `json:"treatments"`
	Allergies    []string  `json:"allergies"`
	CreatedAt    time.Time `json:"created_at"`
}
