package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a person admitted to a hospital. Exactly one clinical record is
// created at construction and lives for as long as the patient does.
type Patient struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Person
	Phone      string     `gorm:"type:varchar(50);not null" json:"phone"`
	Address    string     `gorm:"type:varchar(100);not null" json:"address"`
	HospitalID *uuid.UUID `gorm:"type:uuid;index" json:"hospital_id,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	ClinicalRecord *ClinicalRecord `gorm:"foreignKey:PatientID" json:"clinical_record,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// NewPatient validates the identity fields and attaches a fresh clinical
// record so the one-to-one invariant holds from the first moment.
func NewPatient(firstName, lastName, nationalID string, birthDate time.Time, bloodType BloodType, phone, address string) (*Patient, error) {
	person, err := newPerson(firstName, lastName, nationalID, birthDate, bloodType)
	if err != nil {
		return nil, err
	}
	if err := requireText("phone", phone); err != nil {
		return nil, err
	}
	if err := requireText("address", address); err != nil {
		return nil, err
	}
	patient := &Patient{
		Person:  person,
		Phone:   phone,
		Address: address,
	}
	patient.ClinicalRecord = newClinicalRecord(person.NationalID, time.Now())
	return patient, nil
}
