package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var licensePattern = regexp.MustCompile(`^[A-Z]{2}-\d{4,6}$`)

// Physician is a person with a validated medical license and a specialty.
// Its appointment collection is a read projection maintained by the
// scheduling engine.
type Physician struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Person
	LicenseNumber string     `gorm:"type:varchar(15);not null;uniqueIndex" json:"license_number"`
	Specialty     Specialty  `gorm:"type:varchar(50);not null" json:"specialty"`
	DepartmentID  *uuid.UUID `gorm:"type:uuid;index" json:"department_id,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PhysicianID" json:"appointments,omitempty"`
}

func (Physician) TableName() string {
	return "physicians"
}

func NewPhysician(firstName, lastName, nationalID string, birthDate time.Time, bloodType BloodType, licenseNumber string, specialty Specialty) (*Physician, error) {
	person, err := newPerson(firstName, lastName, nationalID, birthDate, bloodType)
	if err != nil {
		return nil, err
	}
	if !licensePattern.MatchString(licenseNumber) {
		return nil, newValidationError("license_number", "must match the XX-0000 to XX-000000 format")
	}
	if !specialties[specialty] {
		return nil, newValidationError("specialty", "unknown specialty")
	}
	return &Physician{
		Person:        person,
		LicenseNumber: licenseNumber,
		Specialty:     specialty,
	}, nil
}
