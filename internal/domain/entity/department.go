package entity

import (
	"time"

	"github.com/google/uuid"
)

// Department groups the physicians and rooms of one specialty inside a
// hospital. Ownership is carried by the HospitalID column; a department can
// never appear under two hospitals.
type Department struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string     `gorm:"type:varchar(80);not null" json:"name"`
	Specialty  Specialty  `gorm:"type:varchar(50);not null" json:"specialty"`
	HospitalID *uuid.UUID `gorm:"type:uuid;index" json:"hospital_id,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Physicians []Physician `gorm:"foreignKey:DepartmentID" json:"physicians,omitempty"`
	Rooms      []Room      `gorm:"foreignKey:DepartmentID" json:"rooms,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}

func NewDepartment(name string, specialty Specialty) (*Department, error) {
	if err := requireText("name", name); err != nil {
		return nil, err
	}
	if !specialties[specialty] {
		return nil, newValidationError("specialty", "unknown specialty")
	}
	return &Department{Name: name, Specialty: specialty}, nil
}
