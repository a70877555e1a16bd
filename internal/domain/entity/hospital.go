package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hospital is the aggregate root: deleting one cascades through its
// departments, patients, and everything they transitively own.
type Hospital struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(80);not null" json:"name"`
	Address   string    `gorm:"type:varchar(150);not null" json:"address"`
	Phone     string    `gorm:"type:varchar(30);not null" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Departments []Department `gorm:"foreignKey:HospitalID" json:"departments,omitempty"`
	Patients    []Patient    `gorm:"foreignKey:HospitalID" json:"patients,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

func NewHospital(name, address, phone string) (*Hospital, error) {
	if err := requireText("name", name); err != nil {
		return nil, err
	}
	if err := requireText("address", address); err != nil {
		return nil, err
	}
	if err := requireText("phone", phone); err != nil {
		return nil, err
	}
	return &Hospital{Name: name, Address: address, Phone: phone}, nil
}
