package entity

import (
	"time"

	"github.com/google/uuid"
)

// Room belongs to exactly one department. Its appointment collection is a
// read projection maintained by the scheduling engine.
type Room struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Number       string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"number"`
	Type         string    `gorm:"type:varchar(50);not null" json:"type"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"department_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:RoomID" json:"appointments,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

func NewRoom(number, roomType string, departmentID uuid.UUID) (*Room, error) {
	if err := requireText("number", number); err != nil {
		return nil, err
	}
	if err := requireText("type", roomType); err != nil {
		return nil, err
	}
	if departmentID == uuid.Nil {
		return nil, newValidationError("department_id", "is required")
	}
	return &Room{Number: number, Type: roomType, DepartmentID: departmentID}, nil
}
