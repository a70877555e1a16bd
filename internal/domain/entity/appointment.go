package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentNoShow    AppointmentStatus = "NO_SHOW"
)

// ErrInvalidTransition is returned when a lifecycle transition is requested
// on an appointment already in a terminal state.
var ErrInvalidTransition = errors.New("appointment is already in a terminal state")

// Appointment binds one patient, one physician, and one room to a time slot.
// It is created only by the scheduling engine and never deleted; cancellation
// is its soft lifecycle end.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	PhysicianID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"physician_id"`
	RoomID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"room_id"`
	StartTime       time.Time         `gorm:"not null;index" json:"start_time"`
	DurationMinutes int               `gorm:"not null" json:"duration_minutes"`
	Cost            decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"cost"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	Observations    string            `gorm:"type:text" json:"observations,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Physician Physician `gorm:"foreignKey:PhysicianID" json:"physician,omitempty"`
	Room      Room      `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// NewAppointment validates the slot parameters and returns an appointment in
// the scheduled state. Conflict checking is the scheduling engine's job, not
// the entity's.
func NewAppointment(patientID, physicianID, roomID uuid.UUID, startTime time.Time, durationMinutes int, cost decimal.Decimal) (*Appointment, error) {
	if patientID == uuid.Nil {
		return nil, newValidationError("patient_id", "is required")
	}
	if physicianID == uuid.Nil {
		return nil, newValidationError("physician_id", "is required")
	}
	if roomID == uuid.Nil {
		return nil, newValidationError("room_id", "is required")
	}
	if startTime.IsZero() {
		return nil, newValidationError("start_time", "is required")
	}
	if durationMinutes <= 0 {
		return nil, newValidationError("duration_minutes", "must be positive")
	}
	if cost.IsNegative() {
		return nil, newValidationError("cost", "cannot be negative")
	}
	return &Appointment{
		PatientID:       patientID,
		PhysicianID:     physicianID,
		RoomID:          roomID,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		Cost:            cost,
		Status:          AppointmentScheduled,
	}, nil
}

// EndTime is the instant the appointment stops occupying its slot.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Overlaps reports whether the appointment's slot intersects the closed
// interval [start, end].
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return !a.StartTime.After(end) && !a.EndTime().Before(start)
}

// BlocksSlot reports whether the appointment still holds its physician and
// room slots. Cancelled appointments free the slot for rebooking.
func (a *Appointment) BlocksSlot() bool {
	return a.Status != AppointmentCancelled
}

// IsTerminal reports whether no further transition is defined.
func (a *Appointment) IsTerminal() bool {
	return a.Status != AppointmentScheduled
}

// Complete transitions the appointment to COMPLETED, attaching the final
// observations.
func (a *Appointment) Complete(observations string) error {
	if a.IsTerminal() {
		return ErrInvalidTransition
	}
	a.Status = AppointmentCompleted
	a.Observations = observations
	return nil
}

// Cancel transitions the appointment to CANCELLED, freeing its slots.
func (a *Appointment) Cancel() error {
	if a.IsTerminal() {
		return ErrInvalidTransition
	}
	a.Status = AppointmentCancelled
	return nil
}

// MarkNoShow transitions the appointment to NO_SHOW.
func (a *Appointment) MarkNoShow() error {
	if a.IsTerminal() {
		return ErrInvalidTransition
	}
	a.Status = AppointmentNoShow
	return nil
}
