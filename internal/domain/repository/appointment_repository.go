package repository

import (
	"context"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindPhysicianConflict returns a non-cancelled appointment of the
	// physician whose slot intersects [start, end], or nil.
	FindPhysicianConflict(ctx context.Context, db *gorm.DB, physicianID uuid.UUID, start, end time.Time) (*entity.Appointment, error)
	// FindRoomConflict is the room-side twin of FindPhysicianConflict.
	FindRoomConflict(ctx context.Context, db *gorm.DB, roomID uuid.UUID, start, end time.Time) (*entity.Appointment, error)
	// TransitionFromScheduled conditionally moves a scheduled appointment to
	// the given status. Returns affected rows: 0 means the appointment was
	// already in a terminal state.
	TransitionFromScheduled(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, observations *string) (int64, error)
	FindByPhysicianID(ctx context.Context, db *gorm.DB, physicianID uuid.UUID) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByRoomID(ctx context.Context, db *gorm.DB, roomID uuid.UUID) ([]entity.Appointment, error)
	FindAllOrdered(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error
}
