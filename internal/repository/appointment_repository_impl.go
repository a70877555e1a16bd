package repository

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Preload("Patient").
		Preload("Physician").
		Preload("Room").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// Closed-interval overlap: a slot conflicts when it starts no later than the
// requested end and ends no earlier than the requested start. Cancelled
// appointments have released their slot and are excluded.
const overlapCondition = `status <> ? AND start_time <= ? AND start_time + make_interval(mins => duration_minutes) >= ?`

func (r *appointmentRepository) FindPhysicianConflict(ctx context.Context, db *gorm.DB, physicianID uuid.UUID, start, end time.Time) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Where("physician_id = ?", physicianID).
		Where(overlapCondition, entity.AppointmentCancelled, end, start).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindRoomConflict(ctx context.Context, db *gorm.DB, roomID uuid.UUID, start, end time.Time) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Where(overlapCondition, entity.AppointmentCancelled, end, start).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// TransitionFromScheduled applies the lifecycle change only if the row is
// still in the scheduled state, so two racing transitions cannot both apply.
func (r *appointmentRepository) TransitionFromScheduled(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, observations *string) (int64, error) {
	updates := map[string]interface{}{"status": status}
	if observations != nil {
		updates["observations"] = *observations
	}
	result := db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentScheduled).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindByPhysicianID(ctx context.Context, db *gorm.DB, physicianID uuid.UUID) ([]entity.Appointment, error) {
	return r.findOrdered(ctx, db, "physician_id = ?", physicianID)
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return r.findOrdered(ctx, db, "patient_id = ?", patientID)
}

func (r *appointmentRepository) FindByRoomID(ctx context.Context, db *gorm.DB, roomID uuid.UUID) ([]entity.Appointment, error) {
	return r.findOrdered(ctx, db, "room_id = ?", roomID)
}

func (r *appointmentRepository) FindAllOrdered(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Preload("Patient").
		Preload("Physician").
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) findOrdered(ctx context.Context, db *gorm.DB, condition string, arg interface{}) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where(condition, arg).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM appointments
		 WHERE patient_id IN (SELECT id FROM patients WHERE hospital_id = ?)
		    OR physician_id IN (SELECT id FROM physicians WHERE department_id IN (SELECT id FROM departments WHERE hospital_id = ?))
		    OR room_id IN (SELECT id FROM rooms WHERE department_id IN (SELECT id FROM departments WHERE hospital_id = ?))`,
		hospitalID, hospitalID, hospitalID,
	).Error
}
