package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type physicianRepository struct{}

func NewPhysicianRepository() domainRepo.PhysicianRepository {
	return &physicianRepository{}
}

func (r *physicianRepository) Create(ctx context.Context, db *gorm.DB, physician *entity.Physician) error {
	return db.WithContext(ctx).Create(physician).Error
}

func (r *physicianRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Physician, error) {
	var physician entity.Physician
	err := db.WithContext(ctx).Where("id = ?", id).First(&physician).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &physician, nil
}

func (r *physicianRepository) FindBySpecialty(ctx context.Context, db *gorm.DB, specialty entity.Specialty) ([]entity.Physician, error) {
	var physicians []entity.Physician
	err := db.WithContext(ctx).
		Where("specialty = ?", specialty).
		Order("last_name ASC, first_name ASC").
		Find(&physicians).Error
	if err != nil {
		return nil, err
	}
	return physicians, nil
}

// SetDepartment re-parents the physician by rewriting its owner column.
func (r *physicianRepository) SetDepartment(ctx context.Context, db *gorm.DB, physicianID, departmentID uuid.UUID) error {
	return db.WithContext(ctx).
		Model(&entity.Physician{}).
		Where("id = ?", physicianID).
		Update("department_id", departmentID).Error
}

func (r *physicianRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Physician{}).Count(&count).Error
	return count, err
}

func (r *physicianRepository) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM physicians WHERE department_id IN (SELECT id FROM departments WHERE hospital_id = ?)`,
		hospitalID,
	).Error
}
