package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) Create(ctx context.Context, db *gorm.DB, department *entity.Department) error {
	return db.WithContext(ctx).Create(department).Error
}

func (r *departmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Department, error) {
	var department entity.Department
	err := db.WithContext(ctx).
		Preload("Physicians").
		Preload("Rooms").
		Where("id = ?", id).
		First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.Department, error) {
	var departments []entity.Department
	err := db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("name ASC").
		Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

// SetHospital re-parents the department by rewriting its owner column, so it
// can never be listed under two hospitals.
func (r *departmentRepository) SetHospital(ctx context.Context, db *gorm.DB, departmentID, hospitalID uuid.UUID) error {
	return db.WithContext(ctx).
		Model(&entity.Department{}).
		Where("id = ?", departmentID).
		Update("hospital_id", hospitalID).Error
}

func (r *departmentRepository) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	return db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Delete(&entity.Department{}).Error
}
