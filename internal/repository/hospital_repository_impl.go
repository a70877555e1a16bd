package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

func (r *hospitalRepository) Create(ctx context.Context, db *gorm.DB, hospital *entity.Hospital) error {
	return db.WithContext(ctx).Create(hospital).Error
}

func (r *hospitalRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.WithContext(ctx).
		Preload("Departments").
		Preload("Patients").
		Where("id = ?", id).
		First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.WithContext(ctx).Order("name ASC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Hospital{})
	return result.RowsAffected, result.Error
}
