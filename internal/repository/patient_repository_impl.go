package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

// Create persists the patient together with the clinical record attached at
// construction; gorm saves the association in the same transaction.
func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).
		Preload("ClinicalRecord.Entries").
		Where("id = ?", id).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) SetHospital(ctx context.Context, db *gorm.DB, patientID, hospitalID uuid.UUID) error {
	return db.WithContext(ctx).
		Model(&entity.Patient{}).
		Where("id = ?", patientID).
		Update("hospital_id", hospitalID).Error
}

func (r *patientRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&count).Error
	return count, err
}

func (r *patientRepository) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	return db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Delete(&entity.Patient{}).Error
}
