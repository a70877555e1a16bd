package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicalRecordRepository struct{}

func NewClinicalRecordRepository() domainRepo.ClinicalRecordRepository {
	return &clinicalRecordRepository{}
}

func (r *clinicalRecordRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*entity.ClinicalRecord, error) {
	var record entity.ClinicalRecord
	err := db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("clinical_entries.id ASC")
		}).
		Where("patient_id = ?", patientID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *clinicalRecordRepository) AppendEntry(ctx context.Context, db *gorm.DB, entry *entity.ClinicalEntry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *clinicalRecordRepository) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM clinical_entries WHERE record_id IN (
			SELECT id FROM clinical_records WHERE patient_id IN (SELECT id FROM patients WHERE hospital_id = ?))`,
		hospitalID,
	).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Exec(
		`DELETE FROM clinical_records WHERE patient_id IN (SELECT id FROM patients WHERE hospital_id = ?)`,
		hospitalID,
	).Error
}
