package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicalRecordRepository interface {
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*entity.ClinicalRecord, error)
	AppendEntry(ctx context.Context, db *gorm.DB, entry *entity.ClinicalEntry) error
	DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error
}
