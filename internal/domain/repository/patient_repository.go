package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	SetHospital(ctx context.Context, db *gorm.DB, patientID, hospitalID uuid.UUID) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error
}
