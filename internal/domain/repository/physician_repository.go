package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhysicianRepository interface {
	Create(ctx context.Context, db *gorm.DB, physician *entity.Physician) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Physician, error)
	FindBySpecialty(ctx context.Context, db *gorm.DB, specialty entity.Specialty) ([]entity.Physician, error)
	SetDepartment(ctx context.Context, db *gorm.DB, physicianID, departmentID uuid.UUID) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error
}
