package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, department *entity.Department) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Department, error)
	FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.Department, error)
	SetHospital(ctx context.Context, db *gorm.DB, departmentID, hospitalID uuid.UUID) error
	DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error
}
