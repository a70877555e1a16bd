package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(ctx context.Context, db *gorm.DB, hospital *entity.Hospital) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Hospital, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Hospital, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
