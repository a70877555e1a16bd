package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(ctx context.Context, db *gorm.DB, room *entity.Room) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	FindByDepartmentID(ctx context.Context, db *gorm.DB, departmentID uuid.UUID) ([]entity.Room, error)
	DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error
}
