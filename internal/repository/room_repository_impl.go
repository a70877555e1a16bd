package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(ctx context.Context, db *gorm.DB, room *entity.Room) error {
	return db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByDepartmentID(ctx context.Context, db *gorm.DB, departmentID uuid.UUID) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM rooms WHERE department_id IN (SELECT id FROM departments WHERE hospital_id = ?)`,
		hospitalID,
	).Error
}
