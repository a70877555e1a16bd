package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPhysicianNotFound = errors.New("physician not found")
	ErrRoomNotFound      = errors.New("room not found")
)

// DepartmentUsecase manages the staff and room side of the directory.
type DepartmentUsecase interface {
	GetDepartment(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, error)
	RegisterPhysician(ctx context.Context, departmentID uuid.UUID, req *dto.RegisterPhysicianRequest) (*dto.PhysicianResponse, error)
	AssignPhysician(ctx context.Context, departmentID, physicianID uuid.UUID) error
	CreateRoom(ctx context.Context, departmentID uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error)
	GetPhysician(ctx context.Context, id uuid.UUID) (*dto.PhysicianResponse, error)
}

type departmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
	physicianRepo  repository.PhysicianRepository
	roomRepo       repository.RoomRepository
	auditService   service.AuditService
}

func NewDepartmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	physicianRepo repository.PhysicianRepository,
	roomRepo repository.RoomRepository,
	auditService service.AuditService,
) DepartmentUsecase {
	return &departmentUsecase{
		db:             db,
		log:            log,
		departmentRepo: departmentRepo,
		physicianRepo:  physicianRepo,
		roomRepo:       roomRepo,
		auditService:   auditService,
	}
}

func (u *departmentUsecase) GetDepartment(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find department %s: %+v", id, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}
	return converter.DepartmentToResponse(department), nil
}

// RegisterPhysician validates and persists a physician under the department.
func (u *departmentUsecase) RegisterPhysician(ctx context.Context, departmentID uuid.UUID, req *dto.RegisterPhysicianRequest) (*dto.PhysicianResponse, error) {
	department, err := u.departmentRepo.FindByID(ctx, u.db, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}
	bloodType, err := entity.ParseBloodType(req.BloodType)
	if err != nil {
		return nil, err
	}
	specialty, err := entity.ParseSpecialty(req.Specialty)
	if err != nil {
		return nil, err
	}

	physician, err := entity.NewPhysician(req.FirstName, req.LastName, req.NationalID, birthDate, bloodType, req.LicenseNumber, specialty)
	if err != nil {
		return nil, err
	}
	physician.DepartmentID = &departmentID

	if err := u.physicianRepo.Create(ctx, u.db, physician); err != nil {
		u.log.Warnf("Failed to register physician: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionPhysicianRegister, "physician", physician.ID.String(), entity.JSON{
		"department_id": departmentID.String(),
		"license":       physician.LicenseNumber,
	})

	return converter.PhysicianToResponse(physician), nil
}

// AssignPhysician moves an existing physician to a department, idempotently.
// Re-parenting rewrites the single owner column, so the physician cannot
// appear under two departments.
func (u *departmentUsecase) AssignPhysician(ctx context.Context, departmentID, physicianID uuid.UUID) error {
	department, err := u.departmentRepo.FindByID(ctx, u.db, departmentID)
	if err != nil {
		return err
	}
	if department == nil {
		return ErrDepartmentNotFound
	}

	physician, err := u.physicianRepo.FindByID(ctx, u.db, physicianID)
	if err != nil {
		return err
	}
	if physician == nil {
		return ErrPhysicianNotFound
	}

	if physician.DepartmentID != nil && *physician.DepartmentID == departmentID {
		return nil
	}

	if err := u.physicianRepo.SetDepartment(ctx, u.db, physicianID, departmentID); err != nil {
		u.log.Warnf("Failed to assign physician %s to department %s: %+v", physicianID, departmentID, err)
		return err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionPhysicianAssign, "physician", physicianID.String(), entity.JSON{
		"department_id": departmentID.String(),
	})
	return nil
}

func (u *departmentUsecase) CreateRoom(ctx context.Context, departmentID uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	department, err := u.departmentRepo.FindByID(ctx, u.db, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	room, err := entity.NewRoom(req.Number, req.Type, departmentID)
	if err != nil {
		return nil, err
	}

	if err := u.roomRepo.Create(ctx, u.db, room); err != nil {
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionRoomCreate, "room", room.ID.String(), entity.JSON{
		"department_id": departmentID.String(),
		"number":        room.Number,
	})

	return converter.RoomToResponse(room), nil
}

func (u *departmentUsecase) GetRoom(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", id, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return converter.RoomToResponse(room), nil
}

func (u *departmentUsecase) GetPhysician(ctx context.Context, id uuid.UUID) (*dto.PhysicianResponse, error) {
	physician, err := u.physicianRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find physician %s: %+v", id, err)
		return nil, err
	}
	if physician == nil {
		return nil, ErrPhysicianNotFound
	}
	return converter.PhysicianToResponse(physician), nil
}
