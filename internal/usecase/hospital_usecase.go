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
	ErrHospitalNotFound   = errors.New("hospital not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvalidBirthDate   = errors.New("invalid birth date format, use YYYY-MM-DD")
)

const birthDateLayout = "2006-01-02"

// HospitalUsecase manages the aggregate root side of the directory:
// hospitals, their departments, and their patients.
type HospitalUsecase interface {
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetHospital(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error)
	ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
	DeleteHospital(ctx context.Context, id uuid.UUID) error
	CreateDepartment(ctx context.Context, hospitalID uuid.UUID, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	AttachDepartment(ctx context.Context, hospitalID, departmentID uuid.UUID) error
	RegisterPatient(ctx context.Context, hospitalID uuid.UUID, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	AdmitPatient(ctx context.Context, hospitalID, patientID uuid.UUID) error
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
}

type hospitalUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	hospitalRepo    repository.HospitalRepository
	departmentRepo  repository.DepartmentRepository
	physicianRepo   repository.PhysicianRepository
	patientRepo     repository.PatientRepository
	roomRepo        repository.RoomRepository
	recordRepo      repository.ClinicalRecordRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	departmentRepo repository.DepartmentRepository,
	physicianRepo repository.PhysicianRepository,
	patientRepo repository.PatientRepository,
	roomRepo repository.RoomRepository,
	recordRepo repository.ClinicalRecordRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) HospitalUsecase {
	return &hospitalUsecase{
		db:              db,
		log:             log,
		hospitalRepo:    hospitalRepo,
		departmentRepo:  departmentRepo,
		physicianRepo:   physicianRepo,
		patientRepo:     patientRepo,
		roomRepo:        roomRepo,
		recordRepo:      recordRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *hospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := entity.NewHospital(req.Name, req.Address, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := u.hospitalRepo.Create(ctx, u.db, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionHospitalCreate, "hospital", hospital.ID.String(), entity.JSON{
		"name": hospital.Name,
	})

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}
	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list hospitals: %+v", err)
		return nil, err
	}
	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

// DeleteHospital walks the ownership tree top-down inside one transaction:
// appointments first, then clinical data, patients, rooms, physicians,
// departments, and finally the hospital row itself.
func (u *hospitalUsecase) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	hospital, err := u.hospitalRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", id, err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	err = u.db.Transaction(func(tx *gorm.DB) error {
		if err := u.appointmentRepo.DeleteByHospitalID(ctx, tx, id); err != nil {
			return err
		}
		if err := u.recordRepo.DeleteByHospitalID(ctx, tx, id); err != nil {
			return err
		}
		if err := u.patientRepo.DeleteByHospitalID(ctx, tx, id); err != nil {
			return err
		}
		if err := u.roomRepo.DeleteByHospitalID(ctx, tx, id); err != nil {
			return err
		}
		if err := u.physicianRepo.DeleteByHospitalID(ctx, tx, id); err != nil {
			return err
		}
		if err := u.departmentRepo.DeleteByHospitalID(ctx, tx, id); err != nil {
			return err
		}
		_, err := u.hospitalRepo.Delete(ctx, tx, id)
		return err
	})
	if err != nil {
		u.log.Errorf("Failed to cascade-delete hospital %s: %+v", id, err)
		return err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionHospitalDelete, "hospital", id.String(), entity.JSON{
		"name": hospital.Name,
	})

	u.log.Infof("Hospital deleted with cascade: id=%s, name=%s", id, hospital.Name)
	return nil
}

func (u *hospitalUsecase) CreateDepartment(ctx context.Context, hospitalID uuid.UUID, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	specialty, err := entity.ParseSpecialty(req.Specialty)
	if err != nil {
		return nil, err
	}

	department, err := entity.NewDepartment(req.Name, specialty)
	if err != nil {
		return nil, err
	}
	department.HospitalID = &hospitalID

	if err := u.departmentRepo.Create(ctx, u.db, department); err != nil {
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionDepartmentCreate, "department", department.ID.String(), entity.JSON{
		"hospital_id": hospitalID.String(),
		"name":        department.Name,
	})

	return converter.DepartmentToResponse(department), nil
}

// AttachDepartment links an existing department to a hospital. A no-op when
// the department is already registered there; re-parenting rewrites the
// single owner column, so the department cannot appear under two hospitals.
func (u *hospitalUsecase) AttachDepartment(ctx context.Context, hospitalID, departmentID uuid.UUID) error {
	hospital, err := u.hospitalRepo.FindByID(ctx, u.db, hospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	department, err := u.departmentRepo.FindByID(ctx, u.db, departmentID)
	if err != nil {
		return err
	}
	if department == nil {
		return ErrDepartmentNotFound
	}

	if department.HospitalID != nil && *department.HospitalID == hospitalID {
		return nil
	}

	if err := u.departmentRepo.SetHospital(ctx, u.db, departmentID, hospitalID); err != nil {
		u.log.Warnf("Failed to attach department %s to hospital %s: %+v", departmentID, hospitalID, err)
		return err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionDepartmentAttach, "department", departmentID.String(), entity.JSON{
		"hospital_id": hospitalID.String(),
	})
	return nil
}

// RegisterPatient validates and persists a patient under the hospital. The
// clinical record attached at construction is stored in the same insert.
func (u *hospitalUsecase) RegisterPatient(ctx context.Context, hospitalID uuid.UUID, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(ctx, u.db, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}
	bloodType, err := entity.ParseBloodType(req.BloodType)
	if err != nil {
		return nil, err
	}

	patient, err := entity.NewPatient(req.FirstName, req.LastName, req.NationalID, birthDate, bloodType, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	patient.HospitalID = &hospitalID

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to register patient: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionPatientRegister, "patient", patient.ID.String(), entity.JSON{
		"hospital_id":   hospitalID.String(),
		"record_number": patient.ClinicalRecord.RecordNumber,
	})

	return converter.PatientToResponse(patient), nil
}

// AdmitPatient moves an existing patient under a hospital, idempotently.
func (u *hospitalUsecase) AdmitPatient(ctx context.Context, hospitalID, patientID uuid.UUID) error {
	hospital, err := u.hospitalRepo.FindByID(ctx, u.db, hospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if patient.HospitalID != nil && *patient.HospitalID == hospitalID {
		return nil
	}

	if err := u.patientRepo.SetHospital(ctx, u.db, patientID, hospitalID); err != nil {
		u.log.Warnf("Failed to admit patient %s to hospital %s: %+v", patientID, hospitalID, err)
		return err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionPatientAdmit, "patient", patientID.String(), entity.JSON{
		"hospital_id": hospitalID.String(),
	})
	return nil
}

func (u *hospitalUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}
