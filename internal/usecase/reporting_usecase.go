package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReportingUsecase serves read projections over the directory. It never
// touches the scheduling engine's invariants.
type ReportingUsecase interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	PhysiciansBySpecialty(ctx context.Context, specialty string) (*dto.PhysicianListResponse, error)
	AppointmentsByTime(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type reportingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	physicianRepo   repository.PhysicianRepository
	appointmentRepo repository.AppointmentRepository
	statsCache      *service.StatsCacheService
}

func NewReportingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	physicianRepo repository.PhysicianRepository,
	appointmentRepo repository.AppointmentRepository,
	statsCache *service.StatsCacheService,
) ReportingUsecase {
	return &reportingUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		physicianRepo:   physicianRepo,
		appointmentRepo: appointmentRepo,
		statsCache:      statsCache,
	}
}

// Stats serves the entity counters, Redis-first with the database as the
// authority on a miss.
func (u *reportingUsecase) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	if u.statsCache != nil {
		cached, err := u.statsCache.Get(ctx)
		if err != nil {
			u.log.Warnf("Stats cache read failed (non-fatal): %+v", err)
		}
		if cached != nil {
			return &dto.StatsResponse{
				Patients:     cached.Patients,
				Physicians:   cached.Physicians,
				Appointments: cached.Appointments,
			}, nil
		}
	}

	patients, err := u.patientRepo.Count(ctx, u.db)
	if err != nil {
		return nil, err
	}
	physicians, err := u.physicianRepo.Count(ctx, u.db)
	if err != nil {
		return nil, err
	}
	appointments, err := u.appointmentRepo.Count(ctx, u.db)
	if err != nil {
		return nil, err
	}

	if u.statsCache != nil {
		snapshot := &service.CountsSnapshot{
			Patients:     patients,
			Physicians:   physicians,
			Appointments: appointments,
		}
		if err := u.statsCache.Set(ctx, snapshot); err != nil {
			u.log.Warnf("Stats cache write failed (non-fatal): %+v", err)
		}
	}

	return &dto.StatsResponse{
		Patients:     patients,
		Physicians:   physicians,
		Appointments: appointments,
	}, nil
}

func (u *reportingUsecase) PhysiciansBySpecialty(ctx context.Context, specialty string) (*dto.PhysicianListResponse, error) {
	parsed, err := entity.ParseSpecialty(specialty)
	if err != nil {
		return nil, err
	}

	physicians, err := u.physicianRepo.FindBySpecialty(ctx, u.db, parsed)
	if err != nil {
		u.log.Warnf("Failed to list physicians by specialty %s: %+v", parsed, err)
		return nil, err
	}

	return &dto.PhysicianListResponse{
		Physicians: converter.PhysiciansToResponses(physicians),
		Total:      len(physicians),
	}, nil
}

func (u *reportingUsecase) AppointmentsByTime(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAllOrdered(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}
