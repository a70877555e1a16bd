package main

import (
	"context"
	"fmt"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/infrastructure/database"
	"hospital-management-api/internal/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/internal/usecase"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Seeds a demo hospital graph: one hospital with three departments, a
// physician and room per department, a handful of faked patients, and a few
// scheduled appointments.
func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hospitalRepo := repository.NewHospitalRepository()
	departmentRepo := repository.NewDepartmentRepository()
	physicianRepo := repository.NewPhysicianRepository()
	patientRepo := repository.NewPatientRepository()
	roomRepo := repository.NewRoomRepository()
	recordRepo := repository.NewClinicalRecordRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)
	slotLocks := service.NewSlotLockService(log)
	defer slotLocks.Stop()

	hospitalUsecase := usecase.NewHospitalUsecase(db, log, hospitalRepo, departmentRepo, physicianRepo, patientRepo, roomRepo, recordRepo, appointmentRepo, auditService)
	departmentUsecase := usecase.NewDepartmentUsecase(db, log, departmentRepo, physicianRepo, roomRepo, auditService)
	recordUsecase := usecase.NewClinicalRecordUsecase(db, log, recordRepo, auditService)
	schedulingUsecase := usecase.NewSchedulingUsecase(db, log, appointmentRepo, patientRepo, physicianRepo, roomRepo, slotLocks, auditService, nil, cfg.Scheduling.DefaultDurationMinutes)

	ctx := context.Background()
	gofakeit.Seed(time.Now().UnixNano())

	log.Info("Seed starting")

	hospital, err := hospitalUsecase.CreateHospital(ctx, &dto.CreateHospitalRequest{
		Name:    "Hospital Central",
		Address: "Av. Libertador 1234",
		Phone:   "011-4555-0000",
	})
	if err != nil {
		log.Fatalf("Failed to create hospital: %v", err)
	}

	specialties := []struct {
		name      string
		specialty string
	}{
		{"Cardiology", "CARDIOLOGY"},
		{"Pediatrics", "PEDIATRICS"},
		{"Traumatology", "TRAUMATOLOGY"},
	}

	var physicianIDs, roomIDs []uuid.UUID
	for i, s := range specialties {
		department, err := hospitalUsecase.CreateDepartment(ctx, hospital.ID, &dto.CreateDepartmentRequest{
			Name:      s.name,
			Specialty: s.specialty,
		})
		if err != nil {
			log.Fatalf("Failed to create department %s: %v", s.name, err)
		}

		physician, err := departmentUsecase.RegisterPhysician(ctx, department.ID, &dto.RegisterPhysicianRequest{
			FirstName:     gofakeit.FirstName(),
			LastName:      gofakeit.LastName(),
			NationalID:    fmt.Sprintf("%08d", gofakeit.Number(10000000, 99999999)),
			BirthDate:     gofakeit.DateRange(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
			BloodType:     "O+",
			LicenseNumber: fmt.Sprintf("MP-%05d", 12345+i),
			Specialty:     s.specialty,
		})
		if err != nil {
			log.Fatalf("Failed to register physician for %s: %v", s.name, err)
		}
		physicianIDs = append(physicianIDs, physician.ID)

		room, err := departmentUsecase.CreateRoom(ctx, department.ID, &dto.CreateRoomRequest{
			Number: fmt.Sprintf("%d01", i+1),
			Type:   "CONSULTATION",
		})
		if err != nil {
			log.Fatalf("Failed to create room for %s: %v", s.name, err)
		}
		roomIDs = append(roomIDs, room.ID)
	}

	bloodTypes := []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)

	for i := 0; i < 10; i++ {
		patient, err := hospitalUsecase.RegisterPatient(ctx, hospital.ID, &dto.RegisterPatientRequest{
			FirstName:  gofakeit.FirstName(),
			LastName:   gofakeit.LastName(),
			NationalID: fmt.Sprintf("%08d", gofakeit.Number(10000000, 99999999)),
			BirthDate:  gofakeit.DateRange(time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
			BloodType:  bloodTypes[gofakeit.Number(0, len(bloodTypes)-1)],
			Phone:      gofakeit.Phone(),
			Address:    gofakeit.Street(),
		})
		if err != nil {
			log.Fatalf("Failed to register patient: %v", err)
		}

		if _, err := recordUsecase.AddDiagnosis(ctx, patient.ID, gofakeit.Sentence()); err != nil {
			log.Fatalf("Failed to add diagnosis: %v", err)
		}

		// Non-overlapping slots, rotating through the seeded physicians and
		// rooms.
		slot := start.Add(time.Duration(i) * time.Hour)
		req := &dto.ScheduleAppointmentRequest{
			PatientID:       patient.ID,
			PhysicianID:     physicianIDs[i%len(physicianIDs)],
			RoomID:          roomIDs[i%len(roomIDs)],
			StartTime:       slot,
			DurationMinutes: 30,
			Cost:            fmt.Sprintf("%d.00", gofakeit.Number(50, 300)),
		}
		if _, err := schedulingUsecase.Schedule(ctx, req); err != nil {
			log.Fatalf("Failed to schedule appointment: %v", err)
		}
	}

	log.Info("Seed complete")
}
