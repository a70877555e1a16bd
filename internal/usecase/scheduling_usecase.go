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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrPhysicianSlotConflict = errors.New("physician already holds an appointment in the requested interval")
	ErrRoomSlotConflict      = errors.New("room already holds an appointment in the requested interval")
	ErrInvalidTransition     = errors.New("appointment is already in a terminal state")
	ErrStartInPast           = errors.New("appointment start time is in the past")
	ErrInvalidCost           = errors.New("cost must be a valid non-negative decimal")
)

// SchedulingUsecase is the sole creator and lifecycle mutator of
// appointments. Nothing else may write to the appointment collections.
type SchedulingUsecase interface {
	Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, id uuid.UUID, observations string) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListByPhysician(ctx context.Context, physicianID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type schedulingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	physicianRepo   repository.PhysicianRepository
	roomRepo        repository.RoomRepository
	slotLocks       *service.SlotLockService
	auditService    service.AuditService
	statsCache      *service.StatsCacheService
	defaultDuration int
	now             func() time.Time
}

func NewSchedulingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	physicianRepo repository.PhysicianRepository,
	roomRepo repository.RoomRepository,
	slotLocks *service.SlotLockService,
	auditService service.AuditService,
	statsCache *service.StatsCacheService,
	defaultDurationMinutes int,
) SchedulingUsecase {
	return &schedulingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		physicianRepo:   physicianRepo,
		roomRepo:        roomRepo,
		slotLocks:       slotLocks,
		auditService:    auditService,
		statsCache:      statsCache,
		defaultDuration: defaultDurationMinutes,
		now:             time.Now,
	}
}

// Schedule creates a new appointment after verifying that neither the
// physician nor the room holds a non-cancelled appointment overlapping the
// requested slot.
//
// Flow:
// 1. Validate references and slot parameters
// 2. Acquire the physician and room mutexes (sorted order)
// 3. Conflict scan for the physician, then the room
// 4. Insert the appointment - the single row carries all three ownership
//    keys, so registration on patient, physician, and room is one atomic step
// 5. Audit + stats cache invalidation (best effort)
func (u *schedulingUsecase) Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	cost, err := decimal.NewFromString(req.Cost)
	if err != nil || cost.IsNegative() {
		return nil, ErrInvalidCost
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = u.defaultDuration
	}

	if req.StartTime.Before(u.now()) {
		return nil, ErrStartInPast
	}

	// Validate references point at registered entities
	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	physician, err := u.physicianRepo.FindByID(ctx, u.db, req.PhysicianID)
	if err != nil {
		u.log.Warnf("Failed to find physician %s: %+v", req.PhysicianID, err)
		return nil, err
	}
	if physician == nil {
		return nil, ErrPhysicianNotFound
	}

	room, err := u.roomRepo.FindByID(ctx, u.db, req.RoomID)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", req.RoomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	appointment, err := entity.NewAppointment(req.PatientID, req.PhysicianID, req.RoomID, req.StartTime, duration, cost)
	if err != nil {
		return nil, err
	}
	end := appointment.EndTime()

	// Critical section: the conflict check and the insert must be observed
	// as one atomic unit per physician and per room.
	unlock := u.slotLocks.Lock("physician:"+req.PhysicianID.String(), "room:"+req.RoomID.String())
	defer unlock()

	conflict, err := u.appointmentRepo.FindPhysicianConflict(ctx, u.db, req.PhysicianID, req.StartTime, end)
	if err != nil {
		u.log.Warnf("Failed physician conflict scan for %s: %+v", req.PhysicianID, err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrPhysicianSlotConflict
	}

	conflict, err = u.appointmentRepo.FindRoomConflict(ctx, u.db, req.RoomID, req.StartTime, end)
	if err != nil {
		u.log.Warnf("Failed room conflict scan for %s: %+v", req.RoomID, err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrRoomSlotConflict
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionAppointmentSchedule, "appointment", appointment.ID.String(), entity.JSON{
		"physician_id": req.PhysicianID.String(),
		"room_id":      req.RoomID.String(),
		"start_time":   req.StartTime,
	})
	u.invalidateStats(ctx)

	u.log.Infof("Appointment scheduled: id=%s, physician=%s, room=%s, start=%s",
		appointment.ID, req.PhysicianID, req.RoomID, req.StartTime.Format(time.RFC3339))
	return converter.AppointmentToResponse(appointment), nil
}

// Complete moves a scheduled appointment to COMPLETED, attaching the final
// observations.
func (u *schedulingUsecase) Complete(ctx context.Context, id uuid.UUID, observations string) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentCompleted, &observations, entity.AuditActionAppointmentComplete)
}

// Cancel moves a scheduled appointment to CANCELLED, releasing its physician
// and room slots for rebooking.
func (u *schedulingUsecase) Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentCancelled, nil, entity.AuditActionAppointmentCancel)
}

// MarkNoShow moves a scheduled appointment to NO_SHOW.
func (u *schedulingUsecase) MarkNoShow(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentNoShow, nil, entity.AuditActionAppointmentNoShow)
}

// transition applies a lifecycle change guarded on the scheduled state. A
// lost race surfaces as ErrInvalidTransition, never as a double apply.
func (u *schedulingUsecase) transition(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, observations *string, auditAction string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.TransitionFromScheduled(ctx, u.db, id, status, observations)
	if err != nil {
		u.log.Warnf("Failed to transition appointment %s to %s: %+v", id, status, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	appointment.Status = status
	if observations != nil {
		appointment.Observations = *observations
	}

	u.auditService.LogAction(ctx, u.db, auditAction, "appointment", id.String(), entity.JSON{
		"status": string(status),
	})
	u.invalidateStats(ctx)

	u.log.Infof("Appointment transitioned: id=%s, status=%s", id, status)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *schedulingUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *schedulingUsecase) ListByPhysician(ctx context.Context, physicianID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPhysicianID(ctx, u.db, physicianID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for physician %s: %+v", physicianID, err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *schedulingUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientID, err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *schedulingUsecase) ListByRoom(ctx context.Context, roomID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByRoomID(ctx, u.db, roomID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for room %s: %+v", roomID, err)
		return nil, err
	}
	return listResponse(appointments), nil
}

// invalidateStats drops the cached reporting counters. Failures are logged
// and tolerated; the cache expires on its own TTL.
func (u *schedulingUsecase) invalidateStats(ctx context.Context) {
	if u.statsCache == nil {
		return
	}
	if err := u.statsCache.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate stats cache (non-fatal): %+v", err)
	}
}

func listResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}
}
