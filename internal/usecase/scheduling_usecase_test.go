package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
)

type schedulingFixture struct {
	usecase      *schedulingUsecase
	appointments *fakeAppointmentRepo
	patientID    uuid.UUID
	physicianID  uuid.UUID
	roomID       uuid.UUID
	clock        time.Time
}

func newSchedulingFixture(t *testing.T) *schedulingFixture {
	t.Helper()
	log := testLogger()

	patients := newFakePatientRepo()
	physicians := newFakePhysicianRepo()
	rooms := newFakeRoomRepo()
	appointments := newFakeAppointmentRepo()

	birthDate := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	patient, err := entity.NewPatient("Maria", "Gomez", "12345678", birthDate, entity.BloodOPositive, "011-4555", "Some St 42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := patients.Create(context.Background(), nil, patient); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	physician, err := entity.NewPhysician("Laura", "Reyes", "23456789", birthDate, entity.BloodAPositive, "MP-12345", entity.SpecialtyCardiology)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := physicians.Create(context.Background(), nil, physician); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	room, err := entity.NewRoom("101", "CONSULTATION", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rooms.Create(context.Background(), nil, room); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slotLocks := service.NewSlotLockService(log)
	t.Cleanup(slotLocks.Stop)

	u := NewSchedulingUsecase(nil, log, appointments, patients, physicians, rooms, slotLocks, noopAuditService{}, nil, 30).(*schedulingUsecase)

	clock := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	u.now = func() time.Time { return clock }

	return &schedulingFixture{
		usecase:      u,
		appointments: appointments,
		patientID:    patient.ID,
		physicianID:  physician.ID,
		roomID:       room.ID,
		clock:        clock,
	}
}

func (f *schedulingFixture) request(start time.Time, durationMinutes int) *dto.ScheduleAppointmentRequest {
	return &dto.ScheduleAppointmentRequest{
		PatientID:       f.patientID,
		PhysicianID:     f.physicianID,
		RoomID:          f.roomID,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Cost:            "150.00",
	}
}

func TestScheduleSuccess(t *testing.T) {
	f := newSchedulingFixture(t)
	start := f.clock.Add(2 * time.Hour)

	appointment, err := f.usecase.Schedule(context.Background(), f.request(start, 45))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appointment.Status != string(entity.AppointmentScheduled) {
		t.Errorf("expected SCHEDULED, got %q", appointment.Status)
	}
	if appointment.DurationMinutes != 45 {
		t.Errorf("expected duration 45, got %d", appointment.DurationMinutes)
	}
	if !appointment.EndTime.Equal(start.Add(45 * time.Minute)) {
		t.Errorf("unexpected end time %v", appointment.EndTime)
	}
	if appointment.Cost != "150.00" {
		t.Errorf("expected cost 150.00, got %q", appointment.Cost)
	}
}

func TestScheduleDefaultDuration(t *testing.T) {
	f := newSchedulingFixture(t)

	appointment, err := f.usecase.Schedule(context.Background(), f.request(f.clock.Add(2*time.Hour), 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appointment.DurationMinutes != 30 {
		t.Errorf("expected configured default duration 30, got %d", appointment.DurationMinutes)
	}
}

func TestScheduleRejectsPastStart(t *testing.T) {
	f := newSchedulingFixture(t)

	_, err := f.usecase.Schedule(context.Background(), f.request(f.clock.Add(-time.Hour), 30))
	if err != ErrStartInPast {
		t.Fatalf("expected ErrStartInPast, got %v", err)
	}
}

func TestScheduleRejectsBadCost(t *testing.T) {
	f := newSchedulingFixture(t)

	req := f.request(f.clock.Add(time.Hour), 30)
	req.Cost = "not-a-number"
	if _, err := f.usecase.Schedule(context.Background(), req); err != ErrInvalidCost {
		t.Fatalf("expected ErrInvalidCost, got %v", err)
	}

	req = f.request(f.clock.Add(time.Hour), 30)
	req.Cost = "-10.00"
	if _, err := f.usecase.Schedule(context.Background(), req); err != ErrInvalidCost {
		t.Fatalf("expected ErrInvalidCost for negative cost, got %v", err)
	}
}

func TestScheduleUnknownReferences(t *testing.T) {
	f := newSchedulingFixture(t)
	start := f.clock.Add(time.Hour)

	req := f.request(start, 30)
	req.PatientID = uuid.New()
	if _, err := f.usecase.Schedule(context.Background(), req); err != ErrPatientNotFound {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}

	req = f.request(start, 30)
	req.PhysicianID = uuid.New()
	if _, err := f.usecase.Schedule(context.Background(), req); err != ErrPhysicianNotFound {
		t.Errorf("expected ErrPhysicianNotFound, got %v", err)
	}

	req = f.request(start, 30)
	req.RoomID = uuid.New()
	if _, err := f.usecase.Schedule(context.Background(), req); err != ErrRoomNotFound {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestSchedulePhysicianConflict(t *testing.T) {
	f := newSchedulingFixture(t)
	start := f.clock.Add(2 * time.Hour)

	if _, err := f.usecase.Schedule(context.Background(), f.request(start, 30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same physician, different room, overlapping slot.
	otherRoom, err := entity.NewRoom("102", "CONSULTATION", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.usecase.roomRepo.Create(context.Background(), nil, otherRoom); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := f.request(start.Add(15*time.Minute), 30)
	req.RoomID = otherRoom.ID
	if _, err := f.usecase.Schedule(context.Background(), req); err != ErrPhysicianSlotConflict {
		t.Fatalf("expected ErrPhysicianSlotConflict, got %v", err)
	}

	// Slots touching at the boundary still collide.
	req = f.request(start.Add(30*time.Minute), 30)
	req.RoomID = otherRoom.ID
	if _, err := f.usecase.Schedule(context.Background(), req); err != ErrPhysicianSlotConflict {
		t.Fatalf("expected boundary touch to conflict, got %v", err)
	}

	// A strictly later slot goes through.
	req = f.request(start.Add(31*time.Minute), 30)
	req.RoomID = otherRoom.ID
	if _, err := f.usecase.Schedule(context.Background(), req); err != nil {
		t.Fatalf("expected disjoint slot to schedule, got %v", err)
	}
}

func TestScheduleRoomConflict(t *testing.T) {
	f := newSchedulingFixture(t)
	start := f.clock.Add(2 * time.Hour)

	if _, err := f.usecase.Schedule(context.Background(), f.request(start, 30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same room, different physician, overlapping slot.
	birthDate := time.Date(1975, 6, 1, 0, 0, 0, 0, time.UTC)
	otherPhysician, err := entity.NewPhysician("Carlos", "Mendez", "34567890", birthDate, entity.BloodBNegative, "MP-54321", entity.SpecialtyNeurology)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.usecase.physicianRepo.Create(context.Background(), nil, otherPhysician); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := f.request(start.Add(10*time.Minute), 30)
	req.PhysicianID = otherPhysician.ID
	if _, err := f.usecase.Schedule(context.Background(), req); err != ErrRoomSlotConflict {
		t.Fatalf("expected ErrRoomSlotConflict, got %v", err)
	}
}

func TestCancelFreesSlotForRebooking(t *testing.T) {
	f := newSchedulingFixture(t)
	start := f.clock.Add(2 * time.Hour)

	first, err := f.usecase.Schedule(context.Background(), f.request(start, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.usecase.Schedule(context.Background(), f.request(start, 30)); err != ErrPhysicianSlotConflict {
		t.Fatalf("expected conflict before cancellation, got %v", err)
	}

	if _, err := f.usecase.Cancel(context.Background(), first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The cancelled appointment no longer blocks the slot.
	if _, err := f.usecase.Schedule(context.Background(), f.request(start, 30)); err != nil {
		t.Fatalf("expected rebooking after cancel, got %v", err)
	}
}

func TestNoShowStillBlocksSlot(t *testing.T) {
	f := newSchedulingFixture(t)
	start := f.clock.Add(2 * time.Hour)

	first, err := f.usecase.Schedule(context.Background(), f.request(start, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.usecase.MarkNoShow(context.Background(), first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.usecase.Schedule(context.Background(), f.request(start, 30)); err != ErrPhysicianSlotConflict {
		t.Fatalf("expected no-show slot to remain blocked, got %v", err)
	}
}

func TestTransitionLifecycle(t *testing.T) {
	f := newSchedulingFixture(t)
	start := f.clock.Add(2 * time.Hour)

	appointment, err := f.usecase.Schedule(context.Background(), f.request(start, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	completed, err := f.usecase.Complete(context.Background(), appointment.ID, "stable, follow up in 2 weeks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed.Status != string(entity.AppointmentCompleted) {
		t.Errorf("expected COMPLETED, got %q", completed.Status)
	}
	if completed.Observations != "stable, follow up in 2 weeks" {
		t.Errorf("unexpected observations %q", completed.Observations)
	}

	// Terminal states reject every further transition.
	if _, err := f.usecase.Cancel(context.Background(), appointment.ID); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition on cancel after complete, got %v", err)
	}
	if _, err := f.usecase.Complete(context.Background(), appointment.ID, "again"); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition on double complete, got %v", err)
	}
	if _, err := f.usecase.MarkNoShow(context.Background(), appointment.ID); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition on no-show after complete, got %v", err)
	}
}

func TestTransitionUnknownAppointment(t *testing.T) {
	f := newSchedulingFixture(t)

	if _, err := f.usecase.Cancel(context.Background(), uuid.New()); err != ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestListByParticipant(t *testing.T) {
	f := newSchedulingFixture(t)
	start := f.clock.Add(2 * time.Hour)

	for i := 0; i < 3; i++ {
		if _, err := f.usecase.Schedule(context.Background(), f.request(start.Add(time.Duration(i)*time.Hour), 30)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	byPhysician, err := f.usecase.ListByPhysician(context.Background(), f.physicianID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byPhysician.Total != 3 {
		t.Errorf("expected 3 appointments for physician, got %d", byPhysician.Total)
	}

	byRoom, err := f.usecase.ListByRoom(context.Background(), f.roomID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byRoom.Total != 3 {
		t.Errorf("expected 3 appointments for room, got %d", byRoom.Total)
	}

	byPatient, err := f.usecase.ListByPatient(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byPatient.Total != 0 {
		t.Errorf("expected no appointments for unknown patient, got %d", byPatient.Total)
	}
}
