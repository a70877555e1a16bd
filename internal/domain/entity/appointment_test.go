package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestAppointment(t *testing.T, start time.Time, durationMinutes int) *Appointment {
	t.Helper()
	appointment, err := NewAppointment(uuid.New(), uuid.New(), uuid.New(), start, durationMinutes, decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return appointment
}

func TestNewAppointmentValidation(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	if _, err := NewAppointment(uuid.Nil, uuid.New(), uuid.New(), start, 30, decimal.NewFromInt(100)); err == nil {
		t.Error("expected missing patient to be rejected")
	}
	if _, err := NewAppointment(uuid.New(), uuid.Nil, uuid.New(), start, 30, decimal.NewFromInt(100)); err == nil {
		t.Error("expected missing physician to be rejected")
	}
	if _, err := NewAppointment(uuid.New(), uuid.New(), uuid.Nil, start, 30, decimal.NewFromInt(100)); err == nil {
		t.Error("expected missing room to be rejected")
	}
	if _, err := NewAppointment(uuid.New(), uuid.New(), uuid.New(), time.Time{}, 30, decimal.NewFromInt(100)); err == nil {
		t.Error("expected zero start time to be rejected")
	}
	if _, err := NewAppointment(uuid.New(), uuid.New(), uuid.New(), start, 0, decimal.NewFromInt(100)); err == nil {
		t.Error("expected zero duration to be rejected")
	}
	if _, err := NewAppointment(uuid.New(), uuid.New(), uuid.New(), start, 30, decimal.NewFromInt(-1)); err == nil {
		t.Error("expected negative cost to be rejected")
	}

	appointment := newTestAppointment(t, start, 30)
	if appointment.Status != AppointmentScheduled {
		t.Errorf("expected new appointment to be SCHEDULED, got %q", appointment.Status)
	}
	if got := appointment.EndTime(); !got.Equal(start.Add(30 * time.Minute)) {
		t.Errorf("expected end time %v, got %v", start.Add(30*time.Minute), got)
	}
}

func TestAppointmentOverlaps(t *testing.T) {
	base := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	appointment := newTestAppointment(t, base, 30) // occupies [10:00, 10:30]

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical slot", base, base.Add(30 * time.Minute), true},
		{"contained", base.Add(10 * time.Minute), base.Add(20 * time.Minute), true},
		{"overlaps head", base.Add(-15 * time.Minute), base.Add(15 * time.Minute), true},
		{"overlaps tail", base.Add(15 * time.Minute), base.Add(45 * time.Minute), true},
		// The interval is closed: touching endpoints still collide.
		{"touches end", base.Add(30 * time.Minute), base.Add(60 * time.Minute), true},
		{"touches start", base.Add(-30 * time.Minute), base, true},
		{"before", base.Add(-60 * time.Minute), base.Add(-31 * time.Minute), false},
		{"after", base.Add(31 * time.Minute), base.Add(60 * time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appointment.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestAppointmentTransitions(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	t.Run("complete", func(t *testing.T) {
		appointment := newTestAppointment(t, start, 30)
		if err := appointment.Complete("stable, follow up in 2 weeks"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if appointment.Status != AppointmentCompleted {
			t.Errorf("expected COMPLETED, got %q", appointment.Status)
		}
		if appointment.Observations == "" {
			t.Error("expected observations to be attached")
		}
		if err := appointment.Cancel(); err != ErrInvalidTransition {
			t.Errorf("expected ErrInvalidTransition after completion, got %v", err)
		}
	})

	t.Run("cancel frees slot", func(t *testing.T) {
		appointment := newTestAppointment(t, start, 30)
		if !appointment.BlocksSlot() {
			t.Error("expected scheduled appointment to block its slot")
		}
		if err := appointment.Cancel(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if appointment.BlocksSlot() {
			t.Error("expected cancelled appointment to free its slot")
		}
		if err := appointment.Complete("too late"); err != ErrInvalidTransition {
			t.Errorf("expected ErrInvalidTransition after cancel, got %v", err)
		}
	})

	t.Run("no-show still blocks slot", func(t *testing.T) {
		appointment := newTestAppointment(t, start, 30)
		if err := appointment.MarkNoShow(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !appointment.BlocksSlot() {
			t.Error("expected no-show appointment to keep blocking its slot")
		}
		if err := appointment.MarkNoShow(); err != ErrInvalidTransition {
			t.Errorf("expected ErrInvalidTransition on second no-show, got %v", err)
		}
	})
}
