package usecase

import (
	"context"
	"testing"

	"hospital-management-api/internal/delivery/dto"

	"github.com/google/uuid"
)

type directoryFixture struct {
	hospitals   *fakeHospitalRepo
	departments *fakeDepartmentRepo
	physicians  *fakePhysicianRepo
	patients    *fakePatientRepo
	rooms       *fakeRoomRepo
	records     *fakeClinicalRecordRepo
	hospital    HospitalUsecase
	department  DepartmentUsecase
}

func newDirectoryFixture(t *testing.T) *directoryFixture {
	t.Helper()
	log := testLogger()

	f := &directoryFixture{
		hospitals:   newFakeHospitalRepo(),
		departments: newFakeDepartmentRepo(),
		physicians:  newFakePhysicianRepo(),
		patients:    newFakePatientRepo(),
		rooms:       newFakeRoomRepo(),
		records:     newFakeClinicalRecordRepo(),
	}
	appointments := newFakeAppointmentRepo()
	f.hospital = NewHospitalUsecase(nil, log, f.hospitals, f.departments, f.physicians, f.patients, f.rooms, f.records, appointments, noopAuditService{})
	f.department = NewDepartmentUsecase(nil, log, f.departments, f.physicians, f.rooms, noopAuditService{})
	return f
}

func (f *directoryFixture) createHospital(t *testing.T, name string) uuid.UUID {
	t.Helper()
	hospital, err := f.hospital.CreateHospital(context.Background(), &dto.CreateHospitalRequest{
		Name:    name,
		Address: "Av. Libertador 1234",
		Phone:   "011-4555-0000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return hospital.ID
}

func (f *directoryFixture) createDepartment(t *testing.T, hospitalID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	department, err := f.hospital.CreateDepartment(context.Background(), hospitalID, &dto.CreateDepartmentRequest{
		Name:      name,
		Specialty: "CARDIOLOGY",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return department.ID
}

func TestRegisterPatientCreatesRecord(t *testing.T) {
	f := newDirectoryFixture(t)
	hospitalID := f.createHospital(t, "Hospital Central")

	patient, err := f.hospital.RegisterPatient(context.Background(), hospitalID, &dto.RegisterPatientRequest{
		FirstName:  "Maria",
		LastName:   "Gomez",
		NationalID: "12345678",
		BirthDate:  "1985-03-14",
		BloodType:  "O+",
		Phone:      "011-4555",
		Address:    "Some St 42",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patient.ClinicalRecord == nil {
		t.Fatal("expected clinical record in registration response")
	}
	if patient.ClinicalRecord.RecordNumber == "" {
		t.Error("expected derived record number")
	}
	if patient.HospitalID == nil || *patient.HospitalID != hospitalID {
		t.Error("expected patient registered under the hospital")
	}
}

func TestRegisterPatientBadBirthDate(t *testing.T) {
	f := newDirectoryFixture(t)
	hospitalID := f.createHospital(t, "Hospital Central")

	_, err := f.hospital.RegisterPatient(context.Background(), hospitalID, &dto.RegisterPatientRequest{
		FirstName:  "Maria",
		LastName:   "Gomez",
		NationalID: "12345678",
		BirthDate:  "14/03/1985",
		BloodType:  "O+",
		Phone:      "011-4555",
		Address:    "Some St 42",
	})
	if err != ErrInvalidBirthDate {
		t.Fatalf("expected ErrInvalidBirthDate, got %v", err)
	}
}

func TestAttachDepartmentIdempotent(t *testing.T) {
	f := newDirectoryFixture(t)
	hospitalID := f.createHospital(t, "Hospital Central")
	departmentID := f.createDepartment(t, hospitalID, "Cardiology")

	// Attaching a department that is already there is a no-op.
	if err := f.hospital.AttachDepartment(context.Background(), hospitalID, departmentID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	department := f.departments.departments[departmentID]
	if department.HospitalID == nil || *department.HospitalID != hospitalID {
		t.Fatal("expected department to stay under its hospital")
	}
}

func TestAttachDepartmentReparents(t *testing.T) {
	f := newDirectoryFixture(t)
	firstID := f.createHospital(t, "Hospital Central")
	secondID := f.createHospital(t, "Hospital Norte")
	departmentID := f.createDepartment(t, firstID, "Cardiology")

	if err := f.hospital.AttachDepartment(context.Background(), secondID, departmentID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The single owner column moves; the department never appears under two
	// hospitals.
	department := f.departments.departments[departmentID]
	if department.HospitalID == nil || *department.HospitalID != secondID {
		t.Fatal("expected department moved to the second hospital")
	}

	remaining, err := f.departments.FindByHospitalID(context.Background(), nil, firstID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no departments left under the first hospital, got %d", len(remaining))
	}
}

func TestAttachDepartmentUnknownTargets(t *testing.T) {
	f := newDirectoryFixture(t)
	hospitalID := f.createHospital(t, "Hospital Central")
	departmentID := f.createDepartment(t, hospitalID, "Cardiology")

	if err := f.hospital.AttachDepartment(context.Background(), uuid.New(), departmentID); err != ErrHospitalNotFound {
		t.Errorf("expected ErrHospitalNotFound, got %v", err)
	}
	if err := f.hospital.AttachDepartment(context.Background(), hospitalID, uuid.New()); err != ErrDepartmentNotFound {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestAssignPhysicianReparents(t *testing.T) {
	f := newDirectoryFixture(t)
	hospitalID := f.createHospital(t, "Hospital Central")
	cardiologyID := f.createDepartment(t, hospitalID, "Cardiology")
	neurologyID := f.createDepartment(t, hospitalID, "Neurology")

	physician, err := f.department.RegisterPhysician(context.Background(), cardiologyID, &dto.RegisterPhysicianRequest{
		FirstName:     "Laura",
		LastName:      "Reyes",
		NationalID:    "23456789",
		BirthDate:     "1978-09-02",
		BloodType:     "A+",
		LicenseNumber: "MP-12345",
		Specialty:     "CARDIOLOGY",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-assigning to the same department is a no-op.
	if err := f.department.AssignPhysician(context.Background(), cardiologyID, physician.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.department.AssignPhysician(context.Background(), neurologyID, physician.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	moved := f.physicians.physicians[physician.ID]
	if moved.DepartmentID == nil || *moved.DepartmentID != neurologyID {
		t.Fatal("expected physician moved to the new department")
	}
}

func TestAdmitPatientIdempotent(t *testing.T) {
	f := newDirectoryFixture(t)
	firstID := f.createHospital(t, "Hospital Central")
	secondID := f.createHospital(t, "Hospital Norte")

	patient, err := f.hospital.RegisterPatient(context.Background(), firstID, &dto.RegisterPatientRequest{
		FirstName:  "Maria",
		LastName:   "Gomez",
		NationalID: "12345678",
		BirthDate:  "1985-03-14",
		BloodType:  "O+",
		Phone:      "011-4555",
		Address:    "Some St 42",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.hospital.AdmitPatient(context.Background(), firstID, patient.ID); err != nil {
		t.Fatalf("expected repeat admission to be a no-op, got %v", err)
	}
	if err := f.hospital.AdmitPatient(context.Background(), secondID, patient.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	moved := f.patients.patients[patient.ID]
	if moved.HospitalID == nil || *moved.HospitalID != secondID {
		t.Fatal("expected patient moved to the second hospital")
	}
}
