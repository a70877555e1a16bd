package usecase

import (
	"context"
	"io"
	"sort"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// In-memory fakes backing the usecase tests. The db parameter is ignored
// everywhere; the real implementations are the only place gorm is touched.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type noopAuditService struct{}

func (noopAuditService) LogAction(ctx context.Context, db *gorm.DB, action string, entityName string, entityID string, details interface{}) error {
	return nil
}

type fakeHospitalRepo struct {
	hospitals map[uuid.UUID]*entity.Hospital
}

func newFakeHospitalRepo() *fakeHospitalRepo {
	return &fakeHospitalRepo{hospitals: make(map[uuid.UUID]*entity.Hospital)}
}

func (r *fakeHospitalRepo) Create(ctx context.Context, db *gorm.DB, hospital *entity.Hospital) error {
	if hospital.ID == uuid.Nil {
		hospital.ID = uuid.New()
	}
	r.hospitals[hospital.ID] = hospital
	return nil
}

func (r *fakeHospitalRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	return r.hospitals[id], nil
}

func (r *fakeHospitalRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Hospital, error) {
	var all []entity.Hospital
	for _, h := range r.hospitals {
		all = append(all, *h)
	}
	return all, nil
}

func (r *fakeHospitalRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.hospitals[id]; !ok {
		return 0, nil
	}
	delete(r.hospitals, id)
	return 1, nil
}

type fakeDepartmentRepo struct {
	departments map[uuid.UUID]*entity.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[uuid.UUID]*entity.Department)}
}

func (r *fakeDepartmentRepo) Create(ctx context.Context, db *gorm.DB, department *entity.Department) error {
	if department.ID == uuid.Nil {
		department.ID = uuid.New()
	}
	r.departments[department.ID] = department
	return nil
}

func (r *fakeDepartmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Department, error) {
	return r.departments[id], nil
}

func (r *fakeDepartmentRepo) FindByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) ([]entity.Department, error) {
	var out []entity.Department
	for _, d := range r.departments {
		if d.HospitalID != nil && *d.HospitalID == hospitalID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDepartmentRepo) SetHospital(ctx context.Context, db *gorm.DB, departmentID, hospitalID uuid.UUID) error {
	if d, ok := r.departments[departmentID]; ok {
		h := hospitalID
		d.HospitalID = &h
	}
	return nil
}

func (r *fakeDepartmentRepo) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	for id, d := range r.departments {
		if d.HospitalID != nil && *d.HospitalID == hospitalID {
			delete(r.departments, id)
		}
	}
	return nil
}

type fakePhysicianRepo struct {
	physicians map[uuid.UUID]*entity.Physician
}

func newFakePhysicianRepo() *fakePhysicianRepo {
	return &fakePhysicianRepo{physicians: make(map[uuid.UUID]*entity.Physician)}
}

func (r *fakePhysicianRepo) Create(ctx context.Context, db *gorm.DB, physician *entity.Physician) error {
	if physician.ID == uuid.Nil {
		physician.ID = uuid.New()
	}
	r.physicians[physician.ID] = physician
	return nil
}

func (r *fakePhysicianRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Physician, error) {
	return r.physicians[id], nil
}

func (r *fakePhysicianRepo) FindBySpecialty(ctx context.Context, db *gorm.DB, specialty entity.Specialty) ([]entity.Physician, error) {
	var out []entity.Physician
	for _, p := range r.physicians {
		if p.Specialty == specialty {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePhysicianRepo) SetDepartment(ctx context.Context, db *gorm.DB, physicianID, departmentID uuid.UUID) error {
	if p, ok := r.physicians[physicianID]; ok {
		d := departmentID
		p.DepartmentID = &d
	}
	return nil
}

func (r *fakePhysicianRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return int64(len(r.physicians)), nil
}

func (r *fakePhysicianRepo) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	return nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*entity.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]*entity.Patient)}
}

func (r *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	if patient.ClinicalRecord != nil {
		patient.ClinicalRecord.PatientID = patient.ID
	}
	r.patients[patient.ID] = patient
	return nil
}

func (r *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return r.patients[id], nil
}

func (r *fakePatientRepo) SetHospital(ctx context.Context, db *gorm.DB, patientID, hospitalID uuid.UUID) error {
	if p, ok := r.patients[patientID]; ok {
		h := hospitalID
		p.HospitalID = &h
	}
	return nil
}

func (r *fakePatientRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return int64(len(r.patients)), nil
}

func (r *fakePatientRepo) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	for id, p := range r.patients {
		if p.HospitalID != nil && *p.HospitalID == hospitalID {
			delete(r.patients, id)
		}
	}
	return nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func (r *fakeRoomRepo) Create(ctx context.Context, db *gorm.DB, room *entity.Room) error {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	return r.rooms[id], nil
}

func (r *fakeRoomRepo) FindByDepartmentID(ctx context.Context, db *gorm.DB, departmentID uuid.UUID) ([]entity.Room, error) {
	var out []entity.Room
	for _, room := range r.rooms {
		if room.DepartmentID == departmentID {
			out = append(out, *room)
		}
	}
	return out, nil
}

func (r *fakeRoomRepo) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	return nil
}

type fakeClinicalRecordRepo struct {
	records map[uuid.UUID]*entity.ClinicalRecord
}

func newFakeClinicalRecordRepo() *fakeClinicalRecordRepo {
	return &fakeClinicalRecordRepo{records: make(map[uuid.UUID]*entity.ClinicalRecord)}
}

func (r *fakeClinicalRecordRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) (*entity.ClinicalRecord, error) {
	return r.records[patientID], nil
}

func (r *fakeClinicalRecordRepo) AppendEntry(ctx context.Context, db *gorm.DB, entry *entity.ClinicalEntry) error {
	return nil
}

func (r *fakeClinicalRecordRepo) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return r.appointments[id], nil
}

func (r *fakeAppointmentRepo) FindPhysicianConflict(ctx context.Context, db *gorm.DB, physicianID uuid.UUID, start, end time.Time) (*entity.Appointment, error) {
	for _, a := range r.appointments {
		if a.PhysicianID == physicianID && a.BlocksSlot() && a.Overlaps(start, end) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindRoomConflict(ctx context.Context, db *gorm.DB, roomID uuid.UUID, start, end time.Time) (*entity.Appointment, error) {
	for _, a := range r.appointments {
		if a.RoomID == roomID && a.BlocksSlot() && a.Overlaps(start, end) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) TransitionFromScheduled(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, observations *string) (int64, error) {
	a, ok := r.appointments[id]
	if !ok || a.Status != entity.AppointmentScheduled {
		return 0, nil
	}
	a.Status = status
	if observations != nil {
		a.Observations = *observations
	}
	return 1, nil
}

func (r *fakeAppointmentRepo) FindByPhysicianID(ctx context.Context, db *gorm.DB, physicianID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.PhysicianID == physicianID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByRoomID(ctx context.Context, db *gorm.DB, roomID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.RoomID == roomID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindAllOrdered(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeAppointmentRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return int64(len(r.appointments)), nil
}

func (r *fakeAppointmentRepo) DeleteByHospitalID(ctx context.Context, db *gorm.DB, hospitalID uuid.UUID) error {
	return nil
}
