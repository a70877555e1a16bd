package usecase

import (
	"context"
	"errors"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("clinical record not found")

// ClinicalRecordUsecase appends best-effort entries to patient records.
// Unlike the directory constructors, blank input here is dropped silently.
type ClinicalRecordUsecase interface {
	AddDiagnosis(ctx context.Context, patientID uuid.UUID, text string) (*dto.ClinicalRecordResponse, error)
	AddTreatment(ctx context.Context, patientID uuid.UUID, text string) (*dto.ClinicalRecordResponse, error)
	AddAllergy(ctx context.Context, patientID uuid.UUID, text string) (*dto.ClinicalRecordResponse, error)
	GetRecord(ctx context.Context, patientID uuid.UUID) (*dto.ClinicalRecordResponse, error)
}

type clinicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.ClinicalRecordRepository
	auditService service.AuditService
}

func NewClinicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.ClinicalRecordRepository,
	auditService service.AuditService,
) ClinicalRecordUsecase {
	return &clinicalRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		auditService: auditService,
	}
}

func (u *clinicalRecordUsecase) AddDiagnosis(ctx context.Context, patientID uuid.UUID, text string) (*dto.ClinicalRecordResponse, error) {
	return u.addEntry(ctx, patientID, entity.EntryDiagnosis, text)
}

func (u *clinicalRecordUsecase) AddTreatment(ctx context.Context, patientID uuid.UUID, text string) (*dto.ClinicalRecordResponse, error) {
	return u.addEntry(ctx, patientID, entity.EntryTreatment, text)
}

func (u *clinicalRecordUsecase) AddAllergy(ctx context.Context, patientID uuid.UUID, text string) (*dto.ClinicalRecordResponse, error) {
	return u.addEntry(ctx, patientID, entity.EntryAllergy, text)
}

func (u *clinicalRecordUsecase) addEntry(ctx context.Context, patientID uuid.UUID, kind entity.ClinicalEntryKind, text string) (*dto.ClinicalRecordResponse, error) {
	record, err := u.recordRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find clinical record for patient %s: %+v", patientID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	var entry *entity.ClinicalEntry
	switch kind {
	case entity.EntryDiagnosis:
		entry = record.AddDiagnosis(text)
	case entity.EntryTreatment:
		entry = record.AddTreatment(text)
	case entity.EntryAllergy:
		entry = record.AddAllergy(text)
	}

	if entry == nil {
		// Blank clinical input is dropped, not rejected.
		u.log.Debugf("Ignoring blank %s entry for record %s", kind, record.RecordNumber)
		return converter.ClinicalRecordToResponse(record), nil
	}

	if err := u.recordRepo.AppendEntry(ctx, u.db, entry); err != nil {
		u.log.Warnf("Failed to append %s entry to record %s: %+v", kind, record.RecordNumber, err)
		return nil, err
	}

	u.auditService.LogAction(ctx, u.db, entity.AuditActionRecordEntryAppend, "clinical_record", record.ID.String(), entity.JSON{
		"kind": string(kind),
	})

	return converter.ClinicalRecordToResponse(record), nil
}

func (u *clinicalRecordUsecase) GetRecord(ctx context.Context, patientID uuid.UUID) (*dto.ClinicalRecordResponse, error) {
	record, err := u.recordRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find clinical record for patient %s: %+v", patientID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	return converter.ClinicalRecordToResponse(record), nil
}
