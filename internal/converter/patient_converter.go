package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		FullName:       patient.FullName(),
		NationalID:     patient.NationalID,
		BirthDate:      patient.BirthDate.Format(birthDateLayout),
		BloodType:      string(patient.BloodType),
		Phone:          patient.Phone,
		Address:        patient.Address,
		HospitalID:     patient.HospitalID,
		ClinicalRecord: ClinicalRecordToResponse(patient.ClinicalRecord),
		CreatedAt:      patient.CreatedAt,
	}
}

// ClinicalRecordToResponse converts a ClinicalRecord entity to its DTO
func ClinicalRecordToResponse(record *entity.ClinicalRecord) *dto.ClinicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.ClinicalRecordResponse{
		ID:           record.ID,
		RecordNumber: record.RecordNumber,
		PatientID:    record.PatientID,
		Diagnoses:    record.EntriesOfKind(entity.EntryDiagnosis),
		Treatments:   record.EntriesOfKind(entity.EntryTreatment),
		Allergies:    record.EntriesOfKind(entity.EntryAllergy),
		CreatedAt:    record.CreatedAt,
	}
}
