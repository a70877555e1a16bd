package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClinicalEntryKind labels one append-only record entry.
type ClinicalEntryKind string

const (
	EntryDiagnosis ClinicalEntryKind = "diagnosis"
	EntryTreatment ClinicalEntryKind = "treatment"
	EntryAllergy   ClinicalEntryKind = "allergy"
)

// ClinicalRecord accumulates diagnoses, treatments, and allergies for one
// patient. Entries are append-only; the record is destroyed only together
// with its patient.
type ClinicalRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecordNumber string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"record_number"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"patient_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Entries []ClinicalEntry `gorm:"foreignKey:RecordID" json:"entries,omitempty"`
}

func (ClinicalRecord) TableName() string {
	return "clinical_records"
}

// ClinicalEntry is one line of a clinical record.
type ClinicalEntry struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	RecordID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"record_id"`
	Kind      ClinicalEntryKind `gorm:"type:varchar(20);not null" json:"kind"`
	Text      string            `gorm:"type:varchar(200);not null" json:"text"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (ClinicalEntry) TableName() string {
	return "clinical_entries"
}

// newClinicalRecord derives the record number from the patient's national id
// and the creation year. The number never changes afterwards.
func newClinicalRecord(nationalID string, createdAt time.Time) *ClinicalRecord {
	return &ClinicalRecord{
		RecordNumber: fmt.Sprintf("HC-%s-%d", nationalID, createdAt.Year()),
		CreatedAt:    createdAt,
	}
}

// AddDiagnosis appends a diagnosis entry. Blank input is silently dropped
// and nil is returned; clinical notes are best-effort, unlike identity data.
func (r *ClinicalRecord) AddDiagnosis(text string) *ClinicalEntry {
	return r.append(EntryDiagnosis, text)
}

// AddTreatment appends a treatment entry, ignoring blank input.
func (r *ClinicalRecord) AddTreatment(text string) *ClinicalEntry {
	return r.append(EntryTreatment, text)
}

// AddAllergy appends an allergy entry, ignoring blank input.
func (r *ClinicalRecord) AddAllergy(text string) *ClinicalEntry {
	return r.append(EntryAllergy, text)
}

func (r *ClinicalRecord) append(kind ClinicalEntryKind, text string) *ClinicalEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	entry := &ClinicalEntry{
		RecordID: r.ID,
		Kind:     kind,
		Text:     text,
	}
	r.Entries = append(r.Entries, *entry)
	return entry
}

// EntriesOfKind filters the loaded entries by kind, preserving append order.
func (r *ClinicalRecord) EntriesOfKind(kind ClinicalEntryKind) []string {
	var texts []string
	for _, e := range r.Entries {
		if e.Kind == kind {
			texts = append(texts, e.Text)
		}
	}
	return texts
}
