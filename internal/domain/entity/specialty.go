package entity

import "strings"

// Specialty enumerates the medical specialties a department or physician can
// be assigned to.
type Specialty string

const (
	SpecialtyCardiology      Specialty = "CARDIOLOGY"
	SpecialtyPediatrics      Specialty = "PEDIATRICS"
	SpecialtyTraumatology    Specialty = "TRAUMATOLOGY"
	SpecialtyNeurology       Specialty = "NEUROLOGY"
	SpecialtyOncology        Specialty = "ONCOLOGY"
	SpecialtyGeneralMedicine Specialty = "GENERAL_MEDICINE"
)

var specialties = map[Specialty]bool{
	SpecialtyCardiology:      true,
	SpecialtyPediatrics:      true,
	SpecialtyTraumatology:    true,
	SpecialtyNeurology:       true,
	SpecialtyOncology:        true,
	SpecialtyGeneralMedicine: true,
}

func ParseSpecialty(s string) (Specialty, error) {
	sp := Specialty(strings.ToUpper(strings.TrimSpace(s)))
	if !specialties[sp] {
		return "", newValidationError("specialty", "unknown specialty")
	}
	return sp, nil
}
