package entity

import (
	"regexp"
	"strings"
	"time"
)

// BloodType follows the ABO/Rh naming used across the system.
type BloodType string

const (
	BloodAPositive  BloodType = "A+"
	BloodANegative  BloodType = "A-"
	BloodBPositive  BloodType = "B+"
	BloodBNegative  BloodType = "B-"
	BloodABPositive BloodType = "AB+"
	BloodABNegative BloodType = "AB-"
	BloodOPositive  BloodType = "O+"
	BloodONegative  BloodType = "O-"
)

var bloodTypes = map[BloodType]bool{
	BloodAPositive: true, BloodANegative: true,
	BloodBPositive: true, BloodBNegative: true,
	BloodABPositive: true, BloodABNegative: true,
	BloodOPositive: true, BloodONegative: true,
}

// ParseBloodType validates a blood type string coming from transport input.
func ParseBloodType(s string) (BloodType, error) {
	bt := BloodType(strings.ToUpper(strings.TrimSpace(s)))
	if !bloodTypes[bt] {
		return "", newValidationError("blood_type", "unknown blood type")
	}
	return bt, nil
}

var nationalIDPattern = regexp.MustCompile(`^\d{7,8}$`)

// Person is the identity shape shared by physicians and patients. It is
// embedded into the owning tables rather than stored on its own.
type Person struct {
	FirstName  string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(50);not null" json:"last_name"`
	NationalID string    `gorm:"type:varchar(8);not null;uniqueIndex" json:"national_id"`
	BirthDate  time.Time `gorm:"type:date;not null" json:"birth_date"`
	BloodType  BloodType `gorm:"type:varchar(3);not null" json:"blood_type"`
}

func newPerson(firstName, lastName, nationalID string, birthDate time.Time, bloodType BloodType) (Person, error) {
	if err := requireText("first_name", firstName); err != nil {
		return Person{}, err
	}
	if err := requireText("last_name", lastName); err != nil {
		return Person{}, err
	}
	if !nationalIDPattern.MatchString(nationalID) {
		return Person{}, newValidationError("national_id", "must be 7 or 8 digits")
	}
	if birthDate.IsZero() {
		return Person{}, newValidationError("birth_date", "is required")
	}
	if !bloodTypes[bloodType] {
		return Person{}, newValidationError("blood_type", "unknown blood type")
	}
	return Person{
		FirstName:  strings.TrimSpace(firstName),
		LastName:   strings.TrimSpace(lastName),
		NationalID: nationalID,
		BirthDate:  birthDate,
		BloodType:  bloodType,
	}, nil
}

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Person) Age(now time.Time) int {
	return now.Year() - p.BirthDate.Year()
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return newValidationError(field, "cannot be blank")
	}
	return nil
}
