// Package validate checks creation inputs for structural defects.
// Failures are returned as field/message values, never as errors; the
// caller decides whether to block or warn.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lkaestner/tourplan/internal/tour"
)

// Task duration bounds for user-entered tasks, in minutes. Derived tasks
// such as auto-inserted travel segments are exempt from the lower bound.
const (
	MinTaskDuration = 5
	MaxTaskDuration = 480
)

// FieldError is a single validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^[+\d\s()-]+$`)
)

// IsValidClock reports whether s is a 24-hour "HH:MM" clock time.
func IsValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

// IsValidDate reports whether s is a YYYY-MM-DD string naming a real
// calendar date.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// TaskInput is the user-facing shape for creating or editing a task.
type TaskInput struct {
	TourID            string
	ResidentID        string
	Type              tour.TaskType
	ScheduledTime     time.Time
	EstimatedDuration int
	Derived           bool // engine-generated, exempt from the lower duration bound
}

// Task validates a task creation input.
func Task(in TaskInput) []FieldError {
	var errs []FieldError

	if in.ResidentID == "" {
		errs = append(errs, FieldError{Field: "residentId", Message: "Bewohner erforderlich"})
	}
	if in.ScheduledTime.IsZero() {
		errs = append(errs, FieldError{Field: "scheduledTime", Message: "Zeitpunkt erforderlich"})
	}

	minDuration := MinTaskDuration
	if in.Derived {
		minDuration = 1
	}
	if in.EstimatedDuration < minDuration || in.EstimatedDuration > MaxTaskDuration {
		errs = append(errs, FieldError{
			Field:   "estimatedDuration",
			Message: fmt.Sprintf("Dauer muss zwischen %d und %d Minuten liegen", MinTaskDuration, MaxTaskDuration),
		})
	}

	return errs
}

// TourInput is the user-facing shape for creating a tour.
type TourInput struct {
	EmployeeID   string
	Date         string // YYYY-MM-DD
	Shift        tour.ShiftType
	PlannedStart string // "HH:MM"
	PlannedEnd   string // "HH:MM"
}

// Tour validates a tour creation input.
func Tour(in TourInput) []FieldError {
	var errs []FieldError

	if in.EmployeeID == "" {
		errs = append(errs, FieldError{Field: "employeeId", Message: "Mitarbeiter erforderlich"})
	}
	if in.Date == "" {
		errs = append(errs, FieldError{Field: "date", Message: "Datum erforderlich"})
	} else if !IsValidDate(in.Date) {
		errs = append(errs, FieldError{Field: "date", Message: "Ungültiges Datum"})
	}
	if in.Shift == "" {
		errs = append(errs, FieldError{Field: "shift", Message: "Schicht erforderlich"})
	}

	switch {
	case in.PlannedStart == "" || in.PlannedEnd == "":
		errs = append(errs, FieldError{Field: "time", Message: "Start- und Endzeit erforderlich"})
	case !IsValidClock(in.PlannedStart) || !IsValidClock(in.PlannedEnd):
		errs = append(errs, FieldError{Field: "time", Message: "Zeit muss im Format HH:MM sein"})
	case tour.MinutesBetween(in.PlannedStart, in.PlannedEnd) <= 0:
		errs = append(errs, FieldError{Field: "time", Message: "Endzeit muss nach Startzeit liegen"})
	}

	return errs
}

// EmployeeInput is the user-facing shape for creating an employee.
type EmployeeInput struct {
	Name           string
	Qualifications []tour.Qualification
	MaxHoursPerDay int
	Phone          string
}

// Employee validates an employee creation input.
func Employee(in EmployeeInput) []FieldError {
	var errs []FieldError

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, FieldError{Field: "name", Message: "Name muss mindestens 2 Zeichen lang sein"})
	}
	if len(in.Qualifications) == 0 {
		errs = append(errs, FieldError{Field: "qualifications", Message: "Mindestens eine Qualifikation erforderlich"})
	}
	if in.MaxHoursPerDay < 1 || in.MaxHoursPerDay > 12 {
		errs = append(errs, FieldError{Field: "maxHoursPerDay", Message: "Max. Arbeitsstunden muss zwischen 1 und 12 liegen"})
	}
	if in.Phone == "" || !phonePattern.MatchString(in.Phone) {
		errs = append(errs, FieldError{Field: "contact.phone", Message: "Gültige Telefonnummer erforderlich"})
	}

	return errs
}

// ResidentInput is the user-facing shape for creating a resident.
type ResidentInput struct {
	Name        string
	DateOfBirth string // YYYY-MM-DD
	CareLevel   int
	Address     tour.Address
}

// Resident validates a resident creation input.
func Resident(in ResidentInput) []FieldError {
	var errs []FieldError

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, FieldError{Field: "name", Message: "Name muss mindestens 2 Zeichen lang sein"})
	}

	if in.DateOfBirth == "" {
		errs = append(errs, FieldError{Field: "dateOfBirth", Message: "Geburtsdatum erforderlich"})
	} else if !IsValidDate(in.DateOfBirth) {
		errs = append(errs, FieldError{Field: "dateOfBirth", Message: "Ungültiges Geburtsdatum"})
	}

	if in.CareLevel < 1 || in.CareLevel > 5 {
		errs = append(errs, FieldError{Field: "careLevel", Message: "Pflegegrad muss zwischen 1 und 5 liegen"})
	}

	if in.Address.Street == "" || in.Address.City == "" || in.Address.ZipCode == "" {
		errs = append(errs, FieldError{Field: "address", Message: "Vollständige Adresse erforderlich"})
	}

	return errs
}
