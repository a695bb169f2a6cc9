// Package tour defines the core domain types for tourplan: employees,
// residents, tours and the tasks scheduled inside them.
package tour

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Domain errors.
var (
	ErrTourNotFound = errors.New("tour not found")
	ErrTaskNotFound = errors.New("task not found")
)

// DrivingResidentID is the sentinel resident id marking a travel segment
// between two visits instead of a care visit.
const DrivingResidentID = "driving"

// Qualification is a caregiver certification.
type Qualification string

const (
	QualMedikamente          Qualification = "medikamente"
	QualWundversorgung       Qualification = "wundversorgung"
	QualGrundpflege          Qualification = "grundpflege"
	QualBehandlungspflege    Qualification = "behandlungspflege"
	QualDemenzbetreuung      Qualification = "demenzbetreuung"
	QualPalliativpflege      Qualification = "palliativpflege"
	QualInsulinverabreichung Qualification = "insulinverabreichung"
)

// TaskType is the category of a care task.
type TaskType string

const (
	TypeMedikamente        TaskType = "medikamente"
	TypeKoerperpflege      TaskType = "koerperpflege"
	TypeMobilisation       TaskType = "mobilisation"
	TypeWundversorgung     TaskType = "wundversorgung"
	TypeErnaehrung         TaskType = "ernaehrung"
	TypeDokumentation      TaskType = "dokumentation"
	TypeArztbesuch         TaskType = "arztbesuch"
	TypeFreizeitgestaltung TaskType = "freizeitgestaltung"
)

// TaskStatus is the state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// TourStatus is the state of a tour.
type TourStatus string

const (
	TourPlanned   TourStatus = "planned"
	TourActive    TourStatus = "active"
	TourCompleted TourStatus = "completed"
	TourCancelled TourStatus = "cancelled"
)

// Address is a resident's home address.
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
}

// ContactInfo holds phone and email contact data.
type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// TimeSlot is an availability window within a day.
type TimeSlot struct {
	Start string    `json:"start"` // "HH:MM"
	End   string    `json:"end"`   // "HH:MM"
	Shift ShiftType `json:"shiftType,omitempty"`
}

// Schedule holds availability windows per weekday.
type Schedule struct {
	Monday    []TimeSlot `json:"monday"`
	Tuesday   []TimeSlot `json:"tuesday"`
	Wednesday []TimeSlot `json:"wednesday"`
	Thursday  []TimeSlot `json:"thursday"`
	Friday    []TimeSlot `json:"friday"`
	Saturday  []TimeSlot `json:"saturday"`
	Sunday    []TimeSlot `json:"sunday"`
}

// Employee is a caregiver. Read-only from the engine's perspective.
type Employee struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Qualifications []Qualification `json:"qualifications"`
	Availability   Schedule        `json:"availability"`
	MaxHoursPerDay int             `json:"maxHoursPerDay"`
	Contact        ContactInfo     `json:"contact"`
	Status         string          `json:"status"` // active, sick, vacation, inactive
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CareRequirement describes a recurring care need of a resident.
type CareRequirement struct {
	Type                  TaskType      `json:"type"`
	Frequency             string        `json:"frequency"` // daily, weekly, monthly, as_needed
	PreferredTime         string        `json:"preferredTime,omitempty"`
	Duration              int           `json:"duration"` // minutes
	RequiredQualification Qualification `json:"requiredQualification"`
	Notes                 string        `json:"notes,omitempty"`
}

// MedicalRecord holds the medical data consumed by planning.
type MedicalRecord struct {
	Allergies     []string `json:"allergies"`
	Diagnoses     []string `json:"diagnoses"`
	MobilityLevel int      `json:"mobilityLevel"` // 1 (independent) to 5
}

// Resident is a care recipient. Read-only from the engine's perspective.
type Resident struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	DateOfBirth  string            `json:"dateOfBirth"` // YYYY-MM-DD
	Address      Address           `json:"address"`
	CareLevel    int               `json:"careLevel"` // 1-5
	Requirements []CareRequirement `json:"requirements"`
	MedicalInfo  MedicalRecord     `json:"medicalInfo"`
	Contact      ContactInfo       `json:"contact"`
	RoomNumber   string            `json:"roomNumber,omitempty"`
	Status       string            `json:"status"` // active, inactive, deceased
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// Task is one unit of work inside a tour: a visit at a resident, or a
// travel segment when ResidentID is DrivingResidentID.
type Task struct {
	ID                    string        `json:"id"`
	TourID                string        `json:"tourId"`
	ResidentID            string        `json:"residentId"`
	Type                  TaskType      `json:"type"`
	ScheduledTime         time.Time     `json:"scheduledTime"`
	EstimatedDuration     int           `json:"estimatedDuration"` // minutes, > 0
	RequiredQualification Qualification `json:"requiredQualification"`
	Status                TaskStatus    `json:"status"`
	Notes                 string        `json:"notes,omitempty"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

// End returns the instant the task finishes.
func (t *Task) End() time.Time {
	return t.ScheduledTime.Add(time.Duration(t.EstimatedDuration) * time.Minute)
}

// IsDriving returns true if the task is a travel segment.
func (t *Task) IsDriving() bool {
	return t.ResidentID == DrivingResidentID
}

// Tour is one employee's set of tasks for one calendar date.
// A tour exclusively owns its tasks.
type Tour struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	Date         string     `json:"date"` // YYYY-MM-DD
	Shift        ShiftType  `json:"shift"`
	Tasks        []Task     `json:"tasks"`
	Status       TourStatus `json:"status"`
	PlannedStart string     `json:"plannedStart"` // "HH:MM"
	PlannedEnd   string     `json:"plannedEnd"`   // "HH:MM"
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// SortTasks orders the tour's tasks ascending by scheduled time.
func (t *Tour) SortTasks() {
	slices.SortFunc(t.Tasks, func(a, b Task) int {
		return a.ScheduledTime.Compare(b.ScheduledTime)
	})
}

// FindTask returns the index of the task with the given id, or -1.
func (t *Tour) FindTask(taskID string) int {
	return slices.IndexFunc(t.Tasks, func(task Task) bool {
		return task.ID == taskID
	})
}

// RemoveTask deletes the task with the given id from the tour.
// Returns the removed task and true, or a zero task and false.
func (t *Tour) RemoveTask(taskID string) (Task, bool) {
	i := t.FindTask(taskID)
	if i < 0 {
		return Task{}, false
	}
	removed := t.Tasks[i]
	t.Tasks = append(t.Tasks[:i:i], t.Tasks[i+1:]...)
	return removed, true
}

// CareMinutes sums the estimated duration of all care tasks,
// excluding travel segments.
func (t *Tour) CareMinutes() int {
	total := 0
	for _, task := range t.Tasks {
		if !task.IsDriving() {
			total += task.EstimatedDuration
		}
	}
	return total
}

// NewID generates an opaque entity identifier.
func NewID() string {
	return uuid.NewString()
}
