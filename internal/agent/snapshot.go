// Package agent implements the planning-assistant contract: a small
// fixed set of actions (create tour, add/update/delete task, delete
// tour) applied to an in-memory snapshot of the tours collection.
package agent

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lkaestner/tourplan/internal/tour"
	"github.com/lkaestner/tourplan/internal/validate"
)

// ErrInvalidInput wraps validation failures on action arguments.
var ErrInvalidInput = errors.New("invalid input")

// Snapshot is an immutable view of the tours collection. Every mutating
// operation returns a new snapshot; the receiver is never changed.
type Snapshot struct {
	Tours []tour.Tour
}

// Clone deep-copies the snapshot including per-tour task slices.
func (s Snapshot) Clone() Snapshot {
	next := Snapshot{Tours: make([]tour.Tour, len(s.Tours))}
	for i, t := range s.Tours {
		next.Tours[i] = t
		next.Tours[i].Tasks = make([]tour.Task, len(t.Tasks))
		copy(next.Tours[i].Tasks, t.Tasks)
	}
	return next
}

// FindTour returns the index of the tour with the given id, or -1.
func (s Snapshot) FindTour(tourID string) int {
	for i := range s.Tours {
		if s.Tours[i].ID == tourID {
			return i
		}
	}
	return -1
}

// findTask returns the tour index and task index of the task, or -1, -1.
func (s Snapshot) findTask(taskID string) (int, int) {
	for i := range s.Tours {
		if j := s.Tours[i].FindTask(taskID); j >= 0 {
			return i, j
		}
	}
	return -1, -1
}

// ToursForDate returns the tours scheduled on a YYYY-MM-DD date.
func (s Snapshot) ToursForDate(date string) []tour.Tour {
	var result []tour.Tour
	for _, t := range s.Tours {
		if t.Date == date {
			result = append(result, t)
		}
	}
	return result
}

// AllTasks returns every task across all tours, preserving tour order.
func (s Snapshot) AllTasks() []tour.Task {
	var tasks []tour.Task
	for _, t := range s.Tours {
		tasks = append(tasks, t.Tasks...)
	}
	return tasks
}

// CreateTourInput carries the arguments of a createTour action.
type CreateTourInput struct {
	EmployeeID   string
	Date         string // YYYY-MM-DD
	Shift        tour.ShiftType
	PlannedStart string // "HH:MM"
	PlannedEnd   string // "HH:MM"
}

// CreateTour adds a new empty tour and returns the new snapshot with
// the created tour.
func (s Snapshot) CreateTour(in CreateTourInput, now time.Time) (Snapshot, tour.Tour, error) {
	if errs := validate.Tour(validate.TourInput{
		EmployeeID:   in.EmployeeID,
		Date:         in.Date,
		Shift:        in.Shift,
		PlannedStart: in.PlannedStart,
		PlannedEnd:   in.PlannedEnd,
	}); len(errs) > 0 {
		return s, tour.Tour{}, fmt.Errorf("%w: %s", ErrInvalidInput, joinFieldErrors(errs))
	}

	next := s.Clone()
	created := tour.Tour{
		ID:           tour.NewID(),
		EmployeeID:   in.EmployeeID,
		Date:         in.Date,
		Shift:        in.Shift,
		Status:       tour.TourPlanned,
		PlannedStart: in.PlannedStart,
		PlannedEnd:   in.PlannedEnd,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	next.Tours = append(next.Tours, created)
	return next, created, nil
}

// AddTaskInput carries the arguments of an addTaskToTour action.
type AddTaskInput struct {
	TourID            string
	ResidentID        string // DrivingResidentID for travel segments
	Type              tour.TaskType
	ScheduledTime     time.Time
	EstimatedDuration int
	Notes             string
}

// AddTask appends a task to an existing tour. Travel segments are
// treated as derived tasks and may be shorter than the user-facing
// minimum duration.
func (s Snapshot) AddTask(in AddTaskInput, now time.Time) (Snapshot, tour.Task, error) {
	if errs := validate.Task(validate.TaskInput{
		TourID:            in.TourID,
		ResidentID:        in.ResidentID,
		Type:              in.Type,
		ScheduledTime:     in.ScheduledTime,
		EstimatedDuration: in.EstimatedDuration,
		Derived:           in.ResidentID == tour.DrivingResidentID,
	}); len(errs) > 0 {
		return s, tour.Task{}, fmt.Errorf("%w: %s", ErrInvalidInput, joinFieldErrors(errs))
	}

	pos := s.FindTour(in.TourID)
	if pos < 0 {
		return s, tour.Task{}, fmt.Errorf("tour %s: %w", in.TourID, tour.ErrTourNotFound)
	}

	next := s.Clone()
	created := tour.Task{
		ID:                    tour.NewID(),
		TourID:                in.TourID,
		ResidentID:            in.ResidentID,
		Type:                  in.Type,
		ScheduledTime:         in.ScheduledTime,
		EstimatedDuration:     in.EstimatedDuration,
		RequiredQualification: qualificationForType(in.Type),
		Status:                tour.TaskPending,
		Notes:                 in.Notes,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	next.Tours[pos].Tasks = append(next.Tours[pos].Tasks, created)
	next.Tours[pos].SortTasks()
	next.Tours[pos].UpdatedAt = now
	return next, created, nil
}

// TaskUpdate carries the optional fields of an updateTask action.
// Nil fields are left unchanged.
type TaskUpdate struct {
	ScheduledTime     *time.Time
	EstimatedDuration *int
	Notes             *string
}

// UpdateTask applies a partial update to the task with the given id.
func (s Snapshot) UpdateTask(taskID string, upd TaskUpdate, now time.Time) (Snapshot, tour.Task, error) {
	i, j := s.findTask(taskID)
	if i < 0 {
		return s, tour.Task{}, fmt.Errorf("task %s: %w", taskID, tour.ErrTaskNotFound)
	}

	next := s.Clone()
	t := &next.Tours[i].Tasks[j]
	if upd.ScheduledTime != nil {
		t.ScheduledTime = *upd.ScheduledTime
	}
	if upd.EstimatedDuration != nil {
		if *upd.EstimatedDuration <= 0 {
			return s, tour.Task{}, fmt.Errorf("%w: estimatedDuration must be positive", ErrInvalidInput)
		}
		t.EstimatedDuration = *upd.EstimatedDuration
	}
	if upd.Notes != nil {
		t.Notes = *upd.Notes
	}
	t.UpdatedAt = now
	updated := *t
	next.Tours[i].SortTasks()
	next.Tours[i].UpdatedAt = now
	return next, updated, nil
}

// DeleteTask removes the task with the given id from its tour.
func (s Snapshot) DeleteTask(taskID string, now time.Time) (Snapshot, error) {
	i, _ := s.findTask(taskID)
	if i < 0 {
		return s, fmt.Errorf("task %s: %w", taskID, tour.ErrTaskNotFound)
	}

	next := s.Clone()
	next.Tours[i].RemoveTask(taskID)
	next.Tours[i].UpdatedAt = now
	return next, nil
}

// DeleteTour removes a tour and, by ownership, all of its tasks.
func (s Snapshot) DeleteTour(tourID string) (Snapshot, error) {
	pos := s.FindTour(tourID)
	if pos < 0 {
		return s, fmt.Errorf("tour %s: %w", tourID, tour.ErrTourNotFound)
	}

	next := s.Clone()
	next.Tours = append(next.Tours[:pos], next.Tours[pos+1:]...)
	return next, nil
}

// qualificationForType maps a task type to the qualification required
// to perform it. Treatment care needs the matching certification;
// everything else is covered by basic care.
func qualificationForType(t tour.TaskType) tour.Qualification {
	if string(t) == string(tour.QualBehandlungspflege) {
		return tour.QualBehandlungspflege
	}
	return tour.QualGrundpflege
}

func joinFieldErrors(errs []validate.FieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
