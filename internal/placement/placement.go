// Package placement resolves drag-and-drop gestures on the day board:
// moving an existing task to a new time or employee, and turning a
// dragged resident card into a prefilled task draft.
package placement

import (
	"fmt"
	"time"

	"github.com/lkaestner/tourplan/internal/dateutil"
	"github.com/lkaestner/tourplan/internal/tour"
)

// Auto-created tours always get this planned window, regardless of the
// actual drop time. Kept as one named default so a future policy change
// happens in a single place.
const (
	autoTourPlannedStart = "06:00"
	autoTourPlannedEnd   = "14:00"
)

// Payload is what a drag gesture carries. Exactly one variant is active
// per gesture; abandoning the gesture before a drop has no effect.
type Payload interface {
	isPayload()
}

// ResidentPayload is a resident card dragged from the sidebar; dropping
// it opens a creation flow seeded by TaskDraft.
type ResidentPayload struct {
	Resident tour.Resident
}

// TaskPayload is an existing task dragged within the board.
type TaskPayload struct {
	Task             tour.Task
	SourceTourID     string
	SourceEmployeeID string
}

func (ResidentPayload) isPayload() {}
func (TaskPayload) isPayload()     {}

var (
	_ Payload = ResidentPayload{}
	_ Payload = TaskPayload{}
)

// Index maps (employeeID, date) to a tour position, enforcing the
// one-tour-per-employee-per-day assumption by construction instead of a
// linear scan.
type Index map[indexKey]int

type indexKey struct {
	employeeID string
	date       string
}

// BuildIndex indexes tours by employee and date. When duplicates exist
// in the stored collection the first one wins.
func BuildIndex(tours []tour.Tour) Index {
	idx := make(Index, len(tours))
	for i, t := range tours {
		key := indexKey{employeeID: t.EmployeeID, date: t.Date}
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return idx
}

// Lookup returns the position of the tour for the employee on date, or -1.
func (idx Index) Lookup(employeeID, date string) int {
	if i, ok := idx[indexKey{employeeID: employeeID, date: date}]; ok {
		return i
	}
	return -1
}

// DropResult is the outcome of resolving a drop. Tours is a new
// collection snapshot; the input is never mutated.
type DropResult struct {
	Tours       []tour.Tour
	Moved       tour.Task
	CreatedTour *tour.Tour // set when the drop created a tour for the target employee
}

// Drop applies a task drag ending at (targetEmployeeID, targetClock) on
// date. Same-employee drops only re-time the task; cross-employee drops
// move it into the target's tour for that date, creating one when none
// exists. The caller persists the returned snapshot.
func Drop(tours []tour.Tour, p TaskPayload, targetEmployeeID, targetClock string, date time.Time, now time.Time) (DropResult, error) {
	next := cloneTours(tours)
	idx := BuildIndex(next)
	dateStr := dateutil.FormatDate(date)

	sourcePos := -1
	for i := range next {
		if next[i].ID == p.SourceTourID {
			sourcePos = i
			break
		}
	}
	if sourcePos < 0 {
		return DropResult{}, fmt.Errorf("source tour %s: %w", p.SourceTourID, tour.ErrTourNotFound)
	}

	newTime, err := dateutil.CombineDateClock(date, targetClock)
	if err != nil {
		return DropResult{}, fmt.Errorf("target time %q: %w", targetClock, err)
	}

	moved, ok := next[sourcePos].RemoveTask(p.Task.ID)
	if !ok {
		return DropResult{}, fmt.Errorf("task %s in tour %s: %w", p.Task.ID, p.SourceTourID, tour.ErrTaskNotFound)
	}
	moved.ScheduledTime = newTime
	moved.UpdatedAt = now

	if targetEmployeeID == p.SourceEmployeeID {
		// Same employee: membership unchanged, only the time moves.
		moved.TourID = next[sourcePos].ID
		next[sourcePos].Tasks = append(next[sourcePos].Tasks, moved)
		next[sourcePos].SortTasks()
		next[sourcePos].UpdatedAt = now
		return DropResult{Tours: next, Moved: moved}, nil
	}

	next[sourcePos].UpdatedAt = now

	if targetPos := idx.Lookup(targetEmployeeID, dateStr); targetPos >= 0 {
		moved.TourID = next[targetPos].ID
		next[targetPos].Tasks = append(next[targetPos].Tasks, moved)
		next[targetPos].SortTasks()
		next[targetPos].UpdatedAt = now
		return DropResult{Tours: next, Moved: moved}, nil
	}

	created := tour.Tour{
		ID:           tour.NewID(),
		EmployeeID:   targetEmployeeID,
		Date:         dateStr,
		Shift:        tour.ShiftForHour(tour.TimeToMinutes(targetClock) / 60),
		Status:       tour.TourPlanned,
		PlannedStart: autoTourPlannedStart,
		PlannedEnd:   autoTourPlannedEnd,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	moved.TourID = created.ID
	created.Tasks = []tour.Task{moved}
	next = append(next, created)

	return DropResult{Tours: next, Moved: moved, CreatedTour: &next[len(next)-1]}, nil
}

// Draft is a prefilled task creation form produced when a resident card
// is dropped onto a free slot.
type Draft struct {
	EmployeeID        string
	ResidentID        string
	Type              tour.TaskType
	StartClock        string // "HH:MM"
	EstimatedDuration int
	Notes             string
}

// TaskDraft resolves a resident drop to a creation draft: 30 minutes of
// basic care by default, or a 10-minute documentation segment labeled
// "Fahrtzeit" for the driving sentinel.
func TaskDraft(employeeID, residentID, startClock string) Draft {
	d := Draft{
		EmployeeID:        employeeID,
		ResidentID:        residentID,
		Type:              tour.TypeKoerperpflege,
		StartClock:        startClock,
		EstimatedDuration: 30,
	}
	if residentID == tour.DrivingResidentID {
		d.Type = tour.TypeDokumentation
		d.EstimatedDuration = 10
		d.Notes = "Fahrtzeit"
	}
	return d
}

// cloneTours deep-copies the tours collection including task slices, so
// callers always get copy-on-write semantics.
func cloneTours(tours []tour.Tour) []tour.Tour {
	next := make([]tour.Tour, len(tours))
	for i, t := range tours {
		next[i] = t
		next[i].Tasks = make([]tour.Task, len(t.Tasks))
		copy(next[i].Tasks, t.Tasks)
	}
	return next
}
