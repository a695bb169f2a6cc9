package agent

import (
	"fmt"
	"time"

	"github.com/lkaestner/tourplan/internal/tour"
)

// Action names understood by the runner. They mirror the function-call
// contract exposed to the language model.
const (
	ActionCreateTour      = "createTour"
	ActionAddTaskToTour   = "addTaskToTour"
	ActionUpdateTask      = "updateTask"
	ActionDeleteTask      = "deleteTask"
	ActionDeleteTour      = "deleteTour"
	ActionGetTourInfo     = "getTourInfo"
	ActionGetToursForDate = "getToursForDate"
)

// TourIDPlaceholder is the token the model uses to reference the tour
// created by the most recent createTour action in the same batch. The
// runner substitutes it before executing the action.
const TourIDPlaceholder = "TOUR_ID_FROM_PREVIOUS_STEP"

// Action is one planned operation from the model.
type Action struct {
	Name string `json:"function"`
	Args Args   `json:"args"`
}

// Args is the union of all action argument shapes. Optional updateTask
// fields are pointers so absence can be told from a zero value.
type Args struct {
	EmployeeID        string         `json:"employeeId,omitempty"`
	Date              string         `json:"date,omitempty"`
	Shift             tour.ShiftType `json:"shift,omitempty"`
	PlannedStart      string         `json:"plannedStart,omitempty"`
	PlannedEnd        string         `json:"plannedEnd,omitempty"`
	TourID            string         `json:"tourId,omitempty"`
	ResidentID        string         `json:"residentId,omitempty"`
	Type              tour.TaskType  `json:"type,omitempty"`
	ScheduledTime     string         `json:"scheduledTime,omitempty"` // RFC 3339
	EstimatedDuration *int           `json:"estimatedDuration,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
	TaskID            string         `json:"taskId,omitempty"`
}

// Result records the outcome of one executed action.
type Result struct {
	Action  string
	OK      bool
	Message string
	Err     error
}

// BatchResult is the outcome of applying an action batch.
type BatchResult struct {
	Snapshot Snapshot
	Results  []Result
}

// Failed returns the results of actions that did not succeed.
func (b BatchResult) Failed() []Result {
	var failed []Result
	for _, r := range b.Results {
		if !r.OK {
			failed = append(failed, r)
		}
	}
	return failed
}

// Run applies the actions in order against the snapshot. A failed
// action is recorded and skipped; later actions still run against the
// state left by the earlier successful ones. Nothing is rolled back.
func Run(s Snapshot, actions []Action, now time.Time) BatchResult {
	batch := BatchResult{Snapshot: s}
	lastCreatedTourID := ""

	for _, a := range actions {
		tourID := a.Args.TourID
		if tourID == TourIDPlaceholder {
			tourID = lastCreatedTourID
		}

		var (
			next    Snapshot
			message string
			err     error
		)

		switch a.Name {
		case ActionCreateTour:
			var created tour.Tour
			next, created, err = batch.Snapshot.CreateTour(CreateTourInput{
				EmployeeID:   a.Args.EmployeeID,
				Date:         a.Args.Date,
				Shift:        a.Args.Shift,
				PlannedStart: a.Args.PlannedStart,
				PlannedEnd:   a.Args.PlannedEnd,
			}, now)
			if err == nil {
				lastCreatedTourID = created.ID
				message = fmt.Sprintf("Tour %s erstellt für Mitarbeiter %s am %s", created.ID, created.EmployeeID, created.Date)
			}

		case ActionAddTaskToTour:
			var scheduled time.Time
			scheduled, err = parseActionTime(a.Args.ScheduledTime)
			if err == nil {
				duration := 0
				if a.Args.EstimatedDuration != nil {
					duration = *a.Args.EstimatedDuration
				}
				notes := ""
				if a.Args.Notes != nil {
					notes = *a.Args.Notes
				}
				var created tour.Task
				next, created, err = batch.Snapshot.AddTask(AddTaskInput{
					TourID:            tourID,
					ResidentID:        a.Args.ResidentID,
					Type:              a.Args.Type,
					ScheduledTime:     scheduled,
					EstimatedDuration: duration,
					Notes:             notes,
				}, now)
				if err == nil {
					message = fmt.Sprintf("Einsatz %s hinzugefügt (%s, %d Min.)", created.ID, created.Type, created.EstimatedDuration)
				}
			}

		case ActionUpdateTask:
			upd := TaskUpdate{
				EstimatedDuration: a.Args.EstimatedDuration,
				Notes:             a.Args.Notes,
			}
			if a.Args.ScheduledTime != "" {
				var scheduled time.Time
				scheduled, err = parseActionTime(a.Args.ScheduledTime)
				if err == nil {
					upd.ScheduledTime = &scheduled
				}
			}
			if err == nil {
				next, _, err = batch.Snapshot.UpdateTask(a.Args.TaskID, upd, now)
				if err == nil {
					message = fmt.Sprintf("Einsatz %s aktualisiert", a.Args.TaskID)
				}
			}

		case ActionDeleteTask:
			next, err = batch.Snapshot.DeleteTask(a.Args.TaskID, now)
			if err == nil {
				message = fmt.Sprintf("Einsatz %s gelöscht", a.Args.TaskID)
			}

		case ActionDeleteTour:
			next, err = batch.Snapshot.DeleteTour(tourID)
			if err == nil {
				message = fmt.Sprintf("Tour %s gelöscht", tourID)
			}

		case ActionGetTourInfo:
			next = batch.Snapshot
			if pos := batch.Snapshot.FindTour(tourID); pos >= 0 {
				t := batch.Snapshot.Tours[pos]
				message = fmt.Sprintf("Tour %s: Mitarbeiter %s, %s, %s, %d Einsätze, %s-%s",
					t.ID, t.EmployeeID, t.Date, t.Shift, len(t.Tasks), t.PlannedStart, t.PlannedEnd)
			} else {
				err = fmt.Errorf("tour %s: %w", tourID, tour.ErrTourNotFound)
			}

		case ActionGetToursForDate:
			next = batch.Snapshot
			found := batch.Snapshot.ToursForDate(a.Args.Date)
			message = fmt.Sprintf("%d Touren am %s", len(found), a.Args.Date)

		default:
			err = fmt.Errorf("unknown action %q", a.Name)
		}

		if err != nil {
			batch.Results = append(batch.Results, Result{Action: a.Name, OK: false, Err: err})
			continue
		}
		batch.Snapshot = next
		batch.Results = append(batch.Results, Result{Action: a.Name, OK: true, Message: message})
	}

	return batch
}

// parseActionTime parses the ISO timestamps the model produces.
func parseActionTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("scheduledTime is required")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	// Some models omit the zone suffix.
	t, err2 := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err2 == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("parsing scheduled time %q: %w", s, err)
}
