package placement

import (
	"errors"
	"testing"
	"time"

	"github.com/lkaestner/tourplan/internal/tour"
)

var (
	testDay = time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	testNow = time.Date(2026, 9, 1, 5, 0, 0, 0, time.Local)
)

func makeTask(id, tourID, clock string, duration int) tour.Task {
	t, _ := time.Parse("15:04", clock)
	return tour.Task{
		ID:                id,
		TourID:            tourID,
		ResidentID:        "res-1",
		Type:              tour.TypeKoerperpflege,
		ScheduledTime:     time.Date(2026, 9, 1, t.Hour(), t.Minute(), 0, 0, time.Local),
		EstimatedDuration: duration,
	}
}

func makeTours() []tour.Tour {
	return []tour.Tour{
		{
			ID:           "tour-anna",
			EmployeeID:   "emp-anna",
			Date:         "2026-09-01",
			Shift:        tour.ShiftEarly,
			PlannedStart: "06:00",
			PlannedEnd:   "14:00",
			Tasks: []tour.Task{
				makeTask("t1", "tour-anna", "07:00", 30),
				makeTask("t2", "tour-anna", "08:00", 45),
			},
		},
		{
			ID:           "tour-ben",
			EmployeeID:   "emp-ben",
			Date:         "2026-09-01",
			Shift:        tour.ShiftEarly,
			PlannedStart: "06:00",
			PlannedEnd:   "14:00",
			Tasks: []tour.Task{
				makeTask("t3", "tour-ben", "09:00", 30),
			},
		},
	}
}

func payloadFor(tours []tour.Tour, taskID string) TaskPayload {
	for i := range tours {
		if j := tours[i].FindTask(taskID); j >= 0 {
			return TaskPayload{
				Task:             tours[i].Tasks[j],
				SourceTourID:     tours[i].ID,
				SourceEmployeeID: tours[i].EmployeeID,
			}
		}
	}
	return TaskPayload{}
}

func countTasks(tours []tour.Tour) int {
	n := 0
	for _, t := range tours {
		n += len(t.Tasks)
	}
	return n
}

func TestDropSameEmployeeRetimes(t *testing.T) {
	tours := makeTours()
	payload := payloadFor(tours, "t1")

	result, err := Drop(tours, payload, "emp-anna", "10:30", testDay, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Tours) != 2 {
		t.Fatalf("tour count changed: %d", len(result.Tours))
	}
	if result.CreatedTour != nil {
		t.Error("same-employee drop must not create a tour")
	}
	if countTasks(result.Tours) != countTasks(tours) {
		t.Errorf("task count changed: %d -> %d", countTasks(tours), countTasks(result.Tours))
	}
	if got := result.Moved.ScheduledTime.Format("15:04"); got != "10:30" {
		t.Errorf("moved task starts at %s, want 10:30", got)
	}
	if result.Moved.TourID != "tour-anna" {
		t.Errorf("moved task in tour %s, want tour-anna", result.Moved.TourID)
	}

	// Tasks stay sorted after re-insertion.
	anna := result.Tours[0]
	for i := 1; i < len(anna.Tasks); i++ {
		if anna.Tasks[i].ScheduledTime.Before(anna.Tasks[i-1].ScheduledTime) {
			t.Error("tasks not sorted after drop")
		}
	}
}

func TestDropCrossEmployeeIntoExistingTour(t *testing.T) {
	tours := makeTours()
	payload := payloadFor(tours, "t1")

	result, err := Drop(tours, payload, "emp-ben", "10:00", testDay, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CreatedTour != nil {
		t.Error("drop onto existing tour must not create a new one")
	}
	if result.Moved.TourID != "tour-ben" {
		t.Errorf("moved task in tour %s, want tour-ben", result.Moved.TourID)
	}

	for _, tr := range result.Tours {
		switch tr.ID {
		case "tour-anna":
			if tr.FindTask("t1") >= 0 {
				t.Error("task still present in source tour")
			}
		case "tour-ben":
			if tr.FindTask("t1") < 0 {
				t.Error("task missing from target tour")
			}
		}
	}
}

func TestDropCrossEmployeeCreatesTour(t *testing.T) {
	tours := makeTours()
	payload := payloadFor(tours, "t2")

	result, err := Drop(tours, payload, "emp-cora", "15:30", testDay, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CreatedTour == nil {
		t.Fatal("expected a created tour")
	}
	created := result.CreatedTour
	if created.EmployeeID != "emp-cora" {
		t.Errorf("created tour for %s, want emp-cora", created.EmployeeID)
	}
	if created.Shift != tour.ShiftLate {
		t.Errorf("15:30 drop inferred shift %s, want late", created.Shift)
	}
	if created.PlannedStart != "06:00" || created.PlannedEnd != "14:00" {
		t.Errorf("created tour window %s-%s, want 06:00-14:00",
			created.PlannedStart, created.PlannedEnd)
	}
	if created.FindTask("t2") < 0 {
		t.Error("moved task missing from created tour")
	}
	if countTasks(result.Tours) != countTasks(tours) {
		t.Errorf("task count changed: %d -> %d", countTasks(tours), countTasks(result.Tours))
	}
}

func TestDropEarlyShiftInference(t *testing.T) {
	tours := makeTours()
	payload := payloadFor(tours, "t2")

	result, err := Drop(tours, payload, "emp-cora", "08:00", testDay, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CreatedTour.Shift != tour.ShiftEarly {
		t.Errorf("08:00 drop inferred shift %s, want early", result.CreatedTour.Shift)
	}
}

func TestDropDoesNotMutateInput(t *testing.T) {
	tours := makeTours()
	payload := payloadFor(tours, "t1")

	_, err := Drop(tours, payload, "emp-ben", "10:00", testDay, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tours[0].FindTask("t1") < 0 {
		t.Error("input tours mutated: task removed from source")
	}
	if got := tours[0].Tasks[0].ScheduledTime.Format("15:04"); got != "07:00" {
		t.Errorf("input task re-timed to %s", got)
	}
}

func TestDropErrors(t *testing.T) {
	tours := makeTours()

	t.Run("unknown source tour", func(t *testing.T) {
		payload := TaskPayload{Task: makeTask("x", "nope", "08:00", 30), SourceTourID: "nope"}
		_, err := Drop(tours, payload, "emp-anna", "10:00", testDay, testNow)
		if !errors.Is(err, tour.ErrTourNotFound) {
			t.Errorf("error = %v, want ErrTourNotFound", err)
		}
	})

	t.Run("task missing from source tour", func(t *testing.T) {
		payload := TaskPayload{
			Task:             makeTask("ghost", "tour-anna", "08:00", 30),
			SourceTourID:     "tour-anna",
			SourceEmployeeID: "emp-anna",
		}
		_, err := Drop(tours, payload, "emp-anna", "10:00", testDay, testNow)
		if !errors.Is(err, tour.ErrTaskNotFound) {
			t.Errorf("error = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("malformed clock", func(t *testing.T) {
		payload := payloadFor(tours, "t1")
		if _, err := Drop(tours, payload, "emp-anna", "25:99", testDay, testNow); err == nil {
			t.Error("expected error for malformed clock")
		}
	})
}

func TestBuildIndexFirstTourWins(t *testing.T) {
	tours := makeTours()
	duplicate := tours[0]
	duplicate.ID = "tour-anna-2"
	tours = append(tours, duplicate)

	idx := BuildIndex(tours)
	if got := idx.Lookup("emp-anna", "2026-09-01"); got != 0 {
		t.Errorf("Lookup = %d, want 0 (first tour wins)", got)
	}
	if got := idx.Lookup("emp-anna", "2026-09-02"); got != -1 {
		t.Errorf("Lookup other date = %d, want -1", got)
	}
	if got := idx.Lookup("emp-none", "2026-09-01"); got != -1 {
		t.Errorf("Lookup unknown employee = %d, want -1", got)
	}
}

func TestTaskDraft(t *testing.T) {
	t.Run("resident defaults", func(t *testing.T) {
		d := TaskDraft("emp-1", "res-1", "10:00")
		if d.Type != tour.TypeKoerperpflege || d.EstimatedDuration != 30 {
			t.Errorf("draft = %+v, want koerperpflege 30min", d)
		}
		if d.Notes != "" {
			t.Errorf("unexpected notes %q", d.Notes)
		}
	})

	t.Run("driving sentinel", func(t *testing.T) {
		d := TaskDraft("emp-1", tour.DrivingResidentID, "10:00")
		if d.Type != tour.TypeDokumentation || d.EstimatedDuration != 10 {
			t.Errorf("draft = %+v, want dokumentation 10min", d)
		}
		if d.Notes != "Fahrtzeit" {
			t.Errorf("notes = %q, want Fahrtzeit", d.Notes)
		}
	})
}
