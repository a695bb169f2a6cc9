package agent

import (
	"errors"
	"testing"
	"time"

	"github.com/lkaestner/tourplan/internal/tour"
)

var testNow = time.Date(2026, 9, 1, 5, 0, 0, 0, time.Local)

func at(clock string) time.Time {
	t, _ := time.Parse("15:04", clock)
	return time.Date(2026, 9, 1, t.Hour(), t.Minute(), 0, 0, time.Local)
}

func seedSnapshot() Snapshot {
	return Snapshot{Tours: []tour.Tour{
		{
			ID:           "tour-1",
			EmployeeID:   "emp-1",
			Date:         "2026-09-01",
			Shift:        tour.ShiftEarly,
			PlannedStart: "06:00",
			PlannedEnd:   "14:00",
			Tasks: []tour.Task{
				{ID: "task-1", TourID: "tour-1", ResidentID: "res-1", Type: tour.TypeKoerperpflege,
					ScheduledTime: at("07:00"), EstimatedDuration: 30},
				{ID: "task-2", TourID: "tour-1", ResidentID: "res-2", Type: tour.TypeMedikamente,
					ScheduledTime: at("08:00"), EstimatedDuration: 15},
			},
		},
	}}
}

func TestCreateTour(t *testing.T) {
	s := seedSnapshot()

	next, created, err := s.CreateTour(CreateTourInput{
		EmployeeID:   "emp-2",
		Date:         "2026-09-01",
		Shift:        tour.ShiftLate,
		PlannedStart: "14:00",
		PlannedEnd:   "22:00",
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(next.Tours) != 2 {
		t.Fatalf("tour count = %d, want 2", len(next.Tours))
	}
	if created.ID == "" {
		t.Error("created tour has no id")
	}
	if created.Status != tour.TourPlanned {
		t.Errorf("status = %s, want planned", created.Status)
	}
	// Copy-on-write: the original snapshot is untouched.
	if len(s.Tours) != 1 {
		t.Errorf("input snapshot mutated, tour count = %d", len(s.Tours))
	}
}

func TestCreateTourValidates(t *testing.T) {
	s := seedSnapshot()

	_, _, err := s.CreateTour(CreateTourInput{
		EmployeeID:   "emp-2",
		Date:         "2026-09-01",
		Shift:        tour.ShiftEarly,
		PlannedStart: "14:00",
		PlannedEnd:   "10:00",
	}, testNow)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestAddTask(t *testing.T) {
	s := seedSnapshot()

	next, created, err := s.AddTask(AddTaskInput{
		TourID:            "tour-1",
		ResidentID:        "res-3",
		Type:              tour.TypeWundversorgung,
		ScheduledTime:     at("07:30"),
		EstimatedDuration: 20,
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.RequiredQualification != tour.QualGrundpflege {
		t.Errorf("qualification = %s, want grundpflege", created.RequiredQualification)
	}
	if created.Status != tour.TaskPending {
		t.Errorf("status = %s, want pending", created.Status)
	}

	// Inserted in sorted position: 07:00, 07:30, 08:00.
	got := next.Tours[0].Tasks[1].ID
	if got != created.ID {
		t.Errorf("middle task = %s, want newly created %s", got, created.ID)
	}
	if len(s.Tours[0].Tasks) != 2 {
		t.Error("input snapshot mutated")
	}
}

func TestAddTaskBehandlungspflegeQualification(t *testing.T) {
	s := seedSnapshot()

	// Only the literal treatment-care type requires the certification;
	// every canonical type falls back to basic care.
	_, created, err := s.AddTask(AddTaskInput{
		TourID:            "tour-1",
		ResidentID:        "res-3",
		Type:              tour.TaskType("behandlungspflege"),
		ScheduledTime:     at("09:00"),
		EstimatedDuration: 15,
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.RequiredQualification != tour.QualBehandlungspflege {
		t.Errorf("qualification = %s, want behandlungspflege", created.RequiredQualification)
	}
}

func TestAddTaskDrivingSegment(t *testing.T) {
	s := seedSnapshot()

	// 5 minutes is below the user-facing minimum but allowed for
	// driving segments.
	_, created, err := s.AddTask(AddTaskInput{
		TourID:            "tour-1",
		ResidentID:        tour.DrivingResidentID,
		Type:              tour.TypeDokumentation,
		ScheduledTime:     at("07:30"),
		EstimatedDuration: 3,
		Notes:             "Fahrtzeit",
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.IsDriving() {
		t.Error("expected a driving task")
	}
}

func TestAddTaskUnknownTour(t *testing.T) {
	s := seedSnapshot()

	_, _, err := s.AddTask(AddTaskInput{
		TourID:            "missing",
		ResidentID:        "res-1",
		Type:              tour.TypeKoerperpflege,
		ScheduledTime:     at("07:30"),
		EstimatedDuration: 30,
	}, testNow)
	if !errors.Is(err, tour.ErrTourNotFound) {
		t.Errorf("error = %v, want ErrTourNotFound", err)
	}
}

func TestUpdateTask(t *testing.T) {
	s := seedSnapshot()

	newTime := at("10:00")
	duration := 60
	notes := "verlängert"
	next, updated, err := s.UpdateTask("task-1", TaskUpdate{
		ScheduledTime:     &newTime,
		EstimatedDuration: &duration,
		Notes:             &notes,
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !updated.ScheduledTime.Equal(newTime) || updated.EstimatedDuration != 60 || updated.Notes != "verlängert" {
		t.Errorf("updated = %+v", updated)
	}
	// Re-sorted: task-1 now comes after task-2.
	if next.Tours[0].Tasks[1].ID != "task-1" {
		t.Error("tasks not re-sorted after update")
	}
	// Partial update: nil fields untouched.
	if s.Tours[0].Tasks[0].EstimatedDuration != 30 {
		t.Error("input snapshot mutated")
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	s := seedSnapshot()

	duration := 45
	_, updated, err := s.UpdateTask("task-1", TaskUpdate{EstimatedDuration: &duration}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.EstimatedDuration != 45 {
		t.Errorf("duration = %d, want 45", updated.EstimatedDuration)
	}
	if !updated.ScheduledTime.Equal(at("07:00")) {
		t.Error("scheduled time changed by partial update")
	}
}

func TestUpdateTaskRejectsNonPositiveDuration(t *testing.T) {
	s := seedSnapshot()

	zero := 0
	if _, _, err := s.UpdateTask("task-1", TaskUpdate{EstimatedDuration: &zero}, testNow); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestDeleteTask(t *testing.T) {
	s := seedSnapshot()

	next, err := s.DeleteTask("task-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next.Tours[0].Tasks) != 1 {
		t.Errorf("task count = %d, want 1", len(next.Tours[0].Tasks))
	}
	if len(s.Tours[0].Tasks) != 2 {
		t.Error("input snapshot mutated")
	}

	if _, err := s.DeleteTask("missing", testNow); !errors.Is(err, tour.ErrTaskNotFound) {
		t.Errorf("error = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTourCascades(t *testing.T) {
	s := seedSnapshot()

	next, err := s.DeleteTour("tour-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next.Tours) != 0 {
		t.Errorf("tour count = %d, want 0", len(next.Tours))
	}
	if len(next.AllTasks()) != 0 {
		t.Error("tasks survived tour deletion")
	}

	if _, err := s.DeleteTour("missing"); !errors.Is(err, tour.ErrTourNotFound) {
		t.Errorf("error = %v, want ErrTourNotFound", err)
	}
}

func TestToursForDate(t *testing.T) {
	s := seedSnapshot()
	s.Tours = append(s.Tours, tour.Tour{ID: "tour-2", EmployeeID: "emp-2", Date: "2026-09-02"})

	if got := len(s.ToursForDate("2026-09-01")); got != 1 {
		t.Errorf("ToursForDate(2026-09-01) = %d tours, want 1", got)
	}
	if got := len(s.ToursForDate("2026-09-03")); got != 0 {
		t.Errorf("ToursForDate(2026-09-03) = %d tours, want 0", got)
	}
}
