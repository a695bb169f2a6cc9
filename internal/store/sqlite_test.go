package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lkaestner/tourplan/internal/tour"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetCollectionMissing(t *testing.T) {
	s := openTestStore(t)

	data, err := s.GetCollection(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data != nil {
		t.Errorf("missing collection = %q, want nil", data)
	}
}

func TestSetCollectionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SetCollection(ctx, "things", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	data, err := s.GetCollection(ctx, "things")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != `[{"id":"1"}]` {
		t.Errorf("data = %s", data)
	}

	// A second set replaces the document.
	if err := s.SetCollection(ctx, "things", []byte(`[]`)); err != nil {
		t.Fatalf("second set: %v", err)
	}
	data, err = s.GetCollection(ctx, "things")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("data after replace = %s", data)
	}
}

func TestLoadMissingCollectionIsEmpty(t *testing.T) {
	s := openTestStore(t)

	tours, err := LoadTours(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tours) != 0 {
		t.Errorf("tours = %v, want empty", tours)
	}
}

func TestSaveToursKeepsTasksCollectionConsistent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	scheduled := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	tours := []tour.Tour{
		{
			ID:         "tour-1",
			EmployeeID: "emp-1",
			Date:       "2026-09-01",
			Shift:      tour.ShiftEarly,
			Tasks: []tour.Task{
				{ID: "task-1", TourID: "tour-1", ResidentID: "res-1",
					Type: tour.TypeKoerperpflege, ScheduledTime: scheduled, EstimatedDuration: 30},
				{ID: "task-2", TourID: "tour-1", ResidentID: "res-2",
					Type: tour.TypeMedikamente, ScheduledTime: scheduled.Add(30 * time.Minute), EstimatedDuration: 15},
			},
		},
	}

	if err := SaveTours(ctx, s, tours); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := LoadTours(ctx, s)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(reloaded) != 1 || len(reloaded[0].Tasks) != 2 {
		t.Fatalf("reloaded = %+v", reloaded)
	}
	if !reloaded[0].Tasks[0].ScheduledTime.Equal(scheduled) {
		t.Errorf("scheduled time = %v, want %v", reloaded[0].Tasks[0].ScheduledTime, scheduled)
	}

	// The flat tasks view mirrors tour ownership.
	tasks, err := Load[tour.Task](ctx, s, CollectionTasks)
	if err != nil {
		t.Fatalf("loading tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("task count = %d, want 2", len(tasks))
	}

	// Emptying the tours empties the tasks view too.
	if err := SaveTours(ctx, s, nil); err != nil {
		t.Fatalf("saving empty: %v", err)
	}
	tasks, err = Load[tour.Task](ctx, s, CollectionTasks)
	if err != nil {
		t.Fatalf("loading tasks after empty: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("task count after empty save = %d, want 0", len(tasks))
	}
}

func TestEmployeesAndResidentsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	employees := []tour.Employee{{ID: "emp-1", Name: "Anna Schmidt", MaxHoursPerDay: 8}}
	if err := SaveEmployees(ctx, s, employees); err != nil {
		t.Fatalf("saving employees: %v", err)
	}
	residents := []tour.Resident{{ID: "res-1", Name: "Helga Schneider", CareLevel: 3}}
	if err := SaveResidents(ctx, s, residents); err != nil {
		t.Fatalf("saving residents: %v", err)
	}

	gotEmployees, err := LoadEmployees(ctx, s)
	if err != nil {
		t.Fatalf("loading employees: %v", err)
	}
	if len(gotEmployees) != 1 || gotEmployees[0].Name != "Anna Schmidt" {
		t.Errorf("employees = %+v", gotEmployees)
	}

	gotResidents, err := LoadResidents(ctx, s)
	if err != nil {
		t.Fatalf("loading residents: %v", err)
	}
	if len(gotResidents) != 1 || gotResidents[0].CareLevel != 3 {
		t.Errorf("residents = %+v", gotResidents)
	}
}
