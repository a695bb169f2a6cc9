package ui

import (
	"testing"
	"time"

	"github.com/lkaestner/tourplan/internal/timeline"
	"github.com/lkaestner/tourplan/internal/tour"
)

func TestCollectDayStats(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	tr := &tour.Tour{
		ID:         "tour-1",
		EmployeeID: "emp-1",
		Date:       "2026-09-01",
		Tasks: []tour.Task{
			{ID: "t1", ResidentID: "res-1", Type: tour.TypeKoerperpflege,
				ScheduledTime: day.Add(7 * time.Hour), EstimatedDuration: 30},
			{ID: "t2", ResidentID: tour.DrivingResidentID, Type: tour.TypeDokumentation,
				ScheduledTime: day.Add(7*time.Hour + 30*time.Minute), EstimatedDuration: 10},
			// Overlaps t2: both should be flagged.
			{ID: "t3", ResidentID: "res-2", Type: tour.TypeMedikamente,
				ScheduledTime: day.Add(7*time.Hour + 35*time.Minute), EstimatedDuration: 15},
		},
	}
	tl := timeline.New()
	slots := tl.FreeSlots(day, tr.Tasks)

	stats := CollectDayStats(tr, slots)

	if stats.CareMinutes != 45 {
		t.Errorf("CareMinutes = %d, want 45", stats.CareMinutes)
	}
	if stats.DrivingMinutes != 10 {
		t.Errorf("DrivingMinutes = %d, want 10", stats.DrivingMinutes)
	}
	if stats.Visits != 2 {
		t.Errorf("Visits = %d, want 2", stats.Visits)
	}
	if stats.Conflicts != 2 {
		t.Errorf("Conflicts = %d, want 2", stats.Conflicts)
	}
	if stats.TotalMinutes() != 55 {
		t.Errorf("TotalMinutes = %d, want 55", stats.TotalMinutes())
	}
	if stats.FreeMinutes == 0 {
		t.Error("FreeMinutes = 0, want gaps before and after the visits")
	}
}

func TestRosterNames(t *testing.T) {
	roster := NewRoster(
		[]tour.Employee{{ID: "emp-1", Name: "Anna Schmidt"}},
		[]tour.Resident{{ID: "res-1", Name: "Helga Schneider"}},
	)

	if got := roster.EmployeeName("emp-1"); got != "Anna Schmidt" {
		t.Errorf("EmployeeName = %q", got)
	}
	if got := roster.EmployeeName("emp-unknown"); got != "emp-unknown" {
		t.Errorf("unknown employee = %q, want the id back", got)
	}
	if got := roster.ResidentName("res-1"); got != "Helga Schneider" {
		t.Errorf("ResidentName = %q", got)
	}
	if got := roster.ResidentName(tour.DrivingResidentID); got != "Fahrt" {
		t.Errorf("driving resident = %q, want Fahrt", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"kurz", 10, "kurz"},
		{"genau zehn", 10, "genau zehn"},
		{"ein sehr langer Notiztext", 10, "ein sehr …"},
		{"Körperpflege", 8, "Körperp…"},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}
