package tui

import (
	"testing"

	"github.com/lkaestner/tourplan/internal/timeline"
	"github.com/lkaestner/tourplan/internal/tour"
)

func boardModel(tours []tour.Tour) Model {
	return Model{
		timeline: timeline.New(),
		tours:    tours,
	}
}

func TestNudgeClock(t *testing.T) {
	m := boardModel(nil)
	m.moveTask = tour.Task{EstimatedDuration: 30}

	tests := []struct {
		name  string
		clock string
		delta int
		want  string
	}{
		{name: "forward", clock: "08:00", delta: 15, want: "08:15"},
		{name: "backward", clock: "08:00", delta: -15, want: "07:45"},
		{name: "clamped to window start", clock: "06:05", delta: -15, want: "06:00"},
		{name: "clamped so the task fits", clock: "21:45", delta: 15, want: "21:30"},
		{name: "already at latest fit", clock: "21:30", delta: 15, want: "21:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.nudgeClock(tt.clock, tt.delta); got != tt.want {
				t.Errorf("nudgeClock(%q, %d) = %q, want %q", tt.clock, tt.delta, got, tt.want)
			}
		})
	}
}

func TestClampCursor(t *testing.T) {
	tours := []tour.Tour{
		{ID: "tour-1", Tasks: []tour.Task{{ID: "t1"}, {ID: "t2"}}},
		{ID: "tour-2"},
	}

	tests := []struct {
		name  string
		tours []tour.Tour
		start Position
		want  Position
	}{
		{name: "in range", tours: tours, start: Position{Tour: 0, Task: 1}, want: Position{Tour: 0, Task: 1}},
		{name: "tour past end", tours: tours, start: Position{Tour: 5, Task: 0}, want: Position{Tour: 1, Task: -1}},
		{name: "task past end", tours: tours, start: Position{Tour: 0, Task: 9}, want: Position{Tour: 0, Task: 1}},
		{name: "negative task", tours: tours, start: Position{Tour: 0, Task: -3}, want: Position{Tour: 0, Task: 0}},
		{name: "empty tour gets sentinel", tours: tours, start: Position{Tour: 1, Task: 0}, want: Position{Tour: 1, Task: -1}},
		{name: "no tours", tours: nil, start: Position{Tour: 2, Task: 2}, want: Position{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := boardModel(tt.tours)
			m.cursor = tt.start
			m.clampCursor()
			if m.cursor != tt.want {
				t.Errorf("cursor = %+v, want %+v", m.cursor, tt.want)
			}
		})
	}
}

func TestCurrentTask(t *testing.T) {
	tours := []tour.Tour{
		{ID: "tour-1", Tasks: []tour.Task{{ID: "t1"}, {ID: "t2"}}},
	}

	m := boardModel(tours)
	m.cursor = Position{Tour: 0, Task: 1}
	if task := m.currentTask(); task == nil || task.ID != "t2" {
		t.Errorf("currentTask = %+v, want t2", task)
	}

	m.cursor = Position{Tour: 0, Task: 5}
	if task := m.currentTask(); task != nil {
		t.Errorf("currentTask out of range = %+v, want nil", task)
	}

	m.cursor = Position{Tour: 3, Task: 0}
	if task := m.currentTask(); task != nil {
		t.Errorf("currentTask bad tour = %+v, want nil", task)
	}
}
