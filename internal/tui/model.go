// Package tui provides the interactive day board for tourplan.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lkaestner/tourplan/internal/config"
	"github.com/lkaestner/tourplan/internal/dateutil"
	"github.com/lkaestner/tourplan/internal/store"
	"github.com/lkaestner/tourplan/internal/timeline"
	"github.com/lkaestner/tourplan/internal/tour"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // Moving a task to a new slot or tour
)

// moveStep is the clock increment used when nudging a task in move mode.
const moveStep = 15

// Position is the cursor location on the board.
type Position struct {
	Tour int // Index into the day's tours
	Task int // Index into the tour's tasks, -1 when the tour is empty
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  store.Store
	config *config.Config

	styles   Styles
	keys     KeyMap
	timeline timeline.Timeline

	// State
	date      time.Time
	tours     []tour.Tour // Tours of the visible day, tasks sorted
	employees map[string]tour.Employee
	residents map[string]tour.Resident
	cursor    Position
	mode      Mode
	loading   bool

	// Move mode state
	moveTask   tour.Task
	moveSource string // Source tour id
	moveTarget int    // Candidate tour index
	moveClock  string // Candidate "HH:MM" start

	status string
	err    error

	width  int
	height int
}

// New creates the board model for today.
func New(st store.Store, cfg *config.Config) Model {
	return Model{
		store:  st,
		config: cfg,
		styles: NewStyles(),
		keys:   DefaultKeyMap(),
		timeline: timeline.Timeline{
			StartHour:     cfg.Timeline.StartHour,
			EndHour:       cfg.Timeline.EndHour,
			PixelsPerHour: cfg.Timeline.PixelsPerHour,
		},
		date:    dateutil.TruncateToDay(time.Now()),
		loading: true,
	}
}

// Init loads the initial day.
func (m Model) Init() tea.Cmd {
	return m.loadDay()
}

// dayLoadedMsg carries the data of one day.
type dayLoadedMsg struct {
	tours     []tour.Tour
	employees []tour.Employee
	residents []tour.Resident
	err       error
}

// savedMsg reports the outcome of a persist.
type savedMsg struct {
	err error
}

func (m Model) loadDay() tea.Cmd {
	st := m.store
	dayStr := dateutil.FormatDate(m.date)
	return func() tea.Msg {
		ctx := context.Background()

		all, err := store.LoadTours(ctx, st)
		if err != nil {
			return dayLoadedMsg{err: err}
		}
		employees, err := store.LoadEmployees(ctx, st)
		if err != nil {
			return dayLoadedMsg{err: err}
		}
		residents, err := store.LoadResidents(ctx, st)
		if err != nil {
			return dayLoadedMsg{err: err}
		}

		var day []tour.Tour
		for _, t := range all {
			if t.Date == dayStr {
				t.SortTasks()
				day = append(day, t)
			}
		}
		return dayLoadedMsg{tours: day, employees: employees, residents: residents}
	}
}

// saveTours persists the full tours collection after replacing the
// visible day with the given tours.
func (m Model) saveTours(day []tour.Tour) tea.Cmd {
	st := m.store
	dayStr := dateutil.FormatDate(m.date)
	return func() tea.Msg {
		ctx := context.Background()

		all, err := store.LoadTours(ctx, st)
		if err != nil {
			return savedMsg{err: err}
		}
		merged := day
		for _, t := range all {
			if t.Date != dayStr {
				merged = append(merged, t)
			}
		}
		return savedMsg{err: store.SaveTours(ctx, st, merged)}
	}
}

func (m Model) employeeName(id string) string {
	if e, ok := m.employees[id]; ok {
		return e.Name
	}
	return id
}

func (m Model) residentName(id string) string {
	if id == tour.DrivingResidentID {
		return "Fahrt"
	}
	if r, ok := m.residents[id]; ok {
		return r.Name
	}
	return id
}

// currentTask returns the task under the cursor, or nil.
func (m Model) currentTask() *tour.Task {
	if m.cursor.Tour < 0 || m.cursor.Tour >= len(m.tours) {
		return nil
	}
	t := &m.tours[m.cursor.Tour]
	if m.cursor.Task < 0 || m.cursor.Task >= len(t.Tasks) {
		return nil
	}
	return &t.Tasks[m.cursor.Task]
}

// clampCursor keeps the cursor on an existing tour and task.
func (m *Model) clampCursor() {
	if len(m.tours) == 0 {
		m.cursor = Position{}
		return
	}
	if m.cursor.Tour >= len(m.tours) {
		m.cursor.Tour = len(m.tours) - 1
	}
	if m.cursor.Tour < 0 {
		m.cursor.Tour = 0
	}
	tasks := m.tours[m.cursor.Tour].Tasks
	if len(tasks) == 0 {
		m.cursor.Task = -1
		return
	}
	if m.cursor.Task >= len(tasks) {
		m.cursor.Task = len(tasks) - 1
	}
	if m.cursor.Task < 0 {
		m.cursor.Task = 0
	}
}

// Run starts the TUI.
func Run(st store.Store, cfg *config.Config) error {
	p := tea.NewProgram(New(st, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
