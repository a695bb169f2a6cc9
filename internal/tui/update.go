package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lkaestner/tourplan/internal/agent"
	"github.com/lkaestner/tourplan/internal/placement"
	"github.com/lkaestner/tourplan/internal/tour"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dayLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.tours = msg.tours
		m.employees = make(map[string]tour.Employee, len(msg.employees))
		for _, e := range msg.employees {
			m.employees[e.ID] = e
		}
		m.residents = make(map[string]tour.Resident, len(msg.residents))
		for _, r := range msg.residents {
			m.residents[r.ID] = r
		}
		m.clampCursor()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loading = true
		return m, m.loadDay()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.mode == ModeMove {
		return m.handleMoveKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.status = ""
		return m, m.loadDay()

	case key.Matches(msg, m.keys.PrevDay):
		m.date = m.date.AddDate(0, 0, -1)
		m.cursor = Position{}
		m.loading = true
		return m, m.loadDay()

	case key.Matches(msg, m.keys.NextDay):
		m.date = m.date.AddDate(0, 0, 1)
		m.cursor = Position{}
		m.loading = true
		return m, m.loadDay()

	case key.Matches(msg, m.keys.Down):
		m.cursor.Task++
		m.clampCursor()

	case key.Matches(msg, m.keys.Up):
		m.cursor.Task--
		if m.cursor.Task < 0 {
			m.cursor.Task = 0
		}
		m.clampCursor()

	case key.Matches(msg, m.keys.Left):
		m.cursor.Tour--
		m.cursor.Task = 0
		m.clampCursor()

	case key.Matches(msg, m.keys.Right):
		m.cursor.Tour++
		m.cursor.Task = 0
		m.clampCursor()

	case key.Matches(msg, m.keys.Yank):
		if t := m.currentTask(); t != nil {
			if err := clipboard.WriteAll(t.ID); err != nil {
				m.status = "clipboard unavailable"
			} else {
				m.status = fmt.Sprintf("Einsatz-ID %s kopiert", t.ID)
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if t := m.currentTask(); t != nil {
			snap := agent.Snapshot{Tours: m.tours}
			next, err := snap.DeleteTask(t.ID, time.Now())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.status = fmt.Sprintf("Einsatz %s gelöscht", t.ID)
			return m, m.saveTours(next.Tours)
		}

	case key.Matches(msg, m.keys.Move):
		if t := m.currentTask(); t != nil {
			m.mode = ModeMove
			m.moveTask = *t
			m.moveSource = m.tours[m.cursor.Tour].ID
			m.moveTarget = m.cursor.Tour
			m.moveClock = t.ScheduledTime.Format("15:04")
			m.status = ""
		}
	}

	return m, nil
}

func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = ModeNormal
		m.status = "Verschieben abgebrochen"

	case key.Matches(msg, m.keys.Down):
		m.moveClock = m.nudgeClock(m.moveClock, moveStep)

	case key.Matches(msg, m.keys.Up):
		m.moveClock = m.nudgeClock(m.moveClock, -moveStep)

	case key.Matches(msg, m.keys.Left):
		if m.moveTarget > 0 {
			m.moveTarget--
		}

	case key.Matches(msg, m.keys.Right):
		if m.moveTarget < len(m.tours)-1 {
			m.moveTarget++
		}

	case key.Matches(msg, m.keys.Apply):
		payload := placement.TaskPayload{
			Task:             m.moveTask,
			SourceTourID:     m.moveSource,
			SourceEmployeeID: m.sourceEmployeeID(),
		}
		target := m.tours[m.moveTarget].EmployeeID
		result, err := placement.Drop(m.tours, payload, target, m.moveClock, m.date, time.Now())
		if err != nil {
			m.err = err
			m.mode = ModeNormal
			return m, nil
		}
		m.mode = ModeNormal
		m.status = fmt.Sprintf("Einsatz verschoben auf %s (%s)", m.moveClock, m.employeeName(target))
		return m, m.saveTours(result.Tours)
	}

	return m, nil
}

// nudgeClock shifts a "HH:MM" clock by delta minutes, clamped to the
// visible window.
func (m Model) nudgeClock(clock string, delta int) string {
	minutes := tour.TimeToMinutes(clock) + delta
	lo := m.timeline.StartHour * 60
	hi := m.timeline.EndHour*60 - m.moveTask.EstimatedDuration
	if minutes < lo {
		minutes = lo
	}
	if minutes > hi {
		minutes = hi
	}
	return tour.MinutesToTime(minutes)
}

func (m Model) sourceEmployeeID() string {
	for _, t := range m.tours {
		if t.ID == m.moveSource {
			return t.EmployeeID
		}
	}
	return ""
}
