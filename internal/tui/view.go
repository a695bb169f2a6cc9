package tui

import (
	"fmt"
	"strings"

	"github.com/lkaestner/tourplan/internal/dateutil"
	"github.com/lkaestner/tourplan/internal/timeline"
	"github.com/lkaestner/tourplan/internal/tour"
)

// View renders the day board.
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Tourenplan  %s (%s)", dateutil.FormatDate(m.date), m.date.Format("Monday"))
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Lade Touren...\n")
	case len(m.tours) == 0:
		b.WriteString("Keine Touren für diesen Tag geplant.\n")
	default:
		for i := range m.tours {
			m.renderTour(&b, i)
		}
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Fehler: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	help := helpNormal
	if m.mode == ModeMove {
		help = helpMove
	}
	b.WriteString(m.styles.Help.Render(help))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTour(b *strings.Builder, idx int) {
	t := &m.tours[idx]

	badge := m.styles.badge(string(t.Shift)).Render(tour.ShiftLabel(t.Shift))
	header := fmt.Sprintf("%s  %s  %s-%s",
		m.employeeName(t.EmployeeID), badge, t.PlannedStart, t.PlannedEnd)
	if m.mode == ModeMove && idx == m.moveTarget {
		header += "  " + m.styles.Moving.Render(fmt.Sprintf("◀ %s", m.moveClock))
	}
	b.WriteString(m.styles.TourHeader.Render(header))
	b.WriteString("\n")

	flags := timeline.ConflictFlags(t.Tasks)
	for j := range t.Tasks {
		b.WriteString(m.renderTask(idx, j, flags[j]))
		b.WriteString("\n")
	}

	for _, s := range m.timeline.FreeSlots(m.date, t.Tasks) {
		line := fmt.Sprintf("    frei  %s-%s  (%s)",
			s.Start.Format("15:04"), s.End.Format("15:04"), tour.FormatDuration(s.Minutes()))
		b.WriteString(m.styles.FreeSlot.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m Model) renderTask(tourIdx, taskIdx int, conflicted bool) string {
	t := &m.tours[tourIdx].Tasks[taskIdx]

	marker := "  "
	if conflicted {
		marker = m.styles.Conflict.Render("! ")
	}

	line := fmt.Sprintf("%s-%s  %-22s %s (%s)",
		t.ScheduledTime.Format("15:04"), t.End().Format("15:04"),
		m.residentName(t.ResidentID), tour.TaskTypeLabel(t.Type),
		tour.FormatDuration(t.EstimatedDuration))
	if t.Notes != "" {
		line += "  " + t.Notes
	}

	style := m.styles.Task
	if t.IsDriving() {
		style = m.styles.Driving
	}
	selected := tourIdx == m.cursor.Tour && taskIdx == m.cursor.Task
	if selected && m.mode == ModeNormal {
		style = m.styles.Cursor
	}
	if m.mode == ModeMove && t.ID == m.moveTask.ID {
		style = m.styles.Moving
	}

	return "  " + marker + style.Render(line)
}
