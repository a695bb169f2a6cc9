package ui

import (
	"fmt"
	"strings"

	"github.com/lkaestner/tourplan/internal/timeline"
	"github.com/lkaestner/tourplan/internal/tour"
)

// DayStats holds aggregated statistics for one employee's day.
type DayStats struct {
	CareMinutes    int
	DrivingMinutes int
	FreeMinutes    int
	Visits         int
	Conflicts      int
}

// TotalMinutes returns the sum of care and driving minutes.
func (s DayStats) TotalMinutes() int {
	return s.CareMinutes + s.DrivingMinutes
}

// CollectDayStats aggregates a tour's tasks and free slots.
func CollectDayStats(t *tour.Tour, slots []timeline.FreeSlot) DayStats {
	var stats DayStats
	flags := timeline.ConflictFlags(t.Tasks)
	for i, task := range t.Tasks {
		if task.IsDriving() {
			stats.DrivingMinutes += task.EstimatedDuration
		} else {
			stats.CareMinutes += task.EstimatedDuration
			stats.Visits++
		}
		if flags[i] {
			stats.Conflicts++
		}
	}
	for _, s := range slots {
		stats.FreeMinutes += s.Minutes()
	}
	return stats
}

// Roster resolves entity ids to display names.
type Roster struct {
	employees map[string]string
	residents map[string]string
}

// NewRoster builds name lookups from the loaded entities.
func NewRoster(employees []tour.Employee, residents []tour.Resident) *Roster {
	r := &Roster{
		employees: make(map[string]string, len(employees)),
		residents: make(map[string]string, len(residents)),
	}
	for _, e := range employees {
		r.employees[e.ID] = e.Name
	}
	for _, res := range residents {
		r.residents[res.ID] = res.Name
	}
	return r
}

// EmployeeName returns the employee's display name, falling back to the id.
func (r *Roster) EmployeeName(id string) string {
	if name, ok := r.employees[id]; ok {
		return name
	}
	return id
}

// ResidentName returns the resident's display name. Driving segments
// get a fixed label.
func (r *Roster) ResidentName(id string) string {
	if id == tour.DrivingResidentID {
		return "Fahrt"
	}
	if name, ok := r.residents[id]; ok {
		return name
	}
	return id
}

// PrintTour prints one tour block: header, task rows with conflict
// markers, free slots, and a stats line.
func PrintTour(t *tour.Tour, roster *Roster, tl timeline.Timeline, date string) {
	parsed, err := parseDayArg(date)
	if err != nil {
		return
	}
	slots := tl.FreeSlots(parsed, t.Tasks)
	flags := timeline.ConflictFlags(t.Tasks)
	stats := CollectDayStats(t, slots)

	shiftLabel := tour.ShiftLabel(t.Shift)
	header := fmt.Sprintf("%s  %s  %s-%s",
		roster.EmployeeName(t.EmployeeID), shiftLabel, t.PlannedStart, t.PlannedEnd)
	fmt.Println(formatHeader(header))

	if len(t.Tasks) == 0 {
		fmt.Println(formatMuted("    keine Einsätze geplant"))
	}
	for i, task := range t.Tasks {
		printTaskRow(&task, roster, flags[i])
	}

	for _, s := range slots {
		fmt.Printf("    %s\n", formatFree(fmt.Sprintf("frei  %s-%s  (%s)",
			s.Start.Format("15:04"), s.End.Format("15:04"), tour.FormatDuration(s.Minutes()))))
	}

	fmt.Printf("    %s\n\n", formatMuted(fmt.Sprintf("%d Einsätze, Pflege %s, Fahrt %s, frei %s",
		stats.Visits,
		tour.FormatDuration(stats.CareMinutes),
		tour.FormatDuration(stats.DrivingMinutes),
		tour.FormatDuration(stats.FreeMinutes))))
}

func printTaskRow(t *tour.Task, roster *Roster, conflicted bool) {
	marker := " "
	if conflicted {
		marker = formatConflict("!")
	}

	name := roster.ResidentName(t.ResidentID)
	label := tour.TaskTypeLabel(t.Type)
	row := fmt.Sprintf("%s-%s  %-22s %s (%s)",
		t.ScheduledTime.Format("15:04"), t.End().Format("15:04"),
		truncate(name, 22), label, tour.FormatDuration(t.EstimatedDuration))
	if t.Notes != "" {
		row += "  " + formatMuted(t.Notes)
	}

	if t.IsDriving() {
		fmt.Printf("  %s %s\n", marker, formatMuted(row))
		return
	}
	fmt.Printf("  %s %s\n", marker, row)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// separator returns a horizontal rule sized to the terminal.
func separator() string {
	width := termWidth()
	if width > 72 {
		width = 72
	}
	return strings.Repeat("─", width)
}
