// Package timeline computes the day-view geometry for an employee's
// tasks: pixel placement on a fixed visible window, the free slots
// between tasks, and per-task conflict flags.
package timeline

import (
	"slices"
	"time"

	"github.com/lkaestner/tourplan/internal/tour"
)

// Default visible window and scale of the day view.
const (
	DefaultStartHour     = 6
	DefaultEndHour       = 22
	DefaultPixelsPerHour = 120.0

	// minSlotHeightPx is the visual noise threshold: free slots whose
	// rendered height does not exceed it are dropped.
	minSlotHeightPx = 10.0
)

// Timeline describes one day's visible window.
type Timeline struct {
	StartHour     int
	EndHour       int
	PixelsPerHour float64
}

// New returns a Timeline with the default 06:00-22:00 window.
func New() Timeline {
	return Timeline{
		StartHour:     DefaultStartHour,
		EndHour:       DefaultEndHour,
		PixelsPerHour: DefaultPixelsPerHour,
	}
}

// Window returns the visible window [start, end) on the given date.
func (tl Timeline) Window(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), date.Day(), tl.StartHour, 0, 0, 0, date.Location())
	end = time.Date(date.Year(), date.Month(), date.Day(), tl.EndHour, 0, 0, 0, date.Location())
	return start, end
}

// OffsetPx returns the vertical pixel position of an instant relative to
// the window start. Negative if the instant precedes the window; callers
// clip as needed.
func (tl Timeline) OffsetPx(t time.Time) float64 {
	minutesFromStart := tour.MinutesSinceMidnight(t) - tl.StartHour*60
	return float64(minutesFromStart) / 60 * tl.PixelsPerHour
}

// HeightPx returns the rendered height of a duration in minutes.
func (tl Timeline) HeightPx(durationMinutes int) float64 {
	return float64(durationMinutes) / 60 * tl.PixelsPerHour
}

// TotalHeightPx returns the full height of the visible window.
func (tl Timeline) TotalHeightPx() float64 {
	return float64(tl.EndHour-tl.StartHour) * tl.PixelsPerHour
}

// ClockAtOffset converts a vertical pixel position back to a "HH:MM"
// clock time, the inverse of OffsetPx. Used to resolve drop positions.
func (tl Timeline) ClockAtOffset(px float64) string {
	minutes := tl.StartHour*60 + int(px/tl.PixelsPerHour*60)
	return tour.MinutesToTime(minutes)
}

// FreeSlot is a computed gap in an employee's day. It is valid only for
// the task set it was derived from and is never persisted.
type FreeSlot struct {
	Start    time.Time
	End      time.Time
	TopPx    float64
	HeightPx float64
}

// Minutes returns the slot length in whole minutes.
func (s FreeSlot) Minutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// FreeSlots computes the ordered gaps between the given tasks within the
// window on date. The returned slots are disjoint, sorted by start time,
// and together with the task intervals cover the window, except for
// slots below the noise threshold, which are dropped.
func (tl Timeline) FreeSlots(date time.Time, tasks []tour.Task) []FreeSlot {
	sorted := slices.Clone(tasks)
	slices.SortFunc(sorted, func(a, b tour.Task) int {
		return a.ScheduledTime.Compare(b.ScheduledTime)
	})

	windowStart, windowEnd := tl.Window(date)
	var slots []FreeSlot

	if len(sorted) == 0 {
		slots = append(slots, FreeSlot{
			Start:    windowStart,
			End:      windowEnd,
			TopPx:    0,
			HeightPx: tl.TotalHeightPx(),
		})
		return slots
	}

	first := sorted[0]
	if first.ScheduledTime.After(windowStart) {
		slots = append(slots, tl.slot(windowStart, first.ScheduledTime))
	}

	for i := 0; i < len(sorted)-1; i++ {
		currentEnd := sorted[i].End()
		nextStart := sorted[i+1].ScheduledTime
		if nextStart.After(currentEnd) {
			slots = append(slots, tl.slot(currentEnd, nextStart))
		}
	}

	last := sorted[len(sorted)-1]
	if last.End().Before(windowEnd) {
		slots = append(slots, tl.slot(last.End(), windowEnd))
	}

	return slices.DeleteFunc(slots, func(s FreeSlot) bool {
		return s.HeightPx <= minSlotHeightPx
	})
}

func (tl Timeline) slot(start, end time.Time) FreeSlot {
	top := tl.OffsetPx(start)
	return FreeSlot{
		Start:    start,
		End:      end,
		TopPx:    top,
		HeightPx: tl.OffsetPx(end) - top,
	}
}
