package tour

import "time"

// Interval is the half-open time range [Start, End) a task occupies.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Interval returns the time range occupied by the task.
func (t *Task) Interval() Interval {
	return Interval{Start: t.ScheduledTime, End: t.End()}
}

// Overlaps returns true if two intervals overlap. Intervals are
// half-open, so touching endpoints do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Minutes returns the interval length in whole minutes.
func (a Interval) Minutes() int {
	return int(a.End.Sub(a.Start).Minutes())
}
