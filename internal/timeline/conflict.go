package timeline

import "github.com/lkaestner/tourplan/internal/tour"

// Conflicted reports whether the task at index i collides with any other
// task in the list. Unlike the half-open overlap used for free-slot
// computation, this rule also counts boundary-touching containment: a
// task whose interval starts inside, ends inside, or fully encloses
// another is flagged. The two rules stay separate because the day view
// relies on each in a different place.
func Conflicted(tasks []tour.Task, i int) bool {
	t := tasks[i]
	tStart := t.ScheduledTime
	tEnd := t.End()

	for j, u := range tasks {
		if j == i || u.ID == t.ID {
			continue
		}
		uStart := u.ScheduledTime
		uEnd := u.End()

		startsInside := !uStart.Before(tStart) && uStart.Before(tEnd)
		endsInside := uEnd.After(tStart) && !uEnd.After(tEnd)
		encloses := !uStart.After(tStart) && !uEnd.Before(tEnd)

		if startsInside || endsInside || encloses {
			return true
		}
	}
	return false
}

// ConflictFlags returns a per-task conflict flag for the whole list,
// aligned by index. Used by the day view to dim colliding tasks.
func ConflictFlags(tasks []tour.Task) []bool {
	flags := make([]bool, len(tasks))
	for i := range tasks {
		flags[i] = Conflicted(tasks, i)
	}
	return flags
}
