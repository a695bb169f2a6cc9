package tour

import (
	"fmt"
	"time"
)

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes adds n minutes to a "HH:MM" clock time, wrapping at midnight.
func AddMinutes(t string, n int) string {
	total := TimeToMinutes(t) + n
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// MinutesBetween returns end minus start in minutes.
// Negative if end precedes start on the clock.
func MinutesBetween(start, end string) int {
	return TimeToMinutes(end) - TimeToMinutes(start)
}

// MinutesSinceMidnight returns the clock position of an instant in minutes.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// TimesOverlap returns true if two clock ranges overlap.
// Ranges are half-open: touching endpoints do not overlap.
func TimesOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

// OverlapMinutes calculates the overlapping minutes between two clock ranges.
// Returns 0 if there is no overlap.
func OverlapMinutes(start1, end1, start2, end2 string) int {
	s1 := TimeToMinutes(start1)
	e1 := TimeToMinutes(end1)
	s2 := TimeToMinutes(start2)
	e2 := TimeToMinutes(end2)

	overlapStart := max(s1, s2)
	overlapEnd := min(e1, e2)

	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}

// FormatDuration renders a minute count for display: "45 Min." under an
// hour, "2 Std." for exact hours, "1:30 Std." otherwise.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%d Min.", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%d Std.", hours)
	}
	return fmt.Sprintf("%d:%02d Std.", hours, mins)
}
