package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2026-09-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Year() != 2026 || got.Month() != time.September || got.Day() != 1 {
			t.Errorf("ParseDate = %v", got)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("ParseDate(\"\") = %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		for _, input := range []string{"01.09.2026", "2026-9-1", "not a date"} {
			if _, err := ParseDate(input); !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDateFormat", input, err)
			}
		}
	})

	t.Run("impossible calendar date", func(t *testing.T) {
		if _, err := ParseDate("2026-02-30"); err == nil {
			t.Error("expected error for 2026-02-30")
		}
	})
}

func TestCombineDateClock(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	got, err := CombineDateClock(day, "08:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 8 || got.Minute() != 30 || got.Day() != 1 {
		t.Errorf("CombineDateClock = %v", got)
	}

	for _, clock := range []string{"8:30", "08:3", "24:00", "08:60", "0830", "", "acht Uhr"} {
		if _, err := CombineDateClock(day, clock); !errors.Is(err, ErrInvalidClockFormat) {
			t.Errorf("CombineDateClock(%q) error = %v, want ErrInvalidClockFormat", clock, err)
		}
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		monday string
		sunday string
	}{
		{name: "midweek", input: "2026-09-02", monday: "2026-08-31", sunday: "2026-09-06"},
		{name: "monday itself", input: "2026-08-31", monday: "2026-08-31", sunday: "2026-09-06"},
		{name: "sunday belongs to past week", input: "2026-09-06", monday: "2026-08-31", sunday: "2026-09-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("parsing input: %v", err)
			}
			monday, sunday := WeekRange(day)
			if FormatDate(monday) != tt.monday {
				t.Errorf("monday = %s, want %s", FormatDate(monday), tt.monday)
			}
			if FormatDate(sunday) != tt.sunday {
				t.Errorf("sunday = %s, want %s", FormatDate(sunday), tt.sunday)
			}
		})
	}
}
