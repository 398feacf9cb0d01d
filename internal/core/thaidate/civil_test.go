package thaidate

import (
	"errors"
	"testing"
	"time"

	"clubhouse/internal/platform/testkit"
)

func TestNewCivilInstant(t *testing.T) {
	t.Parallel()

	ci, err := NewCivilInstant(2024, 2, 29, 23, 59)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ci.String() != "2024-02-29 23:59" {
		t.Fatalf("String()=%q", ci.String())
	}

	bad := []struct {
		name            string
		y, mo, d, h, mi int
	}{
		{"feb 30", 2024, 2, 30, 0, 0},
		{"hour 24", 2024, 1, 1, 24, 0},
		{"minute 60", 2024, 1, 1, 0, 60},
		{"negative hour", 2024, 1, 1, -1, 0},
		{"zero value", 0, 0, 0, 0, 0},
	}
	for _, tc := range bad {
		if _, err := NewCivilInstant(tc.y, tc.mo, tc.d, tc.h, tc.mi); !errors.Is(err, ErrInvalidCivil) {
			t.Fatalf("%s: want ErrInvalidCivil, got %v", tc.name, err)
		}
	}
}

func TestMustCivilInstant_Panics(t *testing.T) {
	t.Parallel()

	testkit.MustPanic(t, func() { MustCivilInstant(2023, 2, 29, 0, 0) })
	testkit.MustNotPanic(t, func() { MustCivilInstant(2023, 2, 28, 0, 0) })
}

func TestFromTime_ZoneConversion(t *testing.T) {
	t.Parallel()

	// 20:30 UTC on new year's eve is already new year in Bangkok
	utc := time.Date(2023, 12, 31, 20, 30, 45, 0, time.UTC)
	got := FromTime(utc, Bangkok)
	want := MustCivilInstant(2024, 1, 1, 3, 30)
	if got != want {
		t.Fatalf("FromTime=%v want %v", got, want)
	}
	if same := FromTime(utc, nil); same != MustCivilInstant(2023, 12, 31, 20, 30) {
		t.Fatalf("nil loc should keep the time's zone, got %v", same)
	}
	if back := got.Time(Bangkok); !back.Equal(utc.Truncate(time.Minute)) {
		t.Fatalf("Time(Bangkok)=%v want %v", back, utc.Truncate(time.Minute))
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := MustCivilInstant(2024, 5, 10, 9, 0)
	b := MustCivilInstant(2024, 5, 10, 18, 30)
	c := MustCivilInstant(2024, 5, 11, 0, 0)

	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("Compare on same day broken")
	}
	if a.CompareDate(b) != 0 {
		t.Fatalf("CompareDate should ignore time of day")
	}
	if !b.BeforeDate(c) || c.BeforeDate(b) || a.BeforeDate(b) {
		t.Fatalf("BeforeDate broken")
	}
	if got := c.Sub(b); got != 5*time.Hour+30*time.Minute {
		t.Fatalf("Sub=%v", got)
	}
	if got := b.DateOnly(); got != MustCivilInstant(2024, 5, 10, 0, 0) {
		t.Fatalf("DateOnly=%v", got)
	}
}

func TestCivilInstant_Accessors(t *testing.T) {
	t.Parallel()

	ci := MustCivilInstant(2024, 1, 1, 0, 0)
	if ci.BuddhistYear() != 2567 {
		t.Fatalf("BuddhistYear=%d", ci.BuddhistYear())
	}
	if ci.Weekday() != time.Monday {
		t.Fatalf("Weekday=%v", ci.Weekday())
	}
}
