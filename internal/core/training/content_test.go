package training

import (
	"testing"
	"time"
)

func TestDefaultContent(t *testing.T) {
	t.Parallel()

	c := DefaultContent()
	if len(c) != 3 || c[0].Kind != PhaseWarmup || c[1].Kind != PhaseMain || c[2].Kind != PhaseCooldown {
		t.Fatalf("unexpected default plan %+v", c)
	}
	if c.TotalDuration() != 60*time.Minute {
		t.Fatalf("TotalDuration=%v", c.TotalDuration())
	}
	// callers get a fresh slice every time
	c[0].Minutes = 99
	if DefaultContent()[0].Minutes != 15 {
		t.Fatalf("DefaultContent shares state")
	}
}

func TestContent_WithDefaults(t *testing.T) {
	t.Parallel()

	in := Content{
		{Kind: PhaseCooldown, Minutes: 10, Description: "  ยืด   เหยียด "},
		{Kind: PhaseMain, Minutes: -5},
		{Kind: "scrimmage", Minutes: 40, Description: "x"},
	}
	got := in.WithDefaults()
	want := Content{
		{Kind: PhaseWarmup, Minutes: 15, Description: "วอร์มอัพร่างกาย"},
		{Kind: PhaseMain, Minutes: 30, Description: "การฝึกหลัก"},
		{Kind: PhaseCooldown, Minutes: 10, Description: "ยืด เหยียด"},
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("phase %d = %+v want %+v", i, got[i], want[i])
		}
	}
	if got.TotalDuration() != 55*time.Minute {
		t.Fatalf("TotalDuration=%v", got.TotalDuration())
	}
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"", ""},
		{"   ", ""},
		{" สนาม\tกลาง \n", "สนาม กลาง"},
		{"cafe\u0301", "caf\u00e9"},
	}
	for _, tc := range tests {
		if got := CleanText(tc.in); got != tc.want {
			t.Fatalf("CleanText(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}
