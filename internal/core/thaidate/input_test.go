package thaidate

import (
	"testing"

	"clubhouse/internal/platform/testkit"
)

func TestInput_DateLifecycle(t *testing.T) {
	t.Parallel()

	in := NewInput(ShapeDate)
	if in.Verdict() != Incomplete || in.Display() != "" || in.Ready() {
		t.Fatalf("fresh input should be empty and incomplete")
	}

	typed := ""
	for _, k := range "18102569" {
		typed = in.Display() + string(k)
		next := in.Apply(typed, today)
		if next.Raw() != typed {
			t.Fatalf("raw=%q want %q", next.Raw(), typed)
		}
		in = next
	}
	if in.Display() != "18/10/2569" || !in.Ready() {
		t.Fatalf("want ready 18/10/2569, got %q %v", in.Display(), in.Verdict())
	}
	d, ok := in.Date()
	if !ok || d.Civil() != MustCivilInstant(2026, 10, 18, 0, 0) {
		t.Fatalf("Date()=%+v,%v", d, ok)
	}
	if _, ok := in.TimeOfDay(); ok {
		t.Fatalf("date input has no time of day")
	}

	cleared := in.Apply("", today)
	if cleared.Verdict() != Incomplete || cleared.Message() != "" {
		t.Fatalf("clearing must be silent, got %+v", cleared.Result())
	}
	if r := in.Reset(); r.Shape() != ShapeDate || r.Display() != "" {
		t.Fatalf("Reset=%+v", r)
	}
}

func TestInput_RawIsFiltered(t *testing.T) {
	t.Parallel()

	cases := []struct {
		shape Shape
		text  string
		raw   string
		disp  string
	}{
		{ShapeDate, "18-10-2569", "18102569", "18/10/2569"},
		{ShapeDate, "๑๘/๑๐", "18/10", "18/10/"},
		{ShapeTime, "ｘ0９：3", "09:3", "09:3"},
		{ShapeTime, "", "", ""},
	}
	for _, tc := range cases {
		in := NewInput(tc.shape).Apply(tc.text, today)
		if in.Raw() != tc.raw || in.Display() != tc.disp {
			t.Fatalf("%s %q: raw %q display %q, want %q %q", tc.shape, tc.text, in.Raw(), in.Display(), tc.raw, tc.disp)
		}
	}
}

func TestInput_ApplyLeavesReceiverAlone(t *testing.T) {
	t.Parallel()

	before := NewInput(ShapeDate).Apply("31/02/2567", today)
	after := before.Apply("01/01/2570", today)

	if before.Reason() != ReasonBadDate || before.Message() != MsgBadDate {
		t.Fatalf("receiver mutated: %+v", before.Result())
	}
	if !after.Ready() {
		t.Fatalf("after=%+v", after.Result())
	}
}

func TestInput_Time(t *testing.T) {
	t.Parallel()

	in := NewInput(ShapeTime).Apply("2459", today)
	if in.Verdict() != Invalid || in.Message() != MsgBadTime {
		t.Fatalf("2459 should be invalid, got %+v", in.Result())
	}
	in = in.Apply("1830", today)
	tp, ok := in.TimeOfDay()
	if !ok || tp != (TimeParts{Hour: 18, Minute: 30}) {
		t.Fatalf("TimeOfDay=%+v,%v", tp, ok)
	}
}

func TestShape(t *testing.T) {
	t.Parallel()

	for _, s := range []Shape{ShapeDate, ShapeTime} {
		got, ok := ParseShape(s.String())
		if !ok || got != s {
			t.Fatalf("ParseShape(%q)=%v,%v", s.String(), got, ok)
		}
	}
	if _, ok := ParseShape("datetime"); ok {
		t.Fatalf("unexpected shape accepted")
	}
	testkit.MustPanic(t, func() { NewInput(Shape(9)) })
	testkit.MustPanic(t, func() { Input{}.Apply("01", today) })
}
