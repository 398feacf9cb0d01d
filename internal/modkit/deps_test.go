package modkit

import (
	"testing"
	"time"

	"clubhouse/internal/core/thaidate"
	"clubhouse/internal/platform/config"
	"clubhouse/internal/platform/retry"
)

func TestDeps_WithDefaults(t *testing.T) {
	t.Parallel()

	d := Deps{}.WithDefaults()
	if _, ok := d.Clock.(thaidate.SystemClock); !ok {
		t.Fatalf("clock %T", d.Clock)
	}
	if d.Retry != retry.Default() {
		t.Fatalf("retry %+v", d.Retry)
	}

	fixed := thaidate.FixedClock(thaidate.MustCivilInstant(2026, 10, 17, 9, 0))
	d = Deps{Clock: fixed, Retry: retry.Policy{Attempts: 1}}.WithDefaults()
	if d.Clock != fixed || d.Retry.Attempts != 1 {
		t.Fatalf("explicit values overwritten: %+v", d)
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("MODKIT_TEST_TIMEZONE", "UTC")
	t.Setenv("MODKIT_TEST_RETRY_ATTEMPTS", "5")
	t.Setenv("MODKIT_TEST_RETRY_STEP", "250ms")

	d := FromConfig(config.New().Prefix("MODKIT_TEST_"), nil)
	sc, ok := d.Clock.(thaidate.SystemClock)
	if !ok || sc.Loc == nil || sc.Loc.String() != "UTC" {
		t.Fatalf("clock %#v", d.Clock)
	}
	if d.Retry.Attempts != 5 || d.Retry.Step != 250*time.Millisecond {
		t.Fatalf("retry %+v", d.Retry)
	}
	if d.PG != nil {
		t.Fatal("PG should stay nil")
	}
}

func TestFromConfig_Defaults(t *testing.T) {
	d := FromConfig(config.New().Prefix("MODKIT_EMPTY_"), nil)
	if sc := d.Clock.(thaidate.SystemClock); sc.Loc != thaidate.Bangkok {
		t.Fatalf("loc %v", sc.Loc)
	}
	if d.Retry != retry.Default() {
		t.Fatalf("retry %+v", d.Retry)
	}
}
