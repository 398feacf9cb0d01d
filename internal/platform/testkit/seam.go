package testkit

import (
	"sync"
	"testing"
)

// seams guards package level variables that tests replace
var seams sync.Mutex

// Swap replaces *target with v until the test ends
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	prev := *target
	*target = v
	t.Cleanup(func() { *target = prev })
}

// Serial holds the seam lock until the test ends; tests that Swap shared
// variables call it first so they never overlap
func Serial(t *testing.T) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}

// SwapSerial is Serial followed by Swap
func SwapSerial[T any](t *testing.T, target *T, v T) {
	t.Helper()
	Serial(t)
	Swap(t, target, v)
}
