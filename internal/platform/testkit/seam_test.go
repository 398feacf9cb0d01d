package testkit

import (
	"testing"
	"time"
)

var (
	wall  = func() time.Time { return time.Unix(0, 0) }
	limit = 50
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		fixed := time.Date(2026, 10, 17, 7, 30, 0, 0, time.UTC)
		Swap(t, &wall, func() time.Time { return fixed })
		Swap(t, &limit, 200)
		if !wall().Equal(fixed) || limit != 200 {
			t.Fatalf("swap did not apply: %v %d", wall(), limit)
		}
	})
	if wall().Unix() != 0 || limit != 50 {
		t.Fatalf("not restored: %v %d", wall(), limit)
	}
}

func TestSwap_NestedRestoresInOrder(t *testing.T) {
	t.Run("outer", func(t *testing.T) {
		Swap(t, &limit, 1)
		t.Run("inner", func(t *testing.T) {
			Swap(t, &limit, 2)
		})
		if limit != 1 {
			t.Fatalf("inner cleanup should bring back 1, got %d", limit)
		}
	})
	if limit != 50 {
		t.Fatalf("got %d", limit)
	}
}

func TestSerial_Exclusive(t *testing.T) {
	done := make(chan struct{})
	t.Run("holder", func(t *testing.T) {
		Serial(t)
		go func() {
			// blocks until holder's cleanup releases the lock
			seams.Lock()
			seams.Unlock()
			close(done)
		}()
		select {
		case <-done:
			t.Fatal("lock was not held")
		case <-time.After(20 * time.Millisecond):
		}
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock was not released")
	}
}

func TestSwapSerial(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		SwapSerial(t, &limit, 7)
		if limit != 7 {
			t.Fatalf("got %d", limit)
		}
	})
	if limit != 50 {
		t.Fatalf("got %d", limit)
	}
	// the lock is free again
	seams.Lock()
	seams.Unlock()
}
