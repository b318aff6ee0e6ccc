package search

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_FiresOnTrailingEdge(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })

	if fired.Load() != 0 {
		t.Fatal("callback fired before the delay elapsed")
	}

	time.Sleep(60 * time.Millisecond)
	if fired.Load() != 1 {
		t.Fatalf("expected exactly one firing, got %d", fired.Load())
	}
}

func TestDebouncer_NewTriggerSupersedesPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var stale, fresh atomic.Int32
	d.Trigger(func() { stale.Add(1) })
	time.Sleep(10 * time.Millisecond)
	d.Trigger(func() { fresh.Add(1) })

	time.Sleep(80 * time.Millisecond)

	if stale.Load() != 0 {
		t.Error("superseded callback still fired")
	}
	if fresh.Load() != 1 {
		t.Errorf("latest callback fired %d times, want 1", fresh.Load())
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatal("cancelled callback fired")
	}
}

func TestDebouncer_BurstCollapsesToOne(t *testing.T) {
	d := NewDebouncer(15 * time.Millisecond)

	var fired atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { fired.Add(1) })
	}

	time.Sleep(60 * time.Millisecond)
	if fired.Load() != 1 {
		t.Fatalf("burst of triggers fired %d times, want 1", fired.Load())
	}
}
