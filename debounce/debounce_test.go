package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestBurstRunsOnce(t *testing.T) {
	var runs atomic.Int32
	done := make(chan time.Time, 4)
	d := New(func() {
		runs.Add(1)
		done <- time.Now()
	}, WithDelay(100*time.Millisecond))

	var last time.Time
	for n := 0; n < 10; n++ {
		d.Trigger()
		last = time.Now()
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case fired := <-done:
		if elapsed := fired.Sub(last); elapsed < 100*time.Millisecond {
			t.Errorf("action ran %v after the last trigger, want >= 100ms", elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("action never ran")
	}

	time.Sleep(250 * time.Millisecond)
	if n := runs.Load(); n != 1 {
		t.Errorf("runs = %d, want 1", n)
	}
	if triggers, fires := d.Stats(); triggers != 10 || fires != 1 {
		t.Errorf("Stats() = %d, %d, want 10, 1", triggers, fires)
	}
	if d.Pending() {
		t.Error("nothing should be pending after the action ran")
	}
}

func TestSeparateBurstsRunSeparately(t *testing.T) {
	var runs atomic.Int32
	d := New(func() { runs.Add(1) }, WithDelay(20*time.Millisecond))

	d.Trigger()
	time.Sleep(150 * time.Millisecond)
	d.Trigger()
	time.Sleep(150 * time.Millisecond)

	if n := runs.Load(); n != 2 {
		t.Errorf("runs = %d, want 2", n)
	}
}

func TestStop(t *testing.T) {
	var runs atomic.Int32
	d := New(func() { runs.Add(1) }, WithDelay(30*time.Millisecond))

	if d.Stop() {
		t.Error("Stop with nothing pending should return false")
	}
	d.Trigger()
	if !d.Stop() {
		t.Error("Stop should report the pending action")
	}
	time.Sleep(100 * time.Millisecond)
	if n := runs.Load(); n != 0 {
		t.Errorf("runs = %d after Stop, want 0", n)
	}
}

func TestFlush(t *testing.T) {
	var runs atomic.Int32
	d := New(func() { runs.Add(1) }, WithDelay(time.Hour))

	if d.Flush() {
		t.Error("Flush with nothing pending should return false")
	}
	d.Trigger()
	d.Trigger()
	if !d.Flush() {
		t.Error("Flush should run the pending action")
	}
	if n := runs.Load(); n != 1 {
		t.Errorf("runs = %d, want 1", n)
	}
	if d.Pending() {
		t.Error("Flush should clear the pending action")
	}
}

func TestDefaults(t *testing.T) {
	d := New(func() {}, WithDelay(-1))
	if d.Delay() != DefaultDelay {
		t.Errorf("Delay() = %v, want %v", d.Delay(), DefaultDelay)
	}
	if DefaultDelay != 250*time.Millisecond {
		t.Errorf("DefaultDelay = %v, want 250ms", DefaultDelay)
	}
}

func TestActionPanicRecovered(t *testing.T) {
	d := New(func() { panic("boom") }, WithDelay(time.Hour))
	d.Trigger()
	if !d.Flush() {
		t.Fatal("Flush returned false")
	}
	// Still usable after a panic.
	d.Trigger()
	d.Stop()
}
