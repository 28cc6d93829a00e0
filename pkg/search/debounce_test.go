package search

import (
	"sync"
	"testing"
	"time"
)

// collector gathers debounced emissions for assertions.
type collector struct {
	mu     sync.Mutex
	values []string
}

func (c *collector) emit(v string) {
	c.mu.Lock()
	c.values = append(c.values, v)
	c.mu.Unlock()
}

func (c *collector) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	c := &collector{}
	d := NewDebouncer(30*time.Millisecond, c.emit)

	for _, v := range []string{"a", "ap", "app", "appl"} {
		d.Input(v)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	got := c.snapshot()
	if len(got) != 1 {
		t.Fatalf("burst must emit once, got %d emissions: %v", len(got), got)
	}
	if got[0] != "appl" {
		t.Errorf("emission must carry the last value, got %q", got[0])
	}
}

func TestDebouncerSeparateBursts(t *testing.T) {
	c := &collector{}
	d := NewDebouncer(20*time.Millisecond, c.emit)

	d.Input("apple")
	time.Sleep(60 * time.Millisecond)
	d.Input("tesla")
	time.Sleep(60 * time.Millisecond)

	got := c.snapshot()
	if len(got) != 2 || got[0] != "apple" || got[1] != "tesla" {
		t.Errorf("expected [apple tesla], got %v", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	c := &collector{}
	d := NewDebouncer(20*time.Millisecond, c.emit)

	d.Input("doomed")
	d.Cancel()
	time.Sleep(60 * time.Millisecond)

	if got := c.snapshot(); len(got) != 0 {
		t.Errorf("canceled input must not emit, got %v", got)
	}
	if d.Pending() {
		t.Error("debouncer must be idle after cancel")
	}
}

func TestDebouncerPending(t *testing.T) {
	d := NewDebouncer(40*time.Millisecond, func(string) {})

	if d.Pending() {
		t.Error("fresh debouncer must be idle")
	}
	d.Input("x")
	if !d.Pending() {
		t.Error("armed debouncer must report pending")
	}
	time.Sleep(100 * time.Millisecond)
	if d.Pending() {
		t.Error("fired debouncer must return to idle")
	}
}

func TestDebouncerRestartExtendsQuiet(t *testing.T) {
	c := &collector{}
	d := NewDebouncer(50*time.Millisecond, c.emit)

	// Keep poking faster than the quiet period; nothing may emit yet.
	for i := 0; i < 5; i++ {
		d.Input("held")
		time.Sleep(20 * time.Millisecond)
	}
	if got := c.snapshot(); len(got) != 0 {
		t.Fatalf("quiet period never elapsed, yet got %v", got)
	}

	time.Sleep(120 * time.Millisecond)
	if got := c.snapshot(); len(got) != 1 {
		t.Errorf("expected exactly one emission after the burst, got %v", got)
	}
}
