package ratelimit

import (
	"fmt"
	"runtime"
	"testing"
	"time"
)

func TestAllow_SweepsExpiredWindows(t *testing.T) {
	l := New(1, 10*time.Millisecond)
	for i := 0; i < 10; i++ {
		l.Allow(fmt.Sprintf("10.0.0.%d", i))
	}
	if got := len(l.windows); got != 10 {
		t.Fatalf("expected 10 windows, got %d", got)
	}

	time.Sleep(30 * time.Millisecond)
	l.Allow("10.0.1.1")

	l.mu.Lock()
	defer l.mu.Unlock()
	if got := len(l.windows); got != 1 {
		t.Errorf("expected expired windows swept, %d left", got)
	}
}

func TestNew_StartsNoGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 20; i++ {
		New(10, time.Minute)
	}
	if after := runtime.NumGoroutine(); after > before {
		t.Errorf("goroutines grew from %d to %d", before, after)
	}
}
