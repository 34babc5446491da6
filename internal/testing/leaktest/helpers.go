// Package leaktest checks that concurrent code under test returns every
// goroutine it starts.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	drainDelay   = 50 * time.Millisecond
	pollInterval = 10 * time.Millisecond
)

// GoroutineChecker snapshots the goroutine count and compares against it later
type GoroutineChecker struct {
	baseline int
	t        testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		baseline: runtime.NumGoroutine(),
		t:        t,
	}
}

// Check fails the test when more than tolerance goroutines outlive the baseline
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(drainDelay * 4)
	current := runtime.NumGoroutine()
	for current-g.baseline > tolerance && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(pollInterval)
		current = runtime.NumGoroutine()
	}

	if leaked := current - g.baseline; leaked > tolerance {
		g.t.Errorf("goroutine leak: baseline=%d current=%d leaked=%d tolerance=%d",
			g.baseline, current, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if any goroutine it started is still running
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines blocks until the goroutine count drops to target or timeout passes
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= target {
			return
		}
		time.Sleep(pollInterval)
	}

	t.Errorf("timed out waiting for goroutines: current=%d target=%d", runtime.NumGoroutine(), target)
}
