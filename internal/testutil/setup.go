package testutil

import (
	"testing"
	"time"
)

// FixedTime is the clock SetupRegistry installs, so key timestamps are stable.
var FixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// SetupRegistry returns a fresh in-memory registry with a fixed clock.
// The test fails at cleanup if any key handle was left open.
//
// Example:
//
//	mem := testutil.SetupRegistry(t)
//	client := regops.New(mem)
func SetupRegistry(t *testing.T) *MemRegistry {
	t.Helper()
	m := NewMemRegistry()
	m.Now = func() time.Time { return FixedTime }
	t.Cleanup(func() {
		if n := m.OpenHandles(); n != 0 {
			t.Errorf("registry handle leak: %d handle(s) still open", n)
		}
	})
	return m
}
