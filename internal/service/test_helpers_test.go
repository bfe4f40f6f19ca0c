package service_test

import (
	"testing"
	"time"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStore(storage.NewMemory(), nil)
}

// stepClock returns a clock pinned to a settable instant.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Clock() service.Clock {
	return func() time.Time { return c.now }
}

func (c *stepClock) Set(t time.Time) { c.now = t }

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 30, hour, minute, 0, 0, time.Local)
}

func day(offset int) time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local).AddDate(0, 0, offset)
}
