// Package service implements the tracker's record stores (meals, fasting
// sessions, daily activity, settings) on top of the slot storage layer,
// plus derived views like day summaries and the fasting streak.
package service

import (
	"fmt"
	"strings"
	"time"
)

// Slot names, namespaced so the data file can be shared with other local
// tooling without collisions. They match the keys the data has always
// lived under.
const (
	SlotMeals    = "habit-hive-meals"
	SlotFasting  = "habit-hive-fasting"
	SlotActivity = "habit-hive-activity"
	SlotSettings = "habit-hive-settings"
)

// Clock supplies the current instant. Services take one so day-boundary
// logic (meal buckets, activity upsert, streaks) is deterministic under
// test; nil means time.Now.
type Clock func() time.Time

func orNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validatePositiveInt(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("name is required")
	}
	return name, nil
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay is the last representable instant of t's calendar day. Built
// from the next midnight so it stays correct across DST transitions.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func sameDay(a, b time.Time) bool {
	return startOfDay(a).Equal(startOfDay(b))
}
