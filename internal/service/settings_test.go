package service_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

func TestGetReturnsDefaultsWhenUnset(t *testing.T) {
	t.Parallel()
	settings := service.NewSettings(newTestStore(t))
	if diff := cmp.Diff(service.DefaultSettings(), settings.Get()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestGetReturnsDefaultsOnUnreadableData(t *testing.T) {
	t.Parallel()
	backend := storage.NewMemory()
	if err := backend.Set(service.SlotSettings, []byte(`{broken`)); err != nil {
		t.Fatalf("seed corrupt settings: %v", err)
	}
	settings := service.NewSettings(storage.NewStore(backend, nil))
	if got := settings.Get(); got.DailyCalorieGoal != 2000 {
		t.Fatalf("expected defaults on corrupt data, got %+v", got)
	}
}

func TestSavePartialPreservesOtherFields(t *testing.T) {
	t.Parallel()
	settings := service.NewSettings(newTestStore(t))

	if _, err := settings.Save(service.SettingsUpdate{
		FastingSchedule: &model.FastingSchedule{TargetHours: 18, PreferredStartTime: "20:00"},
	}); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	updated, err := settings.Save(service.SettingsUpdate{DailyCalorieGoal: intPtr(2500)})
	if err != nil {
		t.Fatalf("partial save: %v", err)
	}
	if updated.DailyCalorieGoal != 2500 {
		t.Fatalf("calorie goal not applied: %+v", updated)
	}
	if updated.TargetActiveMinutes != 30 {
		t.Fatalf("target active minutes changed: %+v", updated)
	}
	want := model.FastingSchedule{TargetHours: 18, PreferredStartTime: "20:00"}
	if diff := cmp.Diff(want, updated.FastingSchedule); diff != "" {
		t.Fatalf("fasting schedule changed (-want +got):\n%s", diff)
	}
}

func TestScheduleReplacesWholesale(t *testing.T) {
	t.Parallel()
	settings := service.NewSettings(newTestStore(t))

	if _, err := settings.Save(service.SettingsUpdate{
		FastingSchedule: &model.FastingSchedule{TargetHours: 16, PreferredStartTime: "20:00"},
	}); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	// The merge is shallow: a schedule without PreferredStartTime drops
	// the stored one. Pinned so nobody "fixes" it into a deep merge.
	updated, err := settings.Save(service.SettingsUpdate{
		FastingSchedule: &model.FastingSchedule{TargetHours: 18},
	})
	if err != nil {
		t.Fatalf("replace schedule: %v", err)
	}
	if updated.FastingSchedule.PreferredStartTime != "" {
		t.Fatalf("expected wholesale replacement, got %+v", updated.FastingSchedule)
	}
	if updated.FastingSchedule.TargetHours != 18 {
		t.Fatalf("target hours not applied: %+v", updated.FastingSchedule)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	settings := service.NewSettings(store)

	saved, err := settings.Save(service.SettingsUpdate{
		DailyCalorieGoal:    intPtr(1800),
		TargetActiveMinutes: intPtr(45),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if diff := cmp.Diff(saved, service.NewSettings(store).Get()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsValidation(t *testing.T) {
	t.Parallel()
	settings := service.NewSettings(newTestStore(t))

	if _, err := settings.Save(service.SettingsUpdate{DailyCalorieGoal: intPtr(0)}); err == nil {
		t.Fatalf("expected error for zero calorie goal")
	}
	if _, err := settings.Save(service.SettingsUpdate{
		FastingSchedule: &model.FastingSchedule{TargetHours: 16, PreferredStartTime: "8pm"},
	}); err == nil {
		t.Fatalf("expected error for malformed start time")
	}
}
