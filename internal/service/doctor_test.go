package service_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

func TestDoctorReportsHealthyStore(t *testing.T) {
	t.Parallel()
	clock := &stepClock{now: day(0)}
	store := newTestStore(t)
	meals := service.NewMeals(store, clock.Clock())
	if _, err := meals.Save(service.SaveMealInput{Name: "Oatmeal", Calories: 350, Type: model.MealBreakfast}); err != nil {
		t.Fatalf("save meal: %v", err)
	}

	report, err := service.RunDoctor(store, false)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if report.Corrupt != 0 {
		t.Fatalf("healthy store flagged corrupt: %+v", report)
	}
	if len(report.Checks) != 4 {
		t.Fatalf("expected 4 slot checks, got %d", len(report.Checks))
	}
	for _, check := range report.Checks {
		if check.Slot == service.SlotMeals && check.Records != 1 {
			t.Fatalf("meal slot records: got %d want 1", check.Records)
		}
	}
}

func TestDoctorDetectsAndFixesCorruptSlot(t *testing.T) {
	t.Parallel()
	backend := storage.NewMemory()
	if err := backend.Set(service.SlotFasting, []byte(`{oops`)); err != nil {
		t.Fatalf("seed corrupt slot: %v", err)
	}
	store := storage.NewStore(backend, nil)

	report, err := service.RunDoctor(store, false)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if report.Corrupt != 1 {
		t.Fatalf("expected 1 corrupt slot, got %d", report.Corrupt)
	}

	if _, err := service.RunDoctor(store, true); err != nil {
		t.Fatalf("doctor --fix: %v", err)
	}
	after, err := service.RunDoctor(store, false)
	if err != nil {
		t.Fatalf("re-check: %v", err)
	}
	if after.Corrupt != 0 {
		t.Fatalf("fix left corrupt slots: %+v", after)
	}
}

func TestDoctorFixRestoresDefaultSettings(t *testing.T) {
	t.Parallel()
	backend := storage.NewMemory()
	if err := backend.Set(service.SlotSettings, []byte(`{broken`)); err != nil {
		t.Fatalf("seed corrupt settings: %v", err)
	}
	store := storage.NewStore(backend, nil)

	if _, err := service.RunDoctor(store, true); err != nil {
		t.Fatalf("doctor --fix: %v", err)
	}
	got := service.NewSettings(store).Get()
	if diff := cmp.Diff(service.DefaultSettings(), got); diff != "" {
		t.Fatalf("fixed settings slot must hold the defaults (-want +got):\n%s", diff)
	}
}
