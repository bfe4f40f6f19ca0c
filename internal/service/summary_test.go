package service_test

import (
	"testing"
	"time"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/service"
)

func TestSummarize(t *testing.T) {
	t.Parallel()
	clock := &stepClock{now: day(0)}
	store := newTestStore(t)

	meals := service.NewMeals(store, clock.Clock())
	fasting := service.NewFasting(store, clock.Clock())
	activity := service.NewActivity(store, clock.Clock())
	settings := service.NewSettings(store)

	if _, err := meals.Save(service.SaveMealInput{Name: "Oatmeal", Calories: 350, Type: model.MealBreakfast}); err != nil {
		t.Fatalf("save meal: %v", err)
	}
	if _, err := meals.Save(service.SaveMealInput{Name: "Chicken salad", Calories: 450, Type: model.MealLunch}); err != nil {
		t.Fatalf("save meal: %v", err)
	}
	if _, err := activity.Save(service.ActivityUpdate{ActiveMinutes: intPtr(22), Steps: intPtr(6500)}); err != nil {
		t.Fatalf("save activity: %v", err)
	}

	// A fast started 8 hours ago with a 16 hour target.
	clock.Set(day(0).Add(-8 * time.Hour))
	if _, err := fasting.Start(16); err != nil {
		t.Fatalf("start fast: %v", err)
	}
	clock.Set(day(0))

	o := service.Summarize(meals, fasting, activity, settings, clock.Clock())
	if o.CaloriesConsumed != 800 {
		t.Fatalf("calories consumed: got %d want 800", o.CaloriesConsumed)
	}
	if o.CalorieGoal != 2000 || o.CaloriesRemaining != 1200 {
		t.Fatalf("goal math wrong: %+v", o)
	}
	if o.MealCount != 2 || o.ActiveMinutes != 22 || o.Steps != 6500 {
		t.Fatalf("counts wrong: %+v", o)
	}
	if o.CurrentFast == nil {
		t.Fatalf("expected a running fast")
	}
	if o.CurrentFast.Elapsed != 8*time.Hour {
		t.Fatalf("elapsed: got %v want 8h", o.CurrentFast.Elapsed)
	}
	if o.CurrentFast.Remaining != 8*time.Hour {
		t.Fatalf("remaining: got %v want 8h", o.CurrentFast.Remaining)
	}
	if o.CurrentFast.Progress != 0.5 {
		t.Fatalf("progress: got %v want 0.5", o.CurrentFast.Progress)
	}
}

func TestSummarizeWithoutData(t *testing.T) {
	t.Parallel()
	clock := &stepClock{now: day(0)}
	store := newTestStore(t)

	o := service.Summarize(
		service.NewMeals(store, clock.Clock()),
		service.NewFasting(store, clock.Clock()),
		service.NewActivity(store, clock.Clock()),
		service.NewSettings(store),
		clock.Clock(),
	)
	if o.CurrentFast != nil {
		t.Fatalf("no fast should be running")
	}
	if o.CaloriesRemaining != 2000 || o.FastingStreakDays != 0 {
		t.Fatalf("empty overview wrong: %+v", o)
	}
}
