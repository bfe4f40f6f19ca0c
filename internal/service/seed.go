package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

// SeedDemoData populates sample meals, activity, and an in-progress fast
// so a fresh install has something to show. It only runs when no meals
// exist and reports whether it seeded.
func SeedDemoData(store *storage.Store, clock Clock) bool {
	now := orNow(clock)
	meals := NewMeals(store, now)
	if len(meals.All()) > 0 {
		return false
	}

	samples := []SaveMealInput{
		{Name: "Oatmeal with berries", Calories: 350, Type: model.MealBreakfast},
		{Name: "Chicken salad", Calories: 450, Type: model.MealLunch},
		{Name: "Protein bar", Calories: 200, Type: model.MealSnack},
	}
	for _, in := range samples {
		if _, err := meals.Save(in); err != nil {
			return false
		}
	}

	activity := NewActivity(store, now)
	minutes, burned, steps := 22, 320, 6500
	if _, err := activity.Save(ActivityUpdate{
		ActiveMinutes:  &minutes,
		CaloriesBurned: &burned,
		Steps:          &steps,
		Workouts:       []model.Workout{{Type: "Walking", Duration: 30, CaloriesBurned: 120}},
	}); err != nil {
		return false
	}

	// A fast that started at 8 PM yesterday, still running.
	start := startOfDay(now()).AddDate(0, 0, -1).Add(20 * time.Hour)
	storage.WriteAll(store, SlotFasting, []model.FastingSession{{
		ID:          "fast-demo-" + uuid.NewString(),
		StartTime:   start,
		TargetHours: 16,
		Completed:   false,
	}})
	return true
}
