package service

import (
	"time"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
)

// FastStatus is the running fast as the dashboard shows it.
type FastStatus struct {
	Session   model.FastingSession
	Elapsed   time.Duration
	Remaining time.Duration
	Progress  float64
}

// Overview is one day's headline numbers across all four stores.
type Overview struct {
	Date               string
	CaloriesConsumed   int
	CalorieGoal        int
	CaloriesRemaining  int
	MealCount          int
	ActiveMinutes      int
	TargetActiveMin    int
	Steps              int
	WorkoutCount       int
	CaloriesBurned     int
	CurrentFast        *FastStatus
	FastingStreakDays  int
	FastingTargetHours int
}

// Summarize assembles the dashboard view for the current day.
func Summarize(meals *Meals, fasting *Fasting, activity *Activity, settings *Settings, clock Clock) Overview {
	now := orNow(clock)()
	cfg := settings.Get()
	today := activity.Today()

	o := Overview{
		Date:               now.Format("2006-01-02"),
		CaloriesConsumed:   meals.DayCalories(now),
		CalorieGoal:        cfg.DailyCalorieGoal,
		MealCount:          len(meals.ByDate(now)),
		ActiveMinutes:      today.ActiveMinutes,
		TargetActiveMin:    cfg.TargetActiveMinutes,
		Steps:              today.Steps,
		WorkoutCount:       len(today.Workouts),
		CaloriesBurned:     today.CaloriesBurned,
		FastingStreakDays:  fasting.Streak(),
		FastingTargetHours: cfg.FastingSchedule.TargetHours,
	}
	o.CaloriesRemaining = o.CalorieGoal - o.CaloriesConsumed

	if current := fasting.Current(); current != nil {
		o.CurrentFast = &FastStatus{
			Session:   *current,
			Elapsed:   current.Elapsed(now),
			Remaining: current.Remaining(now),
			Progress:  current.Progress(now),
		}
	}
	return o
}
