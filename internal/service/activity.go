package service

import (
	"fmt"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

// Activity is the daily activity store, one record per calendar day.
type Activity struct {
	store *storage.Store
	now   Clock
}

func NewActivity(store *storage.Store, clock Clock) *Activity {
	return &Activity{store: store, now: orNow(clock)}
}

// ActivityUpdate is a partial write against today's record. Nil fields
// leave the stored value alone; a non-nil Workouts replaces the stored
// sequence wholesale.
type ActivityUpdate struct {
	ActiveMinutes  *int
	CaloriesBurned *int
	Steps          *int
	Workouts       []model.Workout
}

// All returns every day's record in insertion order.
func (a *Activity) All() []model.ActivityData {
	return storage.ReadAll[model.ActivityData](a.store, SlotActivity)
}

// Today returns today's record, or a zero-valued record for today if none
// has been saved yet. The fresh record is not persisted until a save.
func (a *Activity) Today() model.ActivityData {
	today := startOfDay(a.now())
	for _, day := range a.All() {
		if sameDay(day.Date, today) {
			return day
		}
	}
	return model.ActivityData{Date: today, Workouts: []model.Workout{}}
}

// Save merges the update into today's record, creating it on the day's
// first write, then persists the full sequence and returns the merged
// record. An existing day keeps its position in the sequence.
func (a *Activity) Save(update ActivityUpdate) (model.ActivityData, error) {
	if update.ActiveMinutes != nil {
		if err := validateNonNegativeInt("active minutes", *update.ActiveMinutes); err != nil {
			return model.ActivityData{}, err
		}
	}
	if update.CaloriesBurned != nil {
		if err := validateNonNegativeInt("calories burned", *update.CaloriesBurned); err != nil {
			return model.ActivityData{}, err
		}
	}
	if update.Steps != nil {
		if err := validateNonNegativeInt("steps", *update.Steps); err != nil {
			return model.ActivityData{}, err
		}
	}

	today := startOfDay(a.now())
	days := a.All()
	idx := -1
	for i := range days {
		if sameDay(days[i].Date, today) {
			idx = i
			break
		}
	}

	merged := model.ActivityData{Date: today, Workouts: []model.Workout{}}
	if idx >= 0 {
		merged = days[idx]
	}
	if update.ActiveMinutes != nil {
		merged.ActiveMinutes = *update.ActiveMinutes
	}
	if update.CaloriesBurned != nil {
		merged.CaloriesBurned = *update.CaloriesBurned
	}
	if update.Steps != nil {
		merged.Steps = *update.Steps
	}
	if update.Workouts != nil {
		merged.Workouts = update.Workouts
	}

	if idx >= 0 {
		days[idx] = merged
	} else {
		days = append(days, merged)
	}
	storage.WriteAll(a.store, SlotActivity, days)
	return merged, nil
}

// AddWorkout appends one workout to today's record through the normal
// merge path: read the stored sequence, append, write it back whole.
func (a *Activity) AddWorkout(w model.Workout) (model.ActivityData, error) {
	if _, err := requireName(w.Type); err != nil {
		return model.ActivityData{}, fmt.Errorf("workout type is required")
	}
	if err := validatePositiveInt("duration", w.Duration); err != nil {
		return model.ActivityData{}, err
	}
	if err := validateNonNegativeInt("calories burned", w.CaloriesBurned); err != nil {
		return model.ActivityData{}, err
	}
	workouts := append(a.Today().Workouts, w)
	return a.Save(ActivityUpdate{Workouts: workouts})
}
