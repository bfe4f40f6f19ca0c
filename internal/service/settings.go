package service

import (
	"fmt"
	"time"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

// Settings is the single-record configuration store.
type Settings struct {
	store *storage.Store
}

func NewSettings(store *storage.Store) *Settings {
	return &Settings{store: store}
}

// DefaultSettings returns what Get falls back to when nothing usable is
// persisted.
func DefaultSettings() model.UserSettings {
	return model.UserSettings{
		DailyCalorieGoal:    2000,
		TargetActiveMinutes: 30,
		FastingSchedule: model.FastingSchedule{
			TargetHours: 16,
		},
	}
}

// SettingsUpdate is a partial write. Nil fields leave the stored value
// alone. The merge is shallow: a non-nil FastingSchedule replaces the
// stored schedule wholesale, including its PreferredStartTime, so callers
// must pass the schedule complete.
type SettingsUpdate struct {
	DailyCalorieGoal    *int
	TargetActiveMinutes *int
	FastingSchedule     *model.FastingSchedule
}

// Get returns the persisted settings, or the defaults when nothing is
// persisted or the persisted record is unreadable.
func (s *Settings) Get() model.UserSettings {
	settings, ok := storage.ReadOne[model.UserSettings](s.store, SlotSettings)
	if !ok {
		return DefaultSettings()
	}
	return settings
}

// Save merges the update into the current settings, persists, and returns
// the merged record.
func (s *Settings) Save(update SettingsUpdate) (model.UserSettings, error) {
	if update.DailyCalorieGoal != nil {
		if err := validatePositiveInt("daily calorie goal", *update.DailyCalorieGoal); err != nil {
			return model.UserSettings{}, err
		}
	}
	if update.TargetActiveMinutes != nil {
		if err := validatePositiveInt("target active minutes", *update.TargetActiveMinutes); err != nil {
			return model.UserSettings{}, err
		}
	}
	if update.FastingSchedule != nil {
		if err := validatePositiveInt("fasting target hours", update.FastingSchedule.TargetHours); err != nil {
			return model.UserSettings{}, err
		}
		if start := update.FastingSchedule.PreferredStartTime; start != "" {
			if _, err := time.Parse("15:04", start); err != nil {
				return model.UserSettings{}, fmt.Errorf("invalid preferred start time %q (expected HH:MM)", start)
			}
		}
	}

	settings := s.Get()
	if update.DailyCalorieGoal != nil {
		settings.DailyCalorieGoal = *update.DailyCalorieGoal
	}
	if update.TargetActiveMinutes != nil {
		settings.TargetActiveMinutes = *update.TargetActiveMinutes
	}
	if update.FastingSchedule != nil {
		settings.FastingSchedule = *update.FastingSchedule
	}
	storage.WriteOne(s.store, SlotSettings, settings)
	return settings, nil
}
