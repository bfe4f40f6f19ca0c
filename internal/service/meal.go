package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

// Meals is the meal entry store. Entries are append-only: once saved, a
// meal's id, time, and fields never change; the only mutation is removal.
type Meals struct {
	store *storage.Store
	now   Clock
}

func NewMeals(store *storage.Store, clock Clock) *Meals {
	return &Meals{store: store, now: orNow(clock)}
}

type SaveMealInput struct {
	Name     string
	Calories int
	Type     model.MealType
}

// All returns every logged meal in insertion order.
func (m *Meals) All() []model.Meal {
	return storage.ReadAll[model.Meal](m.store, SlotMeals)
}

// ByDate returns the meals whose time falls within day's calendar day,
// inclusive at both midnight and the last instant before the next one.
func (m *Meals) ByDate(day time.Time) []model.Meal {
	start := startOfDay(day)
	end := endOfDay(day)
	matched := make([]model.Meal, 0)
	for _, meal := range m.All() {
		if !meal.Time.Before(start) && !meal.Time.After(end) {
			matched = append(matched, meal)
		}
	}
	return matched
}

// Save assigns a fresh id and the current time, appends the meal, persists
// the sequence, and returns the stored record.
func (m *Meals) Save(in SaveMealInput) (model.Meal, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return model.Meal{}, err
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return model.Meal{}, err
	}
	if !in.Type.Valid() {
		return model.Meal{}, fmt.Errorf("invalid meal type %q", in.Type)
	}

	meal := model.Meal{
		ID:       "meal-" + uuid.NewString(),
		Name:     name,
		Calories: in.Calories,
		Time:     m.now(),
		Type:     in.Type,
	}
	meals := append(m.All(), meal)
	storage.WriteAll(m.store, SlotMeals, meals)
	return meal, nil
}

// Delete removes the meal with the given id. Unknown ids are a no-op.
func (m *Meals) Delete(id string) {
	meals := m.All()
	kept := meals[:0]
	for _, meal := range meals {
		if meal.ID != id {
			kept = append(kept, meal)
		}
	}
	storage.WriteAll(m.store, SlotMeals, kept)
}

// DayCalories sums the calories of every meal on day's calendar day.
func (m *Meals) DayCalories(day time.Time) int {
	total := 0
	for _, meal := range m.ByDate(day) {
		total += meal.Calories
	}
	return total
}

// ByTypeOnDay groups a day's meals by type, preserving insertion order
// within each group.
func (m *Meals) ByTypeOnDay(day time.Time) map[model.MealType][]model.Meal {
	grouped := make(map[model.MealType][]model.Meal)
	for _, meal := range m.ByDate(day) {
		grouped[meal.Type] = append(grouped[meal.Type], meal)
	}
	return grouped
}
