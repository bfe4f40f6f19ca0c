package model

import "time"

// MealType classifies a meal entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether t is one of the known meal types.
func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal is a single logged meal. Time is assigned at creation and never
// changes afterwards.
type Meal struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Time     time.Time `json:"time"`
	Type     MealType  `json:"type"`
}

// FastingSession is one fasting attempt. EndTime stays zero until the
// session is completed; at most one session may be open at a time.
type FastingSession struct {
	ID          string     `json:"id"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	TargetHours float64    `json:"targetHours"`
	Completed   bool       `json:"completed"`
}

// Target is the intended fast length.
func (s FastingSession) Target() time.Duration {
	return time.Duration(s.TargetHours * float64(time.Hour))
}

// Elapsed is the time spent fasting as of now. For a completed session it
// is fixed at EndTime minus StartTime.
func (s FastingSession) Elapsed(now time.Time) time.Duration {
	end := now
	if s.Completed && s.EndTime != nil {
		end = *s.EndTime
	}
	if end.Before(s.StartTime) {
		return 0
	}
	return end.Sub(s.StartTime)
}

// Remaining is the time left until the target is reached, floored at zero.
func (s FastingSession) Remaining(now time.Time) time.Duration {
	left := s.Target() - s.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Progress is Elapsed over Target clamped to [0, 1].
func (s FastingSession) Progress(now time.Time) float64 {
	target := s.Target()
	if target <= 0 {
		return 0
	}
	p := float64(s.Elapsed(now)) / float64(target)
	if p > 1 {
		return 1
	}
	return p
}

// Workout is one exercise bout within a day's activity record.
type Workout struct {
	Type           string `json:"type"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
}

// ActivityData aggregates one calendar day of activity. Date is truncated
// to local midnight; there is at most one record per day.
type ActivityData struct {
	Date           time.Time `json:"date"`
	ActiveMinutes  int       `json:"activeMinutes"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Steps          int       `json:"steps"`
	Workouts       []Workout `json:"workouts"`
}

// FastingSchedule is the user's preferred fasting routine.
type FastingSchedule struct {
	TargetHours        int    `json:"targetHours"`
	PreferredStartTime string `json:"preferredStartTime,omitempty"`
}

// UserSettings is the single persisted configuration record.
//
// Partial updates merge at the top level only: a partial FastingSchedule
// replaces the nested record wholesale, dropping sibling fields the caller
// did not supply. Callers updating the schedule must pass it complete.
type UserSettings struct {
	DailyCalorieGoal    int             `json:"dailyCalorieGoal"`
	TargetActiveMinutes int             `json:"targetActiveMinutes"`
	FastingSchedule     FastingSchedule `json:"fastingSchedule"`
}
