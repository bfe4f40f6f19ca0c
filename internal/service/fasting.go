package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/model"
	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

// Fasting is the fasting session store. It maintains the single-open-
// session invariant: starting a fast force-completes whatever was open.
type Fasting struct {
	store *storage.Store
	now   Clock
}

func NewFasting(store *storage.Store, clock Clock) *Fasting {
	return &Fasting{store: store, now: orNow(clock)}
}

// All returns every session, open or completed, in insertion order.
func (f *Fasting) All() []model.FastingSession {
	return storage.ReadAll[model.FastingSession](f.store, SlotFasting)
}

// Current returns the open session, or nil when none is running.
func (f *Fasting) Current() *model.FastingSession {
	for _, session := range f.All() {
		if !session.Completed {
			s := session
			return &s
		}
	}
	return nil
}

// Start begins a new fast. Every session still open (more than one, if
// the data was corrupted into that state) is completed first, its end
// time pinned to the new session's start instant.
func (f *Fasting) Start(targetHours float64) (model.FastingSession, error) {
	if targetHours <= 0 {
		return model.FastingSession{}, fmt.Errorf("target hours must be > 0")
	}

	now := f.now()
	sessions := f.All()
	for i := range sessions {
		if !sessions[i].Completed {
			end := now
			sessions[i].EndTime = &end
			sessions[i].Completed = true
		}
	}

	session := model.FastingSession{
		ID:          "fast-" + uuid.NewString(),
		StartTime:   now,
		TargetHours: targetHours,
		Completed:   false,
	}
	sessions = append(sessions, session)
	storage.WriteAll(f.store, SlotFasting, sessions)
	return session, nil
}

// End completes the session with the given id and returns the updated
// record, or nil when the id is unknown. Ending an already-completed
// session moves its end time to the current instant.
func (f *Fasting) End(id string) *model.FastingSession {
	sessions := f.All()
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}
		end := f.now()
		sessions[i].EndTime = &end
		sessions[i].Completed = true
		storage.WriteAll(f.store, SlotFasting, sessions)
		s := sessions[i]
		return &s
	}
	return nil
}

// Streak counts consecutive calendar days with a completed fast, walking
// backward from today. A session ending on the cursor day or the day
// before extends the streak and moves the cursor to the day before its
// end day; anything older breaks the walk.
func (f *Fasting) Streak() int {
	completed := make([]model.FastingSession, 0)
	for _, session := range f.All() {
		if session.Completed && session.EndTime != nil {
			completed = append(completed, session)
		}
	}
	if len(completed) == 0 {
		return 0
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].EndTime.After(*completed[j].EndTime)
	})

	streak := 0
	cursor := startOfDay(f.now())
	for _, session := range completed {
		endDay := startOfDay(*session.EndTime)
		dayDiff := int(cursor.Sub(endDay) / (24 * time.Hour))
		if dayDiff > 1 {
			break
		}
		streak++
		cursor = endDay.AddDate(0, 0, -1)
	}
	return streak
}
