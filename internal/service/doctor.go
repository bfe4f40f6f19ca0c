package service

import (
	"encoding/json"
	"fmt"

	"github.com/Ankitch199316/habit-hive-wellbeing/internal/storage"
)

// SlotCheck is the integrity verdict for one slot.
type SlotCheck struct {
	Slot      string
	Present   bool
	Parseable bool
	Records   int
	Fixed     bool
}

// DoctorReport summarizes slot integrity across the whole data file.
type DoctorReport struct {
	Checks  []SlotCheck
	Corrupt int
}

// RunDoctor inspects every slot's raw document. With fix set, corrupt
// sequence slots are reset to an empty sequence and a corrupt settings
// slot to the default settings, so later reads stop tripping over them.
func RunDoctor(store *storage.Store, fix bool) (DoctorReport, error) {
	report := DoctorReport{}
	for _, slot := range []string{SlotMeals, SlotFasting, SlotActivity, SlotSettings} {
		check := SlotCheck{Slot: slot}
		data, ok, err := store.Backend().Get(slot)
		if err != nil {
			return report, fmt.Errorf("inspect slot %q: %w", slot, err)
		}
		if ok {
			check.Present = true
			if slot == SlotSettings {
				var record map[string]any
				check.Parseable = json.Unmarshal(data, &record) == nil
				if check.Parseable {
					check.Records = 1
				}
			} else {
				var records []json.RawMessage
				check.Parseable = json.Unmarshal(data, &records) == nil
				check.Records = len(records)
			}
		} else {
			// Absent slots are healthy; reads treat them as empty.
			check.Parseable = true
		}

		if check.Present && !check.Parseable {
			report.Corrupt++
			if fix {
				reset := []byte(`[]`)
				records := 0
				if slot == SlotSettings {
					// An empty settings document would decode as an
					// all-zero record; reset to the defaults instead.
					defaults, err := json.Marshal(DefaultSettings())
					if err != nil {
						return report, fmt.Errorf("encode default settings: %w", err)
					}
					reset = defaults
					records = 1
				}
				if err := store.Backend().Set(slot, reset); err != nil {
					return report, fmt.Errorf("reset slot %q: %w", slot, err)
				}
				check.Fixed = true
				check.Records = records
			}
		}
		report.Checks = append(report.Checks, check)
	}
	return report, nil
}
