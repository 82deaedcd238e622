// Package codec converts between the compact backend reminder encoding
// (reminderDaysBefore, specificDayOfWeek, reminderConfig) and the normalized
// descriptor list the rest of the system works with. Decoding tolerates
// anything the database hands it; rejecting bad input is the validation
// layer's job on the write path.
package codec

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tasks-management/reminder-engine/internal/domain"
)

const (
	daysBeforeIDPrefix = "days-before-"
	dayOfWeekIDPrefix  = "day-of-week-"
	generatedIDPrefix  = "reminder-"
)

// Encoded is the persisted form produced by Encode. All three fields are
// always present on the wire: a cleared reminder set is []/null/null, never
// a missing field.
type Encoded struct {
	DaysBefore        []int
	SpecificDayOfWeek *domain.Weekday
	// Config is nil when empty, never an empty slice: the persistence layer
	// distinguishes "field cleared" (null) from "not applicable".
	Config []domain.Reminder
}

// Decode expands the three backend fields into the normalized descriptor
// list. Order is deterministic: days-before entries, then the day-of-week
// entry, then reminderConfig entries. It never fails; absent or malformed
// inputs contribute nothing.
func Decode(daysBefore []int, specificDayOfWeek *domain.Weekday, dueDate *time.Time, config json.RawMessage) []domain.Reminder {
	out := make([]domain.Reminder, 0, len(daysBefore)+1)

	// A days-before reminder without a due date has nothing to count back
	// from; those entries are dropped rather than fabricated.
	if dueDate != nil {
		for _, n := range daysBefore {
			out = append(out, domain.Reminder{
				ID:         fmt.Sprintf("%s%d", daysBeforeIDPrefix, n),
				Timeframe:  domain.TimeframeSpecificDate,
				Time:       domain.DefaultReminderTime,
				DaysBefore: n,
			})
		}
	}

	if specificDayOfWeek != nil {
		weekday := *specificDayOfWeek
		out = append(out, domain.Reminder{
			ID:        fmt.Sprintf("%s%d", dayOfWeekIDPrefix, weekday.Int()),
			Timeframe: domain.TimeframeEveryWeek,
			Time:      domain.DefaultReminderTime,
			DayOfWeek: &weekday,
		})
	}

	for _, descriptor := range parseConfig(config) {
		if descriptor.ID == "" {
			descriptor.ID = generatedIDPrefix + uuid.NewString()
		}

		out = append(out, descriptor)
	}

	return out
}

// DecodeTask decodes a task's persisted reminder fields.
func DecodeTask(task *domain.Task) []domain.Reminder {
	return Decode(task.ReminderDaysBefore(), task.SpecificDayOfWeek(), task.DueDate(), task.ReminderConfig())
}

// Encode partitions descriptors into the three backend fields. Days-before
// rules with a due date become reminderDaysBefore offsets (distinct, sorted
// furthest-first); weekly rules collapse into the scalar specificDayOfWeek;
// everything else lands in reminderConfig.
func Encode(reminders []domain.Reminder, dueDate *time.Time) Encoded {
	offsets := make([]int, 0, len(reminders))
	seen := make(map[int]struct{})

	var weekly *domain.Reminder

	weeklyCount := 0
	config := make([]domain.Reminder, 0, len(reminders))

	for i, r := range reminders {
		switch {
		case r.IsDaysBefore() && dueDate != nil:
			if _, dup := seen[r.DaysBefore]; !dup {
				seen[r.DaysBefore] = struct{}{}
				offsets = append(offsets, r.DaysBefore)
			}
		case r.Timeframe == domain.TimeframeEveryWeek:
			weekly = &reminders[i]
			weeklyCount++
		default:
			config = append(config, r)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(offsets)))

	var specificDayOfWeek *domain.Weekday

	if weekly != nil {
		// The schema holds a single weekly rule. Keeping only the last entry
		// is lossy, so surface it instead of dropping silently.
		if weeklyCount > 1 {
			slog.Warn("multiple weekly reminders collapse into one",
				"count", weeklyCount,
				"kept_day_of_week", weekly.WeekdayOrMonday().Int(),
			)
		}

		day := weekly.WeekdayOrMonday()
		specificDayOfWeek = &day
	}

	if len(config) == 0 {
		config = nil
	}

	return Encoded{
		DaysBefore:        offsets,
		SpecificDayOfWeek: specificDayOfWeek,
		Config:            config,
	}
}

// MarshalConfig renders the reminderConfig bucket for persistence: a JSON
// array, or nil when the bucket is empty.
func MarshalConfig(config []domain.Reminder) (json.RawMessage, error) {
	if len(config) == 0 {
		return nil, nil
	}

	entries := make([]reminderJSON, 0, len(config))
	for _, r := range config {
		entries = append(entries, fromDescriptor(r))
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal reminder config: %w", err)
	}

	return data, nil
}
