// Package occurrence provides the batch filters the scheduler tick and the
// list views run over a task collection. Both filters are pure: the caller
// passes the reference date, so overlapping ticks and replays are safe.
package occurrence

import (
	"time"

	"github.com/tasks-management/reminder-engine/internal/codec"
	"github.com/tasks-management/reminder-engine/internal/domain"
)

type Filter struct{}

func NewFilter() *Filter {
	return &Filter{}
}

// DueOn returns the tasks that occur on the given date and are still open.
func (f *Filter) DueOn(tasks []*domain.Task, date time.Time) []*domain.Task {
	out := make([]*domain.Task, 0, len(tasks))

	for _, task := range tasks {
		if task.IsCompleted() {
			continue
		}

		if task.OccursOn(date) {
			out = append(out, task)
		}
	}

	return out
}

// ReminderFiringOn returns the tasks with at least one reminder whose trigger
// date is the given date. Days-before rules count back from the task's
// effective due date (explicit due date, next weekday occurrence, or next
// list-cadence occurrence); repeating timeframe rules fire on the dates the
// timeframe itself selects.
func (f *Filter) ReminderFiringOn(tasks []*domain.Task, date time.Time) []*domain.Task {
	day := domain.StartOfDay(date)
	out := make([]*domain.Task, 0, len(tasks))

	for _, task := range tasks {
		if task.IsCompleted() {
			continue
		}

		if taskReminderFires(task, day) {
			out = append(out, task)
		}
	}

	return out
}

func taskReminderFires(task *domain.Task, day time.Time) bool {
	// Raw offsets are checked directly against the effective due date: the
	// codec drops them when the task has no explicit due date, but here the
	// weekday and list-cadence fallbacks still give them an anchor.
	for _, n := range task.ReminderDaysBefore() {
		if offsetFires(task, n, day) {
			return true
		}
	}

	reminders := codec.Decode(nil, task.SpecificDayOfWeek(), nil, task.ReminderConfig())

	for _, r := range reminders {
		if reminderFires(task, r, day) {
			return true
		}
	}

	return false
}

func offsetFires(task *domain.Task, n int, day time.Time) bool {
	if n <= 0 {
		return false
	}

	due, ok := task.EffectiveDueDate(day)
	if !ok {
		return false
	}

	return due.AddDate(0, 0, -n).Equal(day)
}

func reminderFires(task *domain.Task, r domain.Reminder, day time.Time) bool {
	if r.IsDaysBefore() {
		due, ok := task.EffectiveDueDate(day)
		if !ok {
			return false
		}

		return due.AddDate(0, 0, -r.DaysBefore).Equal(day)
	}

	switch r.Timeframe {
	case domain.TimeframeEveryDay:
		return true
	case domain.TimeframeEveryWeek:
		return int(day.Weekday()) == r.WeekdayOrMonday().Int()
	case domain.TimeframeEveryMonth:
		return day.Day() == 1
	case domain.TimeframeEveryYear:
		return day.Month() == time.January && day.Day() == 1
	case domain.TimeframeSpecificDate:
		return specificDateFires(r, day)
	default:
		return false
	}
}

func specificDateFires(r domain.Reminder, day time.Time) bool {
	switch r.SpecificDate {
	case domain.SpecificDateStartOfWeek:
		return day.Weekday() == time.Monday
	case domain.SpecificDateStartOfMonth:
		return day.Day() == 1
	case domain.SpecificDateStartOfYear:
		return day.Month() == time.January && day.Day() == 1
	case domain.SpecificDateCustom:
		custom, err := domain.ParseCustomDate(r.CustomDate)
		if err != nil {
			return false
		}

		return domain.SameDay(custom, day)
	default:
		return false
	}
}
