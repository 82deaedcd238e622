package occurrence_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tasks-management/reminder-engine/internal/domain"
	"github.com/tasks-management/reminder-engine/internal/service/occurrence"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

type taskSpec struct {
	title      string
	listType   domain.ListType
	completed  bool
	dueDate    *time.Time
	dayOfWeek  *domain.Weekday
	daysBefore []int
	config     json.RawMessage
}

func buildTask(t *testing.T, spec taskSpec) *domain.Task {
	t.Helper()

	return domain.ReconstituteTask(
		domain.NewTaskID(),
		spec.title,
		"",
		spec.completed,
		nil,
		spec.dueDate,
		spec.dayOfWeek,
		spec.daysBefore,
		spec.config,
		spec.listType,
		time.Now(),
		time.Now(),
	)
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title())
	}

	return out
}

func TestDueOn(t *testing.T) {
	due := date(2026, time.March, 10) // Tuesday
	sunday := domain.Sunday

	tasks := []*domain.Task{
		buildTask(t, taskSpec{title: "due today", listType: domain.ListTypeCustom, dueDate: &due}),
		buildTask(t, taskSpec{title: "completed", listType: domain.ListTypeCustom, dueDate: &due, completed: true}),
		buildTask(t, taskSpec{title: "daily", listType: domain.ListTypeDaily}),
		buildTask(t, taskSpec{title: "weekly sunday list", listType: domain.ListTypeWeekly}),
		buildTask(t, taskSpec{title: "sunday task", listType: domain.ListTypeCustom, dayOfWeek: &sunday}),
	}

	filter := occurrence.NewFilter()

	t.Run("tuesday", func(t *testing.T) {
		got := filter.DueOn(tasks, date(2026, time.March, 10))
		assert.Equal(t, []string{"due today", "daily"}, titles(got))
	})

	t.Run("sunday", func(t *testing.T) {
		got := filter.DueOn(tasks, date(2026, time.March, 8))
		assert.Equal(t, []string{"daily", "weekly sunday list", "sunday task"}, titles(got))
	})
}

func TestReminderFiringOnDaysBefore(t *testing.T) {
	due := date(2026, time.January, 30)
	task := buildTask(t, taskSpec{
		title:      "report",
		listType:   domain.ListTypeCustom,
		dueDate:    &due,
		daysBefore: []int{7, 1},
	})

	filter := occurrence.NewFilter()

	tests := []struct {
		name  string
		date  time.Time
		fires bool
	}{
		{name: "seven days before", date: date(2026, time.January, 23), fires: true},
		{name: "one day before", date: date(2026, time.January, 29), fires: true},
		{name: "due date itself", date: date(2026, time.January, 30), fires: false},
		{name: "unrelated day", date: date(2026, time.January, 25), fires: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.ReminderFiringOn([]*domain.Task{task}, tt.date)

			if tt.fires {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestReminderFiringOnListCadenceFallback(t *testing.T) {
	filter := occurrence.NewFilter()

	t.Run("weekly list counts back from next Sunday", func(t *testing.T) {
		task := buildTask(t, taskSpec{
			title:      "weekly chores",
			listType:   domain.ListTypeWeekly,
			daysBefore: []int{2},
		})

		// Reference Friday 2026-03-13: next Sunday is the 15th, minus 2 = the 13th.
		got := filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 13))
		assert.Len(t, got, 1)

		got = filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 12))
		assert.Empty(t, got)
	})

	t.Run("monthly list counts back from first of next month", func(t *testing.T) {
		task := buildTask(t, taskSpec{
			title:      "rent",
			listType:   domain.ListTypeMonthly,
			daysBefore: []int{1},
		})

		// 2026-03-31: first of next month is April 1st, minus 1 = the 31st.
		got := filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 31))
		assert.Len(t, got, 1)

		got = filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 30))
		assert.Empty(t, got)
	})

	t.Run("yearly list counts back from January 1st", func(t *testing.T) {
		task := buildTask(t, taskSpec{
			title:      "insurance renewal",
			listType:   domain.ListTypeYearly,
			daysBefore: []int{1},
		})

		got := filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.December, 31))
		assert.Len(t, got, 1)
	})

	t.Run("custom list without due date never fires days-before", func(t *testing.T) {
		task := buildTask(t, taskSpec{
			title:      "someday",
			listType:   domain.ListTypeCustom,
			daysBefore: []int{1},
		})

		got := filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 13))
		assert.Empty(t, got)
	})
}

func TestReminderFiringOnWeekdayAnchor(t *testing.T) {
	tuesday := domain.Tuesday
	task := buildTask(t, taskSpec{
		title:      "standup prep",
		listType:   domain.ListTypeCustom,
		dayOfWeek:  &tuesday,
		daysBefore: []int{1},
	})

	filter := occurrence.NewFilter()

	// Monday 2026-03-09: next Tuesday is the 10th, minus 1 = the 9th.
	got := filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 9))
	assert.Len(t, got, 1)

	// Tuesday itself fires through the decoded weekly rule, not the offset.
	got = filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 10))
	assert.Len(t, got, 1)

	// Wednesday matches neither the weekly rule nor the offset.
	got = filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 11))
	assert.Empty(t, got)

	// A Tuesday reference anchors to the following week: the 17th minus 1.
	got = filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 16))
	assert.Len(t, got, 1)
}

func TestReminderFiringOnTimeframeRules(t *testing.T) {
	filter := occurrence.NewFilter()

	t.Run("every day fires daily", func(t *testing.T) {
		task := buildTask(t, taskSpec{
			title:    "water plants",
			listType: domain.ListTypeCustom,
			config:   json.RawMessage(`[{"id":"r1","timeframe":"EVERY_DAY","time":"09:00"}]`),
		})

		got := filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 11))
		assert.Len(t, got, 1)
	})

	t.Run("every week fires on the configured weekday", func(t *testing.T) {
		task := buildTask(t, taskSpec{
			title:    "weekly review",
			listType: domain.ListTypeCustom,
			config:   json.RawMessage(`[{"id":"r1","timeframe":"EVERY_WEEK","dayOfWeek":2}]`),
		})

		got := filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 10)) // Tuesday
		assert.Len(t, got, 1)

		got = filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 11))
		assert.Empty(t, got)
	})

	t.Run("custom date fires on that day only", func(t *testing.T) {
		task := buildTask(t, taskSpec{
			title:    "anniversary",
			listType: domain.ListTypeCustom,
			config: json.RawMessage(
				`[{"id":"r1","timeframe":"SPECIFIC_DATE","specificDate":"CUSTOM_DATE","customDate":"2026-03-14T00:00:00Z"}]`),
		})

		got := filter.ReminderFiringOn([]*domain.Task{task}, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC))
		assert.Len(t, got, 1)

		got = filter.ReminderFiringOn([]*domain.Task{task}, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
		assert.Empty(t, got)
	})

	t.Run("completed tasks never fire", func(t *testing.T) {
		task := buildTask(t, taskSpec{
			title:     "done",
			listType:  domain.ListTypeCustom,
			completed: true,
			config:    json.RawMessage(`[{"id":"r1","timeframe":"EVERY_DAY"}]`),
		})

		got := filter.ReminderFiringOn([]*domain.Task{task}, date(2026, time.March, 11))
		assert.Empty(t, got)
	})
}
