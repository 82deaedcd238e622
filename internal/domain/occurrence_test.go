package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasks-management/reminder-engine/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func buildTask(t *testing.T, listType domain.ListType, dueDate *time.Time, dayOfWeek *domain.Weekday) *domain.Task {
	t.Helper()

	return domain.ReconstituteTask(
		domain.NewTaskID(),
		"test task",
		"",
		false,
		nil,
		dueDate,
		dayOfWeek,
		nil,
		nil,
		listType,
		time.Now(),
		time.Now(),
	)
}

func weekdayPtr(w domain.Weekday) *domain.Weekday {
	return &w
}

func TestOccursOnDueDate(t *testing.T) {
	due := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.Local)
	task := buildTask(t, domain.ListTypeCustom, &due, nil)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{
			name:     "same calendar day despite differing clock times",
			date:     time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local),
			expected: true,
		},
		{
			name:     "day before",
			date:     date(2026, time.March, 9),
			expected: false,
		},
		{
			name:     "day after",
			date:     date(2026, time.March, 11),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, task.OccursOn(tt.date))
		})
	}
}

func TestOccursOnDueDateTakesPrecedenceOverWeekday(t *testing.T) {
	// Due Tuesday 2026-03-10 but weekday rule says Sunday. The due date wins.
	due := date(2026, time.March, 10)
	task := buildTask(t, domain.ListTypeDaily, &due, weekdayPtr(domain.Sunday))

	assert.True(t, task.OccursOn(date(2026, time.March, 10)))
	assert.False(t, task.OccursOn(date(2026, time.March, 8))) // a Sunday
}

func TestOccursOnSpecificDayOfWeek(t *testing.T) {
	task := buildTask(t, domain.ListTypeCustom, nil, weekdayPtr(domain.Tuesday))

	assert.True(t, task.OccursOn(date(2026, time.March, 10)))  // Tuesday
	assert.False(t, task.OccursOn(date(2026, time.March, 11))) // Wednesday
}

func TestOccursOnListCadence(t *testing.T) {
	tests := []struct {
		name     string
		listType domain.ListType
		date     time.Time
		expected bool
	}{
		{
			name:     "daily occurs on any date",
			listType: domain.ListTypeDaily,
			date:     date(2026, time.March, 12),
			expected: true,
		},
		{
			name:     "weekly occurs on Sunday",
			listType: domain.ListTypeWeekly,
			date:     date(2026, time.March, 8),
			expected: true,
		},
		{
			name:     "weekly does not occur mid-week",
			listType: domain.ListTypeWeekly,
			date:     date(2026, time.March, 10),
			expected: false,
		},
		{
			name:     "monthly occurs on the 1st",
			listType: domain.ListTypeMonthly,
			date:     date(2026, time.April, 1),
			expected: true,
		},
		{
			name:     "monthly does not occur on the 2nd",
			listType: domain.ListTypeMonthly,
			date:     date(2026, time.April, 2),
			expected: false,
		},
		{
			name:     "yearly occurs on January 1st",
			listType: domain.ListTypeYearly,
			date:     date(2026, time.January, 1),
			expected: true,
		},
		{
			name:     "yearly does not occur on February 1st",
			listType: domain.ListTypeYearly,
			date:     date(2026, time.February, 1),
			expected: false,
		},
		{
			name:     "custom list has no implicit schedule",
			listType: domain.ListTypeCustom,
			date:     date(2026, time.March, 12),
			expected: false,
		},
		{
			name:     "finished list has no implicit schedule",
			listType: domain.ListTypeFinished,
			date:     date(2026, time.March, 12),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := buildTask(t, tt.listType, nil, nil)
			assert.Equal(t, tt.expected, task.OccursOn(tt.date))
		})
	}
}

func TestNextWeekday(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		weekday   domain.Weekday
		allowSame bool
		expected  time.Time
	}{
		{
			name:     "later in the same week",
			ref:      date(2026, time.March, 10), // Tuesday
			weekday:  domain.Friday,
			expected: date(2026, time.March, 13),
		},
		{
			name:     "wraps into the next week",
			ref:      date(2026, time.March, 10), // Tuesday
			weekday:  domain.Monday,
			expected: date(2026, time.March, 16),
		},
		{
			name:     "same weekday jumps a full week by default",
			ref:      date(2026, time.March, 10),
			weekday:  domain.Tuesday,
			expected: date(2026, time.March, 17),
		},
		{
			name:      "same weekday kept when allowed",
			ref:       date(2026, time.March, 10),
			weekday:   domain.Tuesday,
			allowSame: true,
			expected:  date(2026, time.March, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NextWeekday(tt.ref, tt.weekday, tt.allowSame)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMonthAndYearRollover(t *testing.T) {
	assert.Equal(t, date(2026, time.April, 1), domain.FirstOfNextMonth(date(2026, time.March, 31)))
	assert.Equal(t, date(2026, time.April, 1), domain.FirstOfNextMonth(date(2026, time.March, 1)))
	assert.Equal(t, date(2027, time.January, 1), domain.FirstOfNextMonth(date(2026, time.December, 31)))
	assert.Equal(t, date(2027, time.January, 1), domain.FirstOfNextYear(date(2026, time.January, 2)))
	assert.Equal(t, date(2027, time.January, 1), domain.FirstOfNextYear(date(2026, time.December, 31)))
}

func TestNextListOccurrence(t *testing.T) {
	ref := date(2026, time.March, 10) // Tuesday

	tests := []struct {
		name     string
		listType domain.ListType
		expected time.Time
		ok       bool
	}{
		{
			name:     "weekly resolves to next Sunday",
			listType: domain.ListTypeWeekly,
			expected: date(2026, time.March, 15),
			ok:       true,
		},
		{
			name:     "monthly resolves to first of next month",
			listType: domain.ListTypeMonthly,
			expected: date(2026, time.April, 1),
			ok:       true,
		},
		{
			name:     "yearly resolves to January 1st of next year",
			listType: domain.ListTypeYearly,
			expected: date(2027, time.January, 1),
			ok:       true,
		},
		{
			name:     "custom has no next occurrence",
			listType: domain.ListTypeCustom,
			ok:       false,
		},
		{
			name:     "daily has no next occurrence anchor",
			listType: domain.ListTypeDaily,
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.NextListOccurrence(tt.listType, ref)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestEffectiveDueDate(t *testing.T) {
	ref := date(2026, time.March, 10) // Tuesday

	t.Run("explicit due date wins", func(t *testing.T) {
		due := time.Date(2026, time.March, 20, 18, 0, 0, 0, time.Local)
		task := buildTask(t, domain.ListTypeWeekly, &due, nil)

		got, ok := task.EffectiveDueDate(ref)

		require.True(t, ok)
		assert.Equal(t, date(2026, time.March, 20), got)
	})

	t.Run("weekday rule resolves strictly after the reference day", func(t *testing.T) {
		task := buildTask(t, domain.ListTypeCustom, nil, weekdayPtr(domain.Tuesday))

		got, ok := task.EffectiveDueDate(ref)

		require.True(t, ok)
		assert.Equal(t, date(2026, time.March, 17), got)
	})

	t.Run("weekly list falls back to next Sunday", func(t *testing.T) {
		task := buildTask(t, domain.ListTypeWeekly, nil, nil)

		got, ok := task.EffectiveDueDate(ref)

		require.True(t, ok)
		assert.Equal(t, date(2026, time.March, 15), got)
	})

	t.Run("custom list without rules has no anchor", func(t *testing.T) {
		task := buildTask(t, domain.ListTypeCustom, nil, nil)

		_, ok := task.EffectiveDueDate(ref)

		assert.False(t, ok)
	})
}
