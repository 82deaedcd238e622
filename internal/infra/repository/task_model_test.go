package repository_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasks-management/reminder-engine/internal/domain"
	"github.com/tasks-management/reminder-engine/internal/infra/repository"
)

func TestDaysBeforeJSONBScan(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected repository.DaysBeforeJSONB
		wantErr  bool
	}{
		{
			name:     "array value",
			value:    []byte(`[7,3,1]`),
			expected: repository.DaysBeforeJSONB{7, 3, 1},
		},
		{
			name:     "legacy bare int",
			value:    []byte(`3`),
			expected: repository.DaysBeforeJSONB{3},
		},
		{
			name:     "json null",
			value:    []byte(`null`),
			expected: nil,
		},
		{
			name:     "sql null",
			value:    nil,
			expected: nil,
		},
		{
			name:    "not bytes",
			value:   "[1]",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d repository.DaysBeforeJSONB

			err := d.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestDaysBeforeJSONBValue(t *testing.T) {
	t.Run("nil stores null", func(t *testing.T) {
		var d repository.DaysBeforeJSONB

		v, err := d.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("empty stores empty array", func(t *testing.T) {
		d := repository.DaysBeforeJSONB{}

		v, err := d.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(v.([]byte)))
	})

	t.Run("values store as array", func(t *testing.T) {
		d := repository.DaysBeforeJSONB{7, 1}

		v, err := d.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `[7,1]`, string(v.([]byte)))
	})
}

func TestReminderConfigJSONBRoundTrip(t *testing.T) {
	t.Run("payload stored verbatim", func(t *testing.T) {
		raw := []byte(`[{"id":"r1","timeframe":"EVERY_DAY"}]`)

		var c repository.ReminderConfigJSONB

		require.NoError(t, c.Scan(raw))

		v, err := c.Value()
		require.NoError(t, err)
		assert.Equal(t, raw, v.([]byte))
	})

	t.Run("null stays nil", func(t *testing.T) {
		var c repository.ReminderConfigJSONB

		require.NoError(t, c.Scan(nil))

		v, err := c.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestTaskModelEntityRoundTrip(t *testing.T) {
	due := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	tuesday := domain.Tuesday

	task := domain.ReconstituteTask(
		domain.NewTaskID(),
		"quarterly report",
		"numbers for Q1",
		false,
		nil,
		&due,
		&tuesday,
		[]int{7, 1},
		json.RawMessage(`[{"id":"r1","timeframe":"EVERY_DAY","time":"08:30"}]`),
		domain.ListTypeCustom,
		time.Now().UTC().Truncate(time.Second),
		time.Now().UTC().Truncate(time.Second),
	)

	m := repository.FromEntity(task)

	assert.Equal(t, task.ID().String(), m.ID)
	assert.Equal(t, "quarterly report", m.Title)
	require.NotNil(t, m.SpecificDayOfWeek)
	assert.Equal(t, 2, *m.SpecificDayOfWeek)
	assert.Equal(t, repository.DaysBeforeJSONB{7, 1}, m.ReminderDaysBefore)

	restored, err := m.ToEntity()
	require.NoError(t, err)

	assert.True(t, task.ID().Equals(restored.ID()))
	assert.Equal(t, task.Title(), restored.Title())
	assert.Equal(t, task.Description(), restored.Description())
	assert.Equal(t, task.ReminderDaysBefore(), restored.ReminderDaysBefore())
	assert.Equal(t, task.ListType(), restored.ListType())
	require.NotNil(t, restored.SpecificDayOfWeek())
	assert.Equal(t, domain.Tuesday, *restored.SpecificDayOfWeek())
	assert.JSONEq(t,
		`[{"id":"r1","timeframe":"EVERY_DAY","time":"08:30"}]`,
		string(restored.ReminderConfig()),
	)
}

func TestTaskModelToEntityInvalid(t *testing.T) {
	badWeekday := 9

	tests := []struct {
		name  string
		model repository.TaskModel
	}{
		{
			name: "invalid task id",
			model: repository.TaskModel{
				ID:       "not-a-uuid",
				Title:    "x",
				ListType: "CUSTOM",
			},
		},
		{
			name: "invalid list type",
			model: repository.TaskModel{
				ID:       uuid.Must(uuid.NewV7()).String(),
				Title:    "x",
				ListType: "SOMETIMES",
			},
		},
		{
			name: "invalid weekday",
			model: repository.TaskModel{
				ID:                uuid.Must(uuid.NewV7()).String(),
				Title:             "x",
				ListType:          "CUSTOM",
				SpecificDayOfWeek: &badWeekday,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.model.ToEntity()
			assert.Error(t, err)
		})
	}
}
