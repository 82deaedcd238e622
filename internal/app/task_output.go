package app

import (
	"time"

	"github.com/tasks-management/reminder-engine/internal/domain"
	"github.com/tasks-management/reminder-engine/internal/format"
)

type TaskOutput struct {
	ID                 string
	Title              string
	Description        string
	Completed          bool
	CompletedAt        *time.Time
	DueDate            *time.Time
	SpecificDayOfWeek  *int
	ReminderDaysBefore []int
	ListType           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type TasksOutput struct {
	Tasks []TaskOutput
	Count int32
}

type ReminderOutput struct {
	ID           string
	Timeframe    string
	Time         string
	SpecificDate string
	CustomDate   string
	DayOfWeek    *int
	DaysBefore   int
	HasAlarm     bool
	Location     string
	Display      string
}

type TaskRemindersOutput struct {
	TaskID    string
	Reminders []ReminderOutput
	Count     int32
}

func FromEntity(task *domain.Task) TaskOutput {
	var dayOfWeek *int

	if w := task.SpecificDayOfWeek(); w != nil {
		n := w.Int()
		dayOfWeek = &n
	}

	return TaskOutput{
		ID:                 task.ID().String(),
		Title:              task.Title(),
		Description:        task.Description(),
		Completed:          task.IsCompleted(),
		CompletedAt:        task.CompletedAt(),
		DueDate:            task.DueDate(),
		SpecificDayOfWeek:  dayOfWeek,
		ReminderDaysBefore: task.ReminderDaysBefore(),
		ListType:           string(task.ListType()),
		CreatedAt:          task.CreatedAt(),
		UpdatedAt:          task.UpdatedAt(),
	}
}

func FromEntities(tasks []*domain.Task) TasksOutput {
	outputs := make([]TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		outputs = append(outputs, FromEntity(task))
	}

	return TasksOutput{
		Tasks: outputs,
		Count: int32(len(outputs)), //nolint:gosec
	}
}

func FromReminder(r domain.Reminder, use24h bool) ReminderOutput {
	var dayOfWeek *int

	if r.DayOfWeek != nil {
		n := r.DayOfWeek.Int()
		dayOfWeek = &n
	}

	return ReminderOutput{
		ID:           r.ID,
		Timeframe:    string(r.Timeframe),
		Time:         r.TimeOrDefault(),
		SpecificDate: string(r.SpecificDate),
		CustomDate:   r.CustomDate,
		DayOfWeek:    dayOfWeek,
		DaysBefore:   r.DaysBefore,
		HasAlarm:     r.HasAlarm,
		Location:     r.Location,
		Display:      format.FormatReminder(r, nil, use24h),
	}
}

func FromReminders(taskID string, reminders []domain.Reminder, use24h bool) TaskRemindersOutput {
	outputs := make([]ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		outputs = append(outputs, FromReminder(r, use24h))
	}

	return TaskRemindersOutput{
		TaskID:    taskID,
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}
