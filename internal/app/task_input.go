package app

import "time"

type CreateTaskInput struct {
	Title             string
	Description       string
	ListType          string
	DueDate           *time.Time
	SpecificDayOfWeek *int
}

type GetTaskInput struct {
	ID string
}

type DeleteTaskInput struct {
	ID string
}

type GetTasksByDateInput struct {
	Date time.Time
}

type GetTasksWithRemindersInput struct {
	Date time.Time
}

type GetTaskRemindersInput struct {
	TaskID        string
	Use24HourTime bool
}

type ReminderInput struct {
	ID           string
	Timeframe    string
	Time         string
	SpecificDate string
	CustomDate   string
	DayOfWeek    *int
	DaysBefore   int
	HasAlarm     bool
	Location     string
}

type UpdateTaskRemindersInput struct {
	TaskID    string
	Reminders []ReminderInput
}
