package handler

import (
	"time"

	"github.com/tasks-management/reminder-engine/internal/app"
)

type TaskResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Completed          bool       `json:"completed"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	SpecificDayOfWeek  *int       `json:"specific_day_of_week,omitempty"`
	ReminderDaysBefore []int      `json:"reminder_days_before"`
	ListType           string     `json:"list_type"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type TasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int32          `json:"count"`
}

type ReminderResponse struct {
	ID           string `json:"id"`
	Timeframe    string `json:"timeframe"`
	Time         string `json:"time"`
	SpecificDate string `json:"specific_date,omitempty"`
	CustomDate   string `json:"custom_date,omitempty"`
	DayOfWeek    *int   `json:"day_of_week,omitempty"`
	DaysBefore   int    `json:"days_before,omitempty"`
	HasAlarm     bool   `json:"has_alarm"`
	Location     string `json:"location,omitempty"`
	Display      string `json:"display"`
}

type TaskRemindersResponse struct {
	TaskID    string             `json:"task_id"`
	Reminders []ReminderResponse `json:"reminders"`
	Count     int32              `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func FromDTO(output app.TaskOutput) TaskResponse {
	return TaskResponse{
		ID:                 output.ID,
		Title:              output.Title,
		Description:        output.Description,
		Completed:          output.Completed,
		CompletedAt:        output.CompletedAt,
		DueDate:            output.DueDate,
		SpecificDayOfWeek:  output.SpecificDayOfWeek,
		ReminderDaysBefore: output.ReminderDaysBefore,
		ListType:           output.ListType,
		CreatedAt:          output.CreatedAt,
		UpdatedAt:          output.UpdatedAt,
	}
}

func FromDTOs(output app.TasksOutput) TasksResponse {
	tasks := make([]TaskResponse, 0, len(output.Tasks))
	for _, t := range output.Tasks {
		tasks = append(tasks, FromDTO(t))
	}

	return TasksResponse{
		Tasks: tasks,
		Count: output.Count,
	}
}

func FromReminderDTO(output app.ReminderOutput) ReminderResponse {
	return ReminderResponse{
		ID:           output.ID,
		Timeframe:    output.Timeframe,
		Time:         output.Time,
		SpecificDate: output.SpecificDate,
		CustomDate:   output.CustomDate,
		DayOfWeek:    output.DayOfWeek,
		DaysBefore:   output.DaysBefore,
		HasAlarm:     output.HasAlarm,
		Location:     output.Location,
		Display:      output.Display,
	}
}

func FromReminderDTOs(output app.TaskRemindersOutput) TaskRemindersResponse {
	reminders := make([]ReminderResponse, 0, len(output.Reminders))
	for _, r := range output.Reminders {
		reminders = append(reminders, FromReminderDTO(r))
	}

	return TaskRemindersResponse{
		TaskID:    output.TaskID,
		Reminders: reminders,
		Count:     output.Count,
	}
}
