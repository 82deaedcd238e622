package handler

import "time"

type CreateTaskRequest struct {
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	ListType          string     `json:"list_type" binding:"required"`
	DueDate           *time.Time `json:"due_date"`
	SpecificDayOfWeek *int       `json:"specific_day_of_week"`
}

type DateQueryRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

type GetTaskRemindersRequest struct {
	Use24HourTime *bool `form:"use24h"`
}

// Use24Hour resolves the display preference. 24-hour time is the default;
// only an explicit use24h=false switches to 12-hour rendering.
func (r GetTaskRemindersRequest) Use24Hour() bool {
	return r.Use24HourTime == nil || *r.Use24HourTime
}

type ReminderRequest struct {
	ID           string `json:"id"`
	Timeframe    string `json:"timeframe" binding:"required"`
	Time         string `json:"time"`
	SpecificDate string `json:"specific_date"`
	CustomDate   string `json:"custom_date"`
	DayOfWeek    *int   `json:"day_of_week"`
	DaysBefore   int    `json:"days_before"`
	HasAlarm     bool   `json:"has_alarm"`
	Location     string `json:"location"`
}

type UpdateTaskRemindersRequest struct {
	Reminders []ReminderRequest `json:"reminders"`
}
