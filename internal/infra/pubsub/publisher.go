package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"time"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

const (
	TopicNotificationSchedule = "notification.schedule"
	TopicNotificationCancel   = "notification.cancel"
)

const (
	CancelReasonDeleted = "deleted"
	CancelReasonCleared = "cleared"
)

// NotificationScheduleEvent tells the notification service to (re)schedule
// delivery for a task. Reminders carries the normalized descriptor list so
// consumers never touch the compact backend encoding.
type NotificationScheduleEvent struct {
	TaskID      string          `json:"task_id"`
	Title       string          `json:"title"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Reminders   json.RawMessage `json:"reminders,omitempty"`
	ScheduledAt time.Time       `json:"scheduled_at"`
}

// NotificationCancelEvent tells the notification service to drop every
// pending delivery for a task.
type NotificationCancelEvent struct {
	TaskID      string    `json:"task_id"`
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelled_at"`
}

type Publisher interface {
	PublishNotificationSchedule(ctx context.Context, event *NotificationScheduleEvent) error
	PublishNotificationCancel(ctx context.Context, event *NotificationCancelEvent) error
	io.Closer
}
