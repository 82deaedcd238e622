package app

import (
	"context"
)

type TaskUseCase interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (TaskOutput, error)
	GetTask(ctx context.Context, input GetTaskInput) (TaskOutput, error)
	DeleteTask(ctx context.Context, input DeleteTaskInput) error
	GetTasksByDate(ctx context.Context, input GetTasksByDateInput) (TasksOutput, error)
	GetTasksWithReminders(ctx context.Context, input GetTasksWithRemindersInput) (TasksOutput, error)
	GetTaskReminders(ctx context.Context, input GetTaskRemindersInput) (TaskRemindersOutput, error)
	UpdateTaskReminders(ctx context.Context, input UpdateTaskRemindersInput) (TaskRemindersOutput, error)
}
