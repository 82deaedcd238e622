package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tasks-management/reminder-engine/internal/codec"
	"github.com/tasks-management/reminder-engine/internal/domain"
	"github.com/tasks-management/reminder-engine/internal/infra/pubsub"
	"github.com/tasks-management/reminder-engine/internal/service/occurrence"
)

type taskUseCaseImpl struct {
	repo      domain.TaskRepository
	publisher pubsub.Publisher
	filter    *occurrence.Filter
}

func NewTaskUseCase(repo domain.TaskRepository, publisher pubsub.Publisher) TaskUseCase {
	return &taskUseCaseImpl{
		repo:      repo,
		publisher: publisher,
		filter:    occurrence.NewFilter(),
	}
}

func (uc *taskUseCaseImpl) CreateTask(ctx context.Context, input CreateTaskInput) (TaskOutput, error) {
	slog.Debug("creating task",
		"title", input.Title,
		"list_type", input.ListType,
	)

	var dayOfWeek *domain.Weekday

	if input.SpecificDayOfWeek != nil {
		w, err := domain.NewWeekday(*input.SpecificDayOfWeek)
		if err != nil {
			return TaskOutput{}, NewValidationError("specific_day_of_week", err.Error())
		}

		dayOfWeek = &w
	}

	listType, err := domain.NewListType(input.ListType)
	if err != nil {
		return TaskOutput{}, NewValidationError("list_type", err.Error())
	}

	task, err := domain.NewTask(input.Title, input.Description, listType, input.DueDate, dayOfWeek)
	if err != nil {
		return TaskOutput{}, NewValidationError("title", err.Error())
	}

	if err := uc.repo.Save(ctx, task); err != nil {
		slog.Error("failed to save task",
			"error", err,
			"task_id", task.ID().String(),
		)

		return TaskOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Debug("task created",
		"task_id", task.ID().String(),
	)

	return FromEntity(task), nil
}

func (uc *taskUseCaseImpl) GetTask(ctx context.Context, input GetTaskInput) (TaskOutput, error) {
	taskID, err := domain.TaskIDFromString(input.ID)
	if err != nil {
		return TaskOutput{}, NewValidationError("id", err.Error())
	}

	task, err := uc.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return TaskOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to get task",
			"error", err,
			"task_id", input.ID,
		)

		return TaskOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromEntity(task), nil
}

func (uc *taskUseCaseImpl) DeleteTask(ctx context.Context, input DeleteTaskInput) error {
	slog.Debug("deleting task",
		"task_id", input.ID,
	)

	taskID, err := domain.TaskIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.repo.Delete(ctx, taskID); err != nil {
		if !errors.Is(err, domain.ErrTaskNotFound) {
			slog.Error("failed to delete task",
				"error", err,
				"task_id", input.ID,
			)

			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		slog.Info("task not found for deletion (idempotency)",
			"task_id", input.ID,
		)

		return nil
	}

	if uc.publisher != nil {
		event := &pubsub.NotificationCancelEvent{
			TaskID:      input.ID,
			Reason:      pubsub.CancelReasonDeleted,
			CancelledAt: time.Now(),
		}
		if pubErr := uc.publisher.PublishNotificationCancel(ctx, event); pubErr != nil {
			slog.Error("failed to publish notification cancel event",
				"task_id", input.ID,
				"error", pubErr.Error(),
			)
		}
	}

	slog.Debug("task deleted",
		"task_id", input.ID,
	)

	return nil
}

func (uc *taskUseCaseImpl) GetTasksByDate(ctx context.Context, input GetTasksByDateInput) (TasksOutput, error) {
	slog.Debug("getting tasks by date",
		"date", input.Date.Format("2006-01-02"),
	)

	tasks, err := uc.repo.FindActive(ctx)
	if err != nil {
		slog.Error("failed to load active tasks",
			"error", err,
		)

		return TasksOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	due := uc.filter.DueOn(tasks, input.Date)

	slog.Debug("tasks due on date",
		"date", input.Date.Format("2006-01-02"),
		"count", len(due),
	)

	return FromEntities(due), nil
}

func (uc *taskUseCaseImpl) GetTasksWithReminders(ctx context.Context, input GetTasksWithRemindersInput) (TasksOutput, error) {
	slog.Debug("getting tasks with firing reminders",
		"date", input.Date.Format("2006-01-02"),
	)

	tasks, err := uc.repo.FindActive(ctx)
	if err != nil {
		slog.Error("failed to load active tasks",
			"error", err,
		)

		return TasksOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	firing := uc.filter.ReminderFiringOn(tasks, input.Date)

	slog.Debug("tasks with firing reminders",
		"date", input.Date.Format("2006-01-02"),
		"count", len(firing),
	)

	return FromEntities(firing), nil
}

func (uc *taskUseCaseImpl) GetTaskReminders(ctx context.Context, input GetTaskRemindersInput) (TaskRemindersOutput, error) {
	taskID, err := domain.TaskIDFromString(input.TaskID)
	if err != nil {
		return TaskRemindersOutput{}, NewValidationError("task_id", err.Error())
	}

	task, err := uc.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return TaskRemindersOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to get task reminders",
			"error", err,
			"task_id", input.TaskID,
		)

		return TaskRemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	reminders := codec.DecodeTask(task)

	return FromReminders(input.TaskID, reminders, input.Use24HourTime), nil
}

func (uc *taskUseCaseImpl) UpdateTaskReminders(ctx context.Context, input UpdateTaskRemindersInput) (TaskRemindersOutput, error) {
	slog.Debug("updating task reminders",
		"task_id", input.TaskID,
		"reminder_count", len(input.Reminders),
	)

	taskID, err := domain.TaskIDFromString(input.TaskID)
	if err != nil {
		return TaskRemindersOutput{}, NewValidationError("task_id", err.Error())
	}

	task, err := uc.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return TaskRemindersOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to load task for reminder update",
			"error", err,
			"task_id", input.TaskID,
		)

		return TaskRemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	reminders := make([]domain.Reminder, 0, len(input.Reminders))

	for i, in := range input.Reminders {
		r, err := validateReminderInput(i, in, task.DueDate() != nil)
		if err != nil {
			return TaskRemindersOutput{}, err
		}

		reminders = append(reminders, r)
	}

	encoded := codec.Encode(reminders, task.DueDate())

	rawConfig, err := codec.MarshalConfig(encoded.Config)
	if err != nil {
		return TaskRemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	task.SetReminderEncoding(encoded.DaysBefore, encoded.SpecificDayOfWeek, rawConfig)

	if err := uc.repo.WithTx(ctx, func(txRepo domain.TaskRepository) error {
		return txRepo.Update(ctx, task)
	}); err != nil {
		slog.Error("failed to persist reminder update",
			"error", err,
			"task_id", input.TaskID,
		)

		return TaskRemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	uc.publishReminderChange(ctx, task, reminders)

	slog.Debug("task reminders updated",
		"task_id", input.TaskID,
		"reminder_count", len(reminders),
	)

	return FromReminders(input.TaskID, codec.DecodeTask(task), true), nil
}

// publishReminderChange emits the schedule or cancel event after a reminder
// update has been committed. Publish failures are logged and swallowed: the
// write already succeeded and the notification service reconciles on its own
// schedule.
func (uc *taskUseCaseImpl) publishReminderChange(ctx context.Context, task *domain.Task, reminders []domain.Reminder) {
	if uc.publisher == nil {
		return
	}

	taskID := task.ID().String()

	if len(reminders) == 0 {
		event := &pubsub.NotificationCancelEvent{
			TaskID:      taskID,
			Reason:      pubsub.CancelReasonCleared,
			CancelledAt: time.Now(),
		}
		if err := uc.publisher.PublishNotificationCancel(ctx, event); err != nil {
			slog.Error("failed to publish notification cancel event",
				"task_id", taskID,
				"error", err.Error(),
			)
		}

		return
	}

	payload, err := codec.MarshalConfig(reminders)
	if err != nil {
		slog.Error("failed to marshal reminders for event",
			"task_id", taskID,
			"error", err.Error(),
		)

		return
	}

	event := &pubsub.NotificationScheduleEvent{
		TaskID:      taskID,
		Title:       task.Title(),
		DueDate:     task.DueDate(),
		Reminders:   payload,
		ScheduledAt: time.Now(),
	}
	if err := uc.publisher.PublishNotificationSchedule(ctx, event); err != nil {
		slog.Error("failed to publish notification schedule event",
			"task_id", taskID,
			"error", err.Error(),
		)
	}
}

func validateReminderInput(i int, in ReminderInput, hasDueDate bool) (domain.Reminder, error) {
	field := func(name string) string {
		return fmt.Sprintf("reminders[%d].%s", i, name)
	}

	timeframe, err := domain.NewTimeframe(in.Timeframe)
	if err != nil {
		return domain.Reminder{}, NewValidationError(field("timeframe"), err.Error())
	}

	reminderTime := in.Time
	if reminderTime != "" {
		normalized, err := domain.NormalizeTime(reminderTime)
		if err != nil {
			return domain.Reminder{}, NewValidationError(field("time"), err.Error())
		}

		reminderTime = normalized
	}

	var specificDate domain.SpecificDate

	if in.SpecificDate != "" {
		specificDate, err = domain.NewSpecificDate(in.SpecificDate)
		if err != nil {
			return domain.Reminder{}, NewValidationError(field("specific_date"), err.Error())
		}
	}

	if specificDate == domain.SpecificDateCustom {
		if err := domain.ValidateCustomReminderDate(in.CustomDate); err != nil {
			return domain.Reminder{}, NewValidationError(field("custom_date"), err.Error())
		}
	}

	var dayOfWeek *domain.Weekday

	if in.DayOfWeek != nil {
		w, err := domain.NewWeekday(*in.DayOfWeek)
		if err != nil {
			return domain.Reminder{}, NewValidationError(field("day_of_week"), err.Error())
		}

		dayOfWeek = &w
	}

	if err := domain.ValidateDaysBefore(in.DaysBefore); err != nil {
		return domain.Reminder{}, NewValidationError(field("days_before"), err.Error())
	}

	if in.DaysBefore > 0 && !hasDueDate {
		return domain.Reminder{}, NewValidationError(field("days_before"), domain.ErrDaysBeforeRequiresDueDate.Error())
	}

	return domain.Reminder{
		ID:           in.ID,
		Timeframe:    timeframe,
		Time:         reminderTime,
		SpecificDate: specificDate,
		CustomDate:   in.CustomDate,
		DayOfWeek:    dayOfWeek,
		DaysBefore:   in.DaysBefore,
		HasAlarm:     in.HasAlarm,
		Location:     in.Location,
	}, nil
}
