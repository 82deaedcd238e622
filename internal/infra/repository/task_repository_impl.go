package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/tasks-management/reminder-engine/internal/domain"
)

// updateColumns is passed to Updates explicitly: gorm skips zero-valued
// struct fields, which would leave cleared reminder columns untouched.
var updateColumns = []string{
	"title",
	"description",
	"completed",
	"completed_at",
	"due_date",
	"specific_day_of_week",
	"reminder_days_before",
	"reminder_config",
	"list_type",
	"updated_at",
}

type taskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &taskRepositoryImpl{
		db: db,
	}
}

func (r *taskRepositoryImpl) Save(ctx context.Context, task *domain.Task) error {
	slog.Debug("saving task to database",
		"task_id", task.ID().String(),
	)

	m := FromEntity(task)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save task to database",
			"task_id", task.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("task saved to database",
		"task_id", task.ID().String(),
	)

	return nil
}

func (r *taskRepositoryImpl) FindByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	slog.Debug("finding task by ID",
		"task_id", id.String(),
	)

	var m TaskModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("task not found",
				"task_id", id.String(),
			)

			return nil, domain.ErrTaskNotFound
		}

		slog.Error("failed to find task by ID",
			"task_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *taskRepositoryImpl) FindActive(ctx context.Context) ([]*domain.Task, error) {
	slog.Debug("finding active tasks")

	var models []TaskModel

	result := r.db.WithContext(ctx).
		Where("completed = ?", false).
		Order("created_at ASC").
		Find(&models)

	if result.Error != nil {
		slog.Error("failed to find active tasks",
			"error", result.Error,
		)

		return nil, result.Error
	}

	tasks := make([]*domain.Task, 0, len(models))
	for _, m := range models {
		task, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"task_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		tasks = append(tasks, task)
	}

	slog.Debug("active tasks found",
		"count", len(tasks),
	)

	return tasks, nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	slog.Debug("updating task in database",
		"task_id", task.ID().String(),
	)

	m := FromEntity(task)

	result := r.db.WithContext(ctx).
		Model(&TaskModel{}).
		Where("id = ?", m.ID).
		Select(updateColumns).
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update task in database",
			"task_id", task.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("task not found for update",
			"task_id", task.ID().String(),
		)

		return domain.ErrTaskNotFound
	}

	slog.Debug("task updated in database",
		"task_id", task.ID().String(),
	)

	return nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id domain.TaskID) error {
	slog.Debug("deleting task from database",
		"task_id", id.String(),
	)

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&TaskModel{})
	if result.Error != nil {
		slog.Error("failed to delete task from database",
			"task_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("task not found for deletion",
			"task_id", id.String(),
		)

		return domain.ErrTaskNotFound
	}

	slog.Debug("task deleted from database",
		"task_id", id.String(),
	)

	return nil
}

func (r *taskRepositoryImpl) WithTx(ctx context.Context, fn func(repo domain.TaskRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		slog.Error("failed to begin transaction",
			"error", tx.Error,
		)

		return tx.Error
	}

	txRepo := &taskRepositoryImpl{db: tx}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			slog.Error("failed to rollback transaction",
				"error", rbErr,
				"original_error", err,
			)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		slog.Error("failed to commit transaction",
			"error", err,
		)

		return err
	}

	return nil
}
