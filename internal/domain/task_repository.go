package domain

import (
	"context"
)

type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id TaskID) (*Task, error)
	// FindActive returns every task that is neither completed nor soft-deleted,
	// the population both occurrence filters run over.
	FindActive(ctx context.Context) ([]*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id TaskID) error
	WithTx(ctx context.Context, fn func(repo TaskRepository) error) error
}
