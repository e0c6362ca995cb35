package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTaskNotFound is returned when no task matches both the id and the owner.
var ErrTaskNotFound = errors.New("task not found")

// TaskChanges lists the task fields to overwrite; nil fields are left untouched.
type TaskChanges struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
}

// TaskRepository persists tasks. Every lookup by id is scoped to the owning user.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Task, error)
	UpdateForUser(ctx context.Context, id, userID uuid.UUID, changes TaskChanges) (*entity.Task, error)
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Task, error)
}
