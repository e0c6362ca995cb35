package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput lists the task fields to change; nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
}

// TaskUsecase manages tasks. Every operation is scoped to userID, the task owner.
type TaskUsecase interface {
	CreateTask(ctx context.Context, userID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)
	GetTask(ctx context.Context, userID, id uuid.UUID) (*entity.Task, error)
	UpdateTaskStatus(ctx context.Context, userID, id uuid.UUID, status entity.TaskStatus) (*entity.Task, error)
	UpdateTask(ctx context.Context, userID, id uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, userID, id uuid.UUID) (*entity.Task, error)
}
