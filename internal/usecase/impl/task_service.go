package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
	now      func() time.Time
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService creates a new task service
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo: params.TaskRepo,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (s *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateTask creates a to-do task owned by userID
func (s *taskService) CreateTask(ctx context.Context, userID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	now := s.now()
	task := &entity.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.TaskStatusToDo,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}

	s.log(ctx).Debug("Task created", slog.Any("taskID", task.ID), slog.Any("userID", userID))

	return task, nil
}

// ListTasks returns the tasks owned by userID
func (s *taskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := s.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// GetTask returns a task owned by userID
func (s *taskService) GetTask(ctx context.Context, userID, id uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, mapTaskError(err, "failed to find task")
	}

	return task, nil
}

// UpdateTaskStatus moves a task owned by userID to status
func (s *taskService) UpdateTaskStatus(ctx context.Context, userID, id uuid.UUID, status entity.TaskStatus) (*entity.Task, error) {
	if !status.IsValid() {
		return nil, invalidField("status", "Status is invalid")
	}

	return s.update(ctx, userID, id, repository.TaskChanges{Status: &status})
}

// UpdateTask applies a partial edit to a task owned by userID
func (s *taskService) UpdateTask(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, invalidField("status", "Status is invalid")
	}

	return s.update(ctx, userID, id, repository.TaskChanges{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	})
}

func (s *taskService) update(ctx context.Context, userID, id uuid.UUID, changes repository.TaskChanges) (*entity.Task, error) {
	task, err := s.taskRepo.UpdateForUser(ctx, id, userID, changes)
	if err != nil {
		return nil, mapTaskError(err, "failed to update task")
	}

	s.log(ctx).Debug("Task updated", slog.Any("taskID", id), slog.String("status", string(task.Status)))

	return task, nil
}

// DeleteTask removes a task owned by userID and returns it
func (s *taskService) DeleteTask(ctx context.Context, userID, id uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.DeleteForUser(ctx, id, userID)
	if err != nil {
		return nil, mapTaskError(err, "failed to delete task")
	}

	return task, nil
}

func mapTaskError(err error, msg string) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return domainerrors.ErrTaskNotFound
	}

	return errors.Wrap(err, msg)
}
