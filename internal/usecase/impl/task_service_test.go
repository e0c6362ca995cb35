package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTaskService(t *testing.T) (usecase.TaskUsecase, *mockRepo.MockTaskRepository) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	svc := NewTaskService(TaskServiceParams{TaskRepo: taskRepo, Logger: discardLogger()})
	svc.(*taskService).now = fixedClock

	return svc, taskRepo
}

func TestTaskService_CreateTask(t *testing.T) {
	svc, taskRepo := createTestTaskService(t)
	userID := uuid.New()

	taskRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Task")).Return(nil)

	task, err := svc.CreateTask(context.Background(), userID, &usecase.CreateTaskInput{Title: "Buy milk"})

	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, entity.TaskStatusToDo, task.Status)
	assert.Equal(t, userID, task.UserID)
	assert.Equal(t, fixedNow, task.CreatedAt)
}

func TestTaskService_CreateTask_RepositoryError(t *testing.T) {
	svc, taskRepo := createTestTaskService(t)

	taskRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.CreateTask(context.Background(), uuid.New(), &usecase.CreateTaskInput{Title: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create task")
}

func TestTaskService_ListTasks_ScopedToCaller(t *testing.T) {
	svc, taskRepo := createTestTaskService(t)
	userID := uuid.New()
	owned := []*entity.Task{{ID: uuid.New(), UserID: userID}}

	taskRepo.EXPECT().FindByUser(mock.Anything, userID).Return(owned, nil)

	tasks, err := svc.ListTasks(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, owned, tasks)
}

func TestTaskService_GetTask_OtherUsersTaskIsNotFound(t *testing.T) {
	svc, taskRepo := createTestTaskService(t)
	userID, taskID := uuid.New(), uuid.New()

	taskRepo.EXPECT().FindByIDForUser(mock.Anything, taskID, userID).Return(nil, repository.ErrTaskNotFound)

	_, err := svc.GetTask(context.Background(), userID, taskID)

	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_UpdateTaskStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		svc, taskRepo := createTestTaskService(t)
		userID, taskID := uuid.New(), uuid.New()

		taskRepo.EXPECT().
			UpdateForUser(mock.Anything, taskID, userID, mock.AnythingOfType("repository.TaskChanges")).
			Run(func(_ context.Context, _, _ uuid.UUID, changes repository.TaskChanges) {
				require.NotNil(t, changes.Status)
				assert.Equal(t, entity.TaskStatusDone, *changes.Status)
				assert.Nil(t, changes.Title)
			}).
			Return(&entity.Task{ID: taskID, UserID: userID, Status: entity.TaskStatusDone}, nil)

		task, err := svc.UpdateTaskStatus(context.Background(), userID, taskID, entity.TaskStatusDone)

		require.NoError(t, err)
		assert.Equal(t, entity.TaskStatusDone, task.Status)
	})

	t.Run("invalid status never reaches the repository", func(t *testing.T) {
		svc, _ := createTestTaskService(t)

		_, err := svc.UpdateTaskStatus(context.Background(), uuid.New(), uuid.New(), "archived")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing task", func(t *testing.T) {
		svc, taskRepo := createTestTaskService(t)

		taskRepo.EXPECT().UpdateForUser(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, repository.ErrTaskNotFound)

		_, err := svc.UpdateTaskStatus(context.Background(), uuid.New(), uuid.New(), entity.TaskStatusInProgress)

		assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	})
}

func TestTaskService_UpdateTask_InvalidStatus(t *testing.T) {
	svc, _ := createTestTaskService(t)

	_, err := svc.UpdateTask(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateTaskInput{
		Status: ptr(entity.TaskStatus("blocked")),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTaskService_DeleteTask(t *testing.T) {
	svc, taskRepo := createTestTaskService(t)
	userID, taskID := uuid.New(), uuid.New()
	removed := &entity.Task{ID: taskID, UserID: userID}

	taskRepo.EXPECT().DeleteForUser(mock.Anything, taskID, userID).Return(removed, nil)

	task, err := svc.DeleteTask(context.Background(), userID, taskID)

	require.NoError(t, err)
	assert.Equal(t, removed, task)
}
