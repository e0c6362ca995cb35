package handler

import (
	"log/slog"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler serves the caller's own tasks
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CreateTaskRequest is the body of POST /api/tasks
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"desc"`
}

func (CreateTaskRequest) ValidationMessages() map[string]string {
	return map[string]string{"title.required": "title is required"}
}

// UpdateTaskStatusRequest is the body of PUT /api/tasks/status/:id
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=to-do in-progress done"`
}

func (UpdateTaskStatusRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"status.required": "Status is required",
		"status.oneof":    "Status is invalid",
	}
}

// UpdateTaskRequest is the body of PUT /api/tasks/:id
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"desc"`
	Status      *string `json:"status" validate:"omitempty,oneof=to-do in-progress done"`
}

func (UpdateTaskRequest) ValidationMessages() map[string]string {
	return map[string]string{"status.oneof": "Status is invalid"}
}

// CreateTask adds a to-do task for the caller
func (h *TaskHandler) CreateTask(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.CreateTask(c.Request().Context(), caller.UserID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, task)
}

// ListTasks returns the caller's tasks
func (h *TaskHandler) ListTasks(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tasks, err := h.taskUC.ListTasks(c.Request().Context(), caller.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, tasks)
}

// GetTask returns one of the caller's tasks
func (h *TaskHandler) GetTask(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrTaskNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.GetTask(c.Request().Context(), caller.UserID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, task)
}

// UpdateTaskStatus moves one of the caller's tasks to a new status
func (h *TaskHandler) UpdateTaskStatus(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrTaskNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTaskStatusRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.UpdateTaskStatus(c.Request().Context(), caller.UserID, id, entity.TaskStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, task)
}

// UpdateTask edits one of the caller's tasks
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrTaskNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateTaskInput{Title: req.Title, Description: req.Description}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		input.Status = &status
	}

	task, err := h.taskUC.UpdateTask(c.Request().Context(), caller.UserID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, task)
}

// DeleteTask removes one of the caller's tasks and returns it
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrTaskNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.DeleteTask(c.Request().Context(), caller.UserID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, task)
}
