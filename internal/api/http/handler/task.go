package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// TaskService is the owner-scoped task surface used by the task handler.
type TaskService interface {
	GetTasks(ctx context.Context, filter model.TaskFilter, owner model.User) ([]model.Task, error)
	GetTaskByID(ctx context.Context, id uuid.UUID, owner model.User) (model.Task, error)
	CreateTask(ctx context.Context, params model.CreateTaskParams, owner model.User) (model.Task, error)
	UpdateTaskStatusByID(ctx context.Context, id uuid.UUID, status model.TaskStatus, owner model.User) (model.Task, error)
	DeleteTaskByID(ctx context.Context, id uuid.UUID, owner model.User) error
}

// Task serves the /tasks routes. Every route requires an authenticated user.
type Task struct {
	service        TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewTask(service TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

// GetTasks lists the user's tasks. GET /tasks?status=&search=.
func (h *Task) GetTasks(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	var req getTasksRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tasks, err := h.service.GetTasks(c.Request().Context(), model.TaskFilter{
		Status: model.TaskStatus(req.Status),
		Search: req.Search,
	}, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

// GetTaskByID GET /tasks/:id.
func (h *Task) GetTaskByID(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.service.GetTaskByID(c.Request().Context(), id, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTaskResponse(task))
}

// CreateTask POST /tasks.
func (h *Task) CreateTask(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.service.CreateTask(c.Request().Context(), model.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
	}, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newTaskResponse(task))
}

// DeleteTaskByID DELETE /tasks/:id.
func (h *Task) DeleteTaskByID(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTaskByID(c.Request().Context(), id, owner); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// UpdateTaskStatusByID PATCH /tasks/:id/status. The status is matched
// case-insensitively.
func (h *Task) UpdateTaskStatusByID(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req updateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return model.NewErrInvalidInput("invalid request")
	}

	status, err := model.ParseTaskStatus(req.Status)
	if err != nil {
		return err
	}

	task, err := h.service.UpdateTaskStatusByID(c.Request().Context(), id, status, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *Task) owner(c echo.Context) (model.User, error) {
	user, ok := h.contextManager.GetUserFromContext(c.Request().Context())
	if !ok {
		h.logger.Error("Task handler: no user in request context",
			"path", c.Path())
		return model.User{}, model.NewErrUnauthorized()
	}
	return user, nil
}

func taskID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewErrInvalidTaskID(raw)
	}
	return id, nil
}
