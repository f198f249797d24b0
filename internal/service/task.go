package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// Task serves task operations. Every call is scoped to owner and a task
// owned by someone else is indistinguishable from a missing one.
type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

func (s *Task) GetTasks(ctx context.Context, filter model.TaskFilter, owner model.User) ([]model.Task, error) {
	tasks, err := s.taskStore.List(ctx, owner.ID, filter)
	if err != nil {
		s.logger.Error("Task service: failed to list tasks",
			"user_id", owner.ID,
			"status", filter.Status,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

func (s *Task) GetTaskByID(ctx context.Context, id uuid.UUID, owner model.User) (model.Task, error) {
	task, err := s.taskStore.GetByIDAndOwner(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Task{}, model.NewErrTaskNotFound(id)
		}
		s.logger.Error("Task service: failed to get task",
			"task_id", id,
			"user_id", owner.ID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (s *Task) CreateTask(ctx context.Context, params model.CreateTaskParams, owner model.User) (model.Task, error) {
	task, err := s.taskStore.Create(ctx, model.Task{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Status:      model.TaskStatusOpen,
		OwnerID:     owner.ID,
	})
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"user_id", owner.ID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"task_id", task.ID,
		"user_id", owner.ID)

	return task, nil
}

func (s *Task) UpdateTaskStatusByID(ctx context.Context, id uuid.UUID, status model.TaskStatus, owner model.User) (model.Task, error) {
	task, err := s.GetTaskByID(ctx, id, owner)
	if err != nil {
		return model.Task{}, err
	}

	updated, err := s.taskStore.UpdateStatus(ctx, task.ID, owner.ID, status)
	if err != nil {
		// the row may be deleted between the read and the update
		if errors.Is(err, model.ErrNotFound) {
			return model.Task{}, model.NewErrTaskNotFound(id)
		}
		s.logger.Error("Task service: failed to update task status",
			"task_id", id,
			"user_id", owner.ID,
			"status", status,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Info("Task service: task status updated",
		"task_id", id,
		"user_id", owner.ID,
		"status", status)

	return updated, nil
}

func (s *Task) DeleteTaskByID(ctx context.Context, id uuid.UUID, owner model.User) error {
	err := s.taskStore.DeleteByIDAndOwner(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewErrTaskNotFound(id)
		}
		s.logger.Error("Task service: failed to delete task",
			"task_id", id,
			"user_id", owner.ID,
			"error", err.Error())
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task service: task deleted",
		"task_id", id,
		"user_id", owner.ID)

	return nil
}
