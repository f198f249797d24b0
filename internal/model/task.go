package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines owner-scoped persistence operations for tasks.
// Lookups and mutations of a task not owned by ownerID return ErrNotFound.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	List(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]Task, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (Task, error)
	UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, status TaskStatus) (Task, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}

// Task represents a stored task entity.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	OwnerID     uuid.UUID
	CreatedAt   time.Time
}

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// TaskStatusOpen is the initial status of every task.
	TaskStatusOpen TaskStatus = "OPEN"
	// TaskStatusInProgress marks a task being worked on.
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	// TaskStatusDone marks a finished task.
	TaskStatusDone TaskStatus = "DONE"
)

// TaskStatuses lists every valid status.
var TaskStatuses = []TaskStatus{TaskStatusOpen, TaskStatusInProgress, TaskStatusDone}

// Valid reports whether s is one of TaskStatuses.
func (s TaskStatus) Valid() bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ParseTaskStatus validates a client-supplied status case-insensitively and
// returns its canonical form.
func ParseTaskStatus(value string) (TaskStatus, error) {
	if value == "" {
		return "", NewErrEmptyTaskStatus()
	}

	status := TaskStatus(strings.ToUpper(value))
	if !status.Valid() {
		return "", NewErrInvalidTaskStatus(value)
	}

	return status, nil
}

// TaskFilter narrows task listings. Zero fields do not filter.
type TaskFilter struct {
	Status TaskStatus
	// Search matches title or description as a case-insensitive substring.
	Search string
}

// CreateTaskParams contains parameters to create a task.
type CreateTaskParams struct {
	Title       string
	Description string
}
