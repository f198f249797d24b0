package handler

import (
	"github.com/dtroode/tasktracker-server/internal/model"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=4,max=20"`
	Password string `json:"password" validate:"required,min=8,max=20,password"`
}

type signInResponse struct {
	AccessToken string `json:"accessToken"`
}

type getTasksRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS DONE"`
	Search string `query:"search"`
}

type createTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status"`
}

// taskResponse is the client view of a task. The owner is not exposed.
type taskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func newTaskResponse(task model.Task) taskResponse {
	return taskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
	}
}

func newTaskListResponse(tasks []model.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, newTaskResponse(task))
	}
	return out
}
