package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type TaskRepository interface {
	ListTasksByProject(ctx context.Context, projectID uint64, status *domain.TaskStatus) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	AddComment(ctx context.Context, taskID uint64, userID, text string) (domain.Comment, error)
}

type TaskService interface {
	ListProjectTasks(ctx context.Context, projectID uint64, status *domain.TaskStatus) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	AddComment(ctx context.Context, taskID uint64, userID, text string) (domain.Comment, error)
}
