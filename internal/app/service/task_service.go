package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type TaskService struct {
	taskRepository    ports.TaskRepository
	projectRepository ports.ProjectRepository
}

func NewTaskService(taskRepository ports.TaskRepository, projectRepository ports.ProjectRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, projectRepository: projectRepository}
}

func (s *TaskService) ListProjectTasks(ctx context.Context, projectID uint64, status *domain.TaskStatus) ([]domain.Task, error) {
	exists, err := s.projectRepository.ProjectExists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProjectNotFound
	}

	return s.taskRepository.ListTasksByProject(ctx, projectID, status)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, id)
}

// CreateTask verifies the parent project before inserting. Referential
// integrity is only checked here, at creation time.
func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	exists, err := s.projectRepository.ProjectExists(ctx, input.ProjectID)
	if err != nil {
		return domain.Task{}, err
	}
	if !exists {
		return domain.Task{}, domain.ErrProjectNotFound
	}

	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.UpdateTask(ctx, id, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.taskRepository.DeleteTask(ctx, id)
}

func (s *TaskService) AddComment(ctx context.Context, taskID uint64, userID, text string) (domain.Comment, error) {
	return s.taskRepository.AddComment(ctx, taskID, userID, text)
}

var _ ports.TaskService = (*TaskService)(nil)
