package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepository.ListProjects(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	return s.projectRepository.GetProject(ctx, id)
}

func (s *ProjectService) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	return s.projectRepository.CreateProject(ctx, input)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	return s.projectRepository.UpdateProject(ctx, id, input)
}

// DeleteProject removes the project together with every task that references
// it. Tasks go first so a listing never sees a project without its tasks
// reachable.
func (s *ProjectService) DeleteProject(ctx context.Context, id uint64) error {
	return s.projectRepository.DeleteProjectWithTasks(ctx, id)
}

var _ ports.ProjectService = (*ProjectService)(nil)
