package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id uint64) (domain.Project, error)
	ProjectExists(ctx context.Context, id uint64) (bool, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) (domain.Project, error)
	DeleteProjectWithTasks(ctx context.Context, id uint64) error
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id uint64) (domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, id uint64) error
}
