package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const listProjectsQuery = `
SELECT id, name, description, created_at, updated_at
FROM projects
ORDER BY created_at DESC, id DESC;
`

const getProjectQuery = `
SELECT id, name, description, created_at, updated_at
FROM projects
WHERE id = ?;
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          uint64    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, listProjectsQuery); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}

	return projects, nil
}

func (r *ProjectRepository) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, getProjectQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	return mapProjectRowToDomainProject(row), nil
}

func (r *ProjectRepository) ProjectExists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.GetContext(ctx, &one, "SELECT 1 FROM projects WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ProjectRepository) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	result, err := r.db.ExecContext(
		ctx,
		"INSERT INTO projects (name, description) VALUES (?, ?)",
		input.Name,
		input.Description,
	)
	if err != nil {
		return domain.Project{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Project{}, err
	}

	return r.GetProject(ctx, uint64(id))
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	if _, err := r.GetProject(ctx, id); err != nil {
		return domain.Project{}, err
	}

	assignments := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if input.Name != nil {
		assignments = append(assignments, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Description != nil {
		assignments = append(assignments, "description = ?")
		args = append(args, *input.Description)
	}
	assignments = append(assignments, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := "UPDATE projects SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Project{}, err
	}

	return r.GetProject(ctx, id)
}

// DeleteProjectWithTasks removes the project's task comments, its tasks and
// finally the project itself inside one transaction, so no reader can
// observe a half-cascaded state.
func (r *ProjectRepository) DeleteProjectWithTasks(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(
		ctx,
		"DELETE tc FROM task_comments tc JOIN tasks t ON t.id = tc.task_id WHERE t.project_id = ?",
		id,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE project_id = ?", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}

	return tx.Commit()
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	return domain.Project{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
