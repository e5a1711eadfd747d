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

const listTasksByProjectQuery = `
SELECT id, project_id, title, description, assigned_to, status, created_at, updated_at
FROM tasks
WHERE project_id = ?
ORDER BY created_at DESC, id DESC;
`

const listTasksByProjectAndStatusQuery = `
SELECT id, project_id, title, description, assigned_to, status, created_at, updated_at
FROM tasks
WHERE project_id = ? AND status = ?
ORDER BY created_at DESC, id DESC;
`

const getTaskQuery = `
SELECT id, project_id, title, description, assigned_to, status, created_at, updated_at
FROM tasks
WHERE id = ?;
`

const listCommentsQuery = `
SELECT task_id, user_id, text, created_at
FROM task_comments
WHERE task_id IN (?)
ORDER BY task_id, id;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64    `db:"id"`
	ProjectID   uint64    `db:"project_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	AssignedTo  string    `db:"assigned_to"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type commentRow struct {
	TaskID    uint64    `db:"task_id"`
	UserID    string    `db:"user_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasksByProject(ctx context.Context, projectID uint64, status *domain.TaskStatus) ([]domain.Task, error) {
	var rows []taskRow
	var err error
	if status != nil {
		err = r.db.SelectContext(ctx, &rows, listTasksByProjectAndStatusQuery, projectID, string(*status))
	} else {
		err = r.db.SelectContext(ctx, &rows, listTasksByProjectQuery, projectID)
	}
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
		ids = append(ids, row.ID)
	}

	if err := r.attachComments(ctx, tasks, ids); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	tasks := []domain.Task{mapTaskRowToDomainTask(row)}
	if err := r.attachComments(ctx, tasks, []uint64{id}); err != nil {
		return domain.Task{}, err
	}

	return tasks[0], nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(
		ctx,
		"INSERT INTO tasks (project_id, title, description, assigned_to, status) VALUES (?, ?, ?, ?, ?)",
		input.ProjectID,
		input.Title,
		input.Description,
		input.AssignedTo,
		string(input.Status),
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetTask(ctx, uint64(id))
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if _, err := r.GetTask(ctx, id); err != nil {
		return domain.Task{}, err
	}

	assignments := make([]string, 0, 5)
	args := make([]any, 0, 5)
	if input.Title != nil {
		assignments = append(assignments, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Description != nil {
		assignments = append(assignments, "description = ?")
		args = append(args, *input.Description)
	}
	if input.AssignedTo != nil {
		assignments = append(assignments, "assigned_to = ?")
		args = append(args, *input.AssignedTo)
	}
	if input.Status != nil {
		assignments = append(assignments, "status = ?")
		args = append(args, string(*input.Status))
	}
	assignments = append(assignments, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := "UPDATE tasks SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	return r.GetTask(ctx, id)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM task_comments WHERE task_id = ?", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return tx.Commit()
}

// AddComment appends to the task's comment sequence and bumps the task's
// updated_at, mirroring a save of the owning document. Comments are
// append-only; there is no update or delete path for a single comment.
func (r *TaskRepository) AddComment(ctx context.Context, taskID uint64, userID, text string) (domain.Comment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Comment{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var one int
	if err := tx.GetContext(ctx, &one, "SELECT 1 FROM tasks WHERE id = ?", taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, domain.ErrTaskNotFound
		}
		return domain.Comment{}, err
	}

	result, err := tx.ExecContext(
		ctx,
		"INSERT INTO task_comments (task_id, user_id, text) VALUES (?, ?, ?)",
		taskID,
		userID,
		text,
	)
	if err != nil {
		return domain.Comment{}, err
	}

	commentID, err := result.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}

	if _, err := tx.ExecContext(ctx, "UPDATE tasks SET updated_at = CURRENT_TIMESTAMP WHERE id = ?", taskID); err != nil {
		return domain.Comment{}, err
	}

	var row commentRow
	if err := tx.GetContext(ctx, &row, "SELECT task_id, user_id, text, created_at FROM task_comments WHERE id = ?", commentID); err != nil {
		return domain.Comment{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Comment{}, err
	}

	return domain.Comment{UserID: row.UserID, Text: row.Text, CreatedAt: row.CreatedAt}, nil
}

func (r *TaskRepository) attachComments(ctx context.Context, tasks []domain.Task, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(listCommentsQuery, ids)
	if err != nil {
		return err
	}

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return err
	}

	byTask := make(map[uint64][]domain.Comment, len(tasks))
	for _, row := range rows {
		byTask[row.TaskID] = append(byTask[row.TaskID], domain.Comment{
			UserID:    row.UserID,
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
		})
	}

	for i := range tasks {
		if comments, ok := byTask[tasks[i].ID]; ok {
			tasks[i].Comments = comments
		}
	}

	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		ProjectID:   row.ProjectID,
		Title:       row.Title,
		Description: row.Description,
		AssignedTo:  row.AssignedTo,
		Status:      domain.TaskStatus(row.Status),
		Comments:    []domain.Comment{},
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
