package client

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// State is a read-only snapshot of the store. Tasks is scoped to the last
// fetched project; Error is a single slot where the last failure wins.
type State struct {
	Projects       []Project
	CurrentProject *Project
	Tasks          []Task
	Users          []User
	SelectedTask   *Task
	Loading        bool
	Error          string
}

// Store mirrors the server state for a UI. Every mutation waits for server
// confirmation except UpdateTask, which applies the change locally first and
// rolls back to the pre-mutation snapshot on failure.
type Store struct {
	mu    sync.Mutex
	api   *Client
	state State
}

func NewStore(api *Client) *Store {
	return &Store{api: api}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := State{
		Projects: make([]Project, len(s.state.Projects)),
		Tasks:    copyTasks(s.state.Tasks),
		Users:    make([]User, len(s.state.Users)),
		Loading:  s.state.Loading,
		Error:    s.state.Error,
	}
	copy(snapshot.Projects, s.state.Projects)
	copy(snapshot.Users, s.state.Users)
	if s.state.CurrentProject != nil {
		clone := *s.state.CurrentProject
		snapshot.CurrentProject = &clone
	}
	if s.state.SelectedTask != nil {
		clone := copyTask(*s.state.SelectedTask)
		snapshot.SelectedTask = &clone
	}

	return snapshot
}

// FetchProjects loads the project list and selects the first project when
// none is selected yet.
func (s *Store) FetchProjects(ctx context.Context) error {
	s.setLoading(true)

	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		s.fail("Failed to fetch projects")
		s.setLoading(false)
		return err
	}

	s.mu.Lock()
	s.state.Projects = projects
	if s.state.CurrentProject == nil && len(projects) > 0 {
		clone := projects[0]
		s.state.CurrentProject = &clone
	}
	s.state.Loading = false
	s.mu.Unlock()
	return nil
}

func (s *Store) CreateProject(ctx context.Context, req CreateProjectRequest) (Project, error) {
	s.clearError()

	project, err := s.api.CreateProject(ctx, req)
	if err != nil {
		s.fail("Failed to create project")
		return Project{}, err
	}

	s.mu.Lock()
	s.state.Projects = append(s.state.Projects, project)
	s.mu.Unlock()
	return project, nil
}

func (s *Store) UpdateProject(ctx context.Context, projectID uint64, req UpdateProjectRequest) (Project, error) {
	s.clearError()

	project, err := s.api.UpdateProject(ctx, projectID, req)
	if err != nil {
		s.fail("Failed to update project")
		return Project{}, err
	}

	s.mu.Lock()
	for i := range s.state.Projects {
		if s.state.Projects[i].ID == projectID {
			s.state.Projects[i] = project
		}
	}
	if s.state.CurrentProject != nil && s.state.CurrentProject.ID == projectID {
		clone := project
		s.state.CurrentProject = &clone
	}
	s.mu.Unlock()
	return project, nil
}

func (s *Store) DeleteProject(ctx context.Context, projectID uint64) error {
	s.clearError()

	if err := s.api.DeleteProject(ctx, projectID); err != nil {
		s.fail("Failed to delete project")
		return err
	}

	s.mu.Lock()
	filtered := s.state.Projects[:0]
	for _, project := range s.state.Projects {
		if project.ID != projectID {
			filtered = append(filtered, project)
		}
	}
	s.state.Projects = filtered
	if s.state.CurrentProject != nil && s.state.CurrentProject.ID == projectID {
		s.state.CurrentProject = nil
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) SelectProject(project Project) {
	s.mu.Lock()
	clone := project
	s.state.CurrentProject = &clone
	s.mu.Unlock()
}

func (s *Store) FetchTasks(ctx context.Context, projectID uint64, statusFilter string) error {
	s.setLoading(true)

	tasks, err := s.api.ListTasks(ctx, projectID, statusFilter)
	if err != nil {
		s.fail("Failed to fetch tasks")
		s.setLoading(false)
		return err
	}

	s.mu.Lock()
	s.state.Tasks = tasks
	s.state.Loading = false
	s.mu.Unlock()
	return nil
}

func (s *Store) CreateTask(ctx context.Context, projectID uint64, req CreateTaskRequest) (Task, error) {
	s.clearError()

	task, err := s.api.CreateTask(ctx, projectID, req)
	if err != nil {
		s.fail("Failed to create task")
		return Task{}, err
	}

	s.mu.Lock()
	s.state.Tasks = append(s.state.Tasks, task)
	s.mu.Unlock()
	return task, nil
}

// UpdateTask applies the patch to the local task list immediately, then asks
// the server. On success the server representation replaces the speculative
// one; on failure the pre-mutation snapshot is restored verbatim.
func (s *Store) UpdateTask(ctx context.Context, taskID uint64, req UpdateTaskRequest) (Task, error) {
	s.mu.Lock()
	previous := copyTasks(s.state.Tasks)
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == taskID {
			applyTaskPatch(&s.state.Tasks[i], req)
		}
	}
	s.state.Error = ""
	s.mu.Unlock()

	task, err := s.api.UpdateTask(ctx, taskID, req)
	if err != nil {
		s.mu.Lock()
		s.state.Tasks = previous
		s.state.Error = "Failed to update task"
		s.mu.Unlock()
		return Task{}, err
	}

	s.mu.Lock()
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == taskID {
			s.state.Tasks[i] = task
		}
	}
	if s.state.SelectedTask != nil && s.state.SelectedTask.ID == taskID {
		clone := copyTask(task)
		s.state.SelectedTask = &clone
	}
	s.mu.Unlock()
	return task, nil
}

func (s *Store) DeleteTask(ctx context.Context, taskID uint64) error {
	s.clearError()

	if err := s.api.DeleteTask(ctx, taskID); err != nil {
		s.fail("Failed to delete task")
		return err
	}

	s.mu.Lock()
	filtered := s.state.Tasks[:0]
	for _, task := range s.state.Tasks {
		if task.ID != taskID {
			filtered = append(filtered, task)
		}
	}
	s.state.Tasks = filtered
	if s.state.SelectedTask != nil && s.state.SelectedTask.ID == taskID {
		s.state.SelectedTask = nil
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) SelectTask(task Task) {
	s.mu.Lock()
	clone := copyTask(task)
	s.state.SelectedTask = &clone
	s.mu.Unlock()
}

func (s *Store) ClearSelectedTask() {
	s.mu.Lock()
	s.state.SelectedTask = nil
	s.mu.Unlock()
}

// AddComment appends the confirmed comment to the task list entry and to the
// open task detail when it is the same task, so a detail view stays
// consistent without a refetch.
func (s *Store) AddComment(ctx context.Context, taskID uint64, text, userID string) (Comment, error) {
	s.clearError()

	comment, err := s.api.AddComment(ctx, taskID, text, userID)
	if err != nil {
		s.fail("Failed to add comment")
		return Comment{}, err
	}

	s.mu.Lock()
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == taskID {
			s.state.Tasks[i].Comments = append(s.state.Tasks[i].Comments, comment)
		}
	}
	if s.state.SelectedTask != nil && s.state.SelectedTask.ID == taskID {
		s.state.SelectedTask.Comments = append(s.state.SelectedTask.Comments, comment)
	}
	s.mu.Unlock()
	return comment, nil
}

// FetchUsers loads the read-only user reference set. A failure is logged but
// does not occupy the error slot, matching how little the UI depends on it.
func (s *Store) FetchUsers(ctx context.Context) error {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		zap.L().Warn("failed to fetch users", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.state.Users = users
	s.mu.Unlock()
	return nil
}

func (s *Store) UserName(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.state.Users {
		if user.ID == userID {
			return user.Name
		}
	}
	return "Unknown User"
}

func (s *Store) ClearError() {
	s.clearError()
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	if loading {
		s.state.Error = ""
	}
	s.mu.Unlock()
}

func (s *Store) clearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *Store) fail(message string) {
	s.mu.Lock()
	s.state.Error = message
	s.mu.Unlock()
}

func applyTaskPatch(task *Task, req UpdateTaskRequest) {
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedTo != nil {
		task.AssignedTo = *req.AssignedTo
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
}

func copyTasks(tasks []Task) []Task {
	cloned := make([]Task, len(tasks))
	for i, task := range tasks {
		cloned[i] = copyTask(task)
	}
	return cloned
}

func copyTask(task Task) Task {
	clone := task
	clone.Comments = make([]Comment, len(task.Comments))
	copy(clone.Comments, task.Comments)
	return clone
}
