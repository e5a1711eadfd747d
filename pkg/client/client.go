// Package client is the Go consumer of the taskboard API: a thin typed
// client over the JSON envelope plus a Store that mirrors server state for a
// UI, including the optimistic task update.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

type Project struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type Comment struct {
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type Task struct {
	ID          uint64    `json:"id"`
	ProjectID   uint64    `json:"projectId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AssignedTo  string    `json:"assignedTo"`
	Status      string    `json:"status"`
	Comments    []Comment `json:"comments"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assignedTo"`
	Status      string `json:"status,omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// APIError carries the failure envelope of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Errors  []string        `json:"errors"`
}

type Client struct {
	http *resty.Client
}

// New creates a client for a base URL including the /api prefix, e.g.
// "http://localhost:8080/api".
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, id uint64) (Project, error) {
	var project Project
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, &project)
	return project, err
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (Project, error) {
	var project Project
	err := c.do(ctx, http.MethodPost, "/projects", req, &project)
	return project, err
}

func (c *Client) UpdateProject(ctx context.Context, id uint64, req UpdateProjectRequest) (Project, error) {
	var project Project
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/%d", id), req, &project)
	return project, err
}

func (c *Client) DeleteProject(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}

func (c *Client) ListTasks(ctx context.Context, projectID uint64, statusFilter string) ([]Task, error) {
	path := fmt.Sprintf("/projects/%d/tasks", projectID)
	if statusFilter != "" {
		path += "?status=" + url.QueryEscape(statusFilter)
	}

	var tasks []Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, projectID uint64, req CreateTaskRequest) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/tasks", projectID), req, &task)
	return task, err
}

func (c *Client) GetTask(ctx context.Context, id uint64) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &task)
	return task, err
}

func (c *Client) UpdateTask(ctx context.Context, id uint64, req UpdateTaskRequest) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d", id), req, &task)
	return task, err
}

func (c *Client) DeleteTask(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

func (c *Client) AddComment(ctx context.Context, taskID uint64, text, userID string) (Comment, error) {
	body := map[string]string{"text": text}
	if userID != "" {
		body["userId"] = userID
	}

	var comment Comment
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/comments", taskID), body, &comment)
	return comment, err
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}

	if resp.IsError() || !env.Success {
		return &APIError{StatusCode: resp.StatusCode(), Message: env.Message, Details: env.Errors}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}

	return nil
}
