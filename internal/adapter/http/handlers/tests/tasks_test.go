package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
	"taskboard/pkg/translator"
)

type taskListEnvelope struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []dto.TaskItem `json:"data"`
}

type taskEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    dto.TaskItem `json:"data"`
}

type commentEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    dto.CommentItem `json:"data"`
}

func newTaskRouter(serviceMock *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(serviceMock)
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware())
	group.GET("/projects/:id/tasks", handler.ListProjectTasks)
	group.POST("/projects/:id/tasks", handler.CreateTask)
	group.GET("/tasks/:id", handler.GetTask)
	group.PATCH("/tasks/:id", handler.UpdateTask)
	group.DELETE("/tasks/:id", handler.DeleteTask)
	group.POST("/tasks/:id/comments", handler.AddComment)
	return router
}

func TestTaskHandler_ListProjectTasks_StatusFilterApplied(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 10, 20, 30, 0, time.UTC)
	done := domain.TaskStatusDone

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListProjectTasks", mock.Anything, uint64(1), &done).Return(
		[]domain.Task{
			{
				ID:         4,
				ProjectID:  1,
				Title:      "Setup Database Schema",
				AssignedTo: "user1",
				Status:     domain.TaskStatusDone,
				Comments:   []domain.Comment{{UserID: "user2", Text: "Great work!", CreatedAt: createdAt}},
				CreatedAt:  createdAt,
				UpdatedAt:  createdAt,
			},
		},
		nil,
	).Once()
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/1/tasks?status=done", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got taskListEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Success)
	require.Equal(t, 1, got.Count)
	require.Equal(t, "done", got.Data[0].Status)
	require.Len(t, got.Data[0].Comments, 1)
	require.Equal(t, "user2", got.Data[0].Comments[0].UserID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListProjectTasks_InvalidStatusFilterIgnored(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListProjectTasks", mock.Anything, uint64(1), (*domain.TaskStatus)(nil)).Return(
		[]domain.Task{},
		nil,
	).Once()
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/1/tasks?status=blocked", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got taskListEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 0, got.Count)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListProjectTasks_ProjectNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListProjectTasks", mock.Anything, uint64(999), (*domain.TaskStatus)(nil)).Return(
		nil,
		domain.ErrProjectNotFound,
	).Once()
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/999/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Project not found", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_DefaultsStatusToTodo(t *testing.T) {
	createdAt := time.Date(2026, 1, 18, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, domain.CreateTaskInput{
		ProjectID:  1,
		Title:      "Create Product Catalog UI",
		AssignedTo: "user3",
		Status:     domain.TaskStatusTodo,
	}).Return(
		domain.Task{
			ID:         3,
			ProjectID:  1,
			Title:      "Create Product Catalog UI",
			AssignedTo: "user3",
			Status:     domain.TaskStatusTodo,
			Comments:   []domain.Comment{},
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		},
		nil,
	).Once()
	router := newTaskRouter(serviceMock)

	body := `{"title":"Create Product Catalog UI","assignedTo":"user3"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects/1/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got taskEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Success)
	require.Equal(t, "Task created successfully", got.Message)
	require.Equal(t, "todo", got.Data.Status)
	require.NotNil(t, got.Data.Comments)
	require.Len(t, got.Data.Comments, 0)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingAssignee(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/projects/1/tasks", strings.NewReader(`{"title":"T1","assignedTo":"  "}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task must be assigned to a user", got.Message)
	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestTaskHandler_CreateTask_ProjectNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, mock.Anything).Return(domain.Task{}, domain.ErrProjectNotFound).Once()
	router := newTaskRouter(serviceMock)

	body := `{"title":"T1","assignedTo":"user1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects/999/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Project not found", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/not-a-number", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task ID format", got.Message)
}

func TestTaskHandler_UpdateTask_InvalidStatus(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/1", strings.NewReader(`{"status":"blocked"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid status. Must be one of: todo, in_progress, done", got.Message)
	serviceMock.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_UpdateTask_NoFields(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/1", strings.NewReader(`{}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "No fields to update", got.Message)
}

func TestTaskHandler_UpdateTask_StatusPersisted(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 10, 20, 30, 0, time.UTC)
	done := domain.TaskStatusDone

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, uint64(2), domain.UpdateTaskInput{Status: &done}).Return(
		domain.Task{
			ID:         2,
			ProjectID:  1,
			Title:      "Implement Payment Gateway",
			AssignedTo: "user2",
			Status:     domain.TaskStatusDone,
			Comments:   []domain.Comment{},
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt.Add(time.Hour),
		},
		nil,
	).Once()
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/2", strings.NewReader(`{"status":"done"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got taskEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task updated successfully", got.Message)
	require.Equal(t, "done", got.Data.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_NotFound(t *testing.T) {
	title := "New title"

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, uint64(999), domain.UpdateTaskInput{Title: &title}).Return(
		domain.Task{},
		domain.ErrTaskNotFound,
	).Once()
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/999", strings.NewReader(`{"title":"New title"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(5)).Return(nil).Once()
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/5", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got deletedEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task deleted successfully", got.Message)
	require.Equal(t, uint64(5), got.Data.ID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AddComment_DefaultsUser(t *testing.T) {
	createdAt := time.Date(2026, 1, 20, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("AddComment", mock.Anything, uint64(1), "user1", "Looks good to me").Return(
		domain.Comment{UserID: "user1", Text: "Looks good to me", CreatedAt: createdAt},
		nil,
	).Once()
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/1/comments", strings.NewReader(`{"text":" Looks good to me "}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got commentEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Success)
	require.Equal(t, "Comment added successfully", got.Message)
	require.Equal(t, "user1", got.Data.UserID)
	require.Equal(t, "Looks good to me", got.Data.Text)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AddComment_EmptyText(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/1/comments", strings.NewReader(`{"text":"   ","userId":"user2"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Comment text is required", got.Message)
	serviceMock.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_AddComment_TaskNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("AddComment", mock.Anything, uint64(404), "user2", "hello").Return(
		domain.Comment{},
		domain.ErrTaskNotFound,
	).Once()
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/404/comments", strings.NewReader(`{"text":"hello","userId":"user2"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.Message)
	serviceMock.AssertExpectations(t)
}
