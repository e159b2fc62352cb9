package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tracker/internal/adapter/http/dto"
	"tracker/internal/adapter/http/handlers"
	"tracker/internal/adapter/http/middleware"
	"tracker/internal/core/domain"
	"tracker/pkg/apierrors"
	"tracker/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListProjectTasks(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskServiceMock) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus, updatedBy string) (domain.Task, error) {
	args := m.Called(ctx, id, status, updatedBy)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTaskPriority(ctx context.Context, id uuid.UUID, priority domain.TaskPriority, updatedBy string) (domain.Task, error) {
	args := m.Called(ctx, id, priority, updatedBy)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) AssignTask(ctx context.Context, id uuid.UUID, assignee *string, updatedBy string) (domain.Task, error) {
	args := m.Called(ctx, id, assignee, updatedBy)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) SetTaskDueDate(ctx context.Context, id uuid.UUID, dueDate *time.Time, updatedBy string) (domain.Task, error) {
	args := m.Called(ctx, id, dueDate, updatedBy)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTaskRouter(handler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware())
	group.POST("/tasks", handler.CreateTask)
	group.GET("/tasks/:id", handler.GetTask)
	group.GET("/projects/:id/tasks", handler.ListProjectTasks)
	group.PUT("/tasks/:id", handler.UpdateTask)
	group.PUT("/tasks/:id/status", handler.UpdateTaskStatus)
	group.PUT("/tasks/:id/priority", handler.UpdateTaskPriority)
	group.PUT("/tasks/:id/assignee", handler.AssignTask)
	group.PUT("/tasks/:id/due-date", handler.SetTaskDueDate)
	group.DELETE("/tasks/:id", handler.DeleteTask)
	return router
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	projectID := uuid.New()
	created := domain.NewTask("Design mockup", nil, projectID, domain.TaskPriorityHigh, nil, nil, "u1")

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Title == "Design mockup" &&
			input.ProjectID == projectID &&
			input.Priority == domain.TaskPriorityHigh &&
			input.CreatedBy == "u1"
	})).Return(created, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"project_id":"` + projectID.String() + `","title":"Design mockup","priority":"high"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("X-User-ID", "u1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created.ID.String(), got.ID)
	require.Equal(t, projectID.String(), got.ProjectID)
	require.Equal(t, "todo", got.Status)
	require.Equal(t, "high", got.Priority)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_DefaultsPriorityToMedium(t *testing.T) {
	projectID := uuid.New()
	created := domain.NewTask("T", nil, projectID, domain.TaskPriorityMedium, nil, nil, "anonymous")

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Priority == domain.TaskPriorityMedium && input.CreatedBy == "anonymous"
	})).Return(created, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"project_id":"` + projectID.String() + `","title":"T"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_InvalidDueDate(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"project_id":"` + uuid.NewString() + `","title":"T","due_date":"21-08-2026"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestTaskHandler_GetTask_Success(t *testing.T) {
	dueDate := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	assignee := "u7"
	task := domain.Task{
		ID:        uuid.New(),
		ProjectID: uuid.New(),
		Title:     "Design mockup",
		Status:    domain.TaskStatusInProgress,
		Priority:  domain.TaskPriorityCritical,
		Assignee:  &assignee,
		DueDate:   &dueDate,
		CreatedAt: time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC),
		CreatedBy: "u1",
		UpdatedAt: time.Date(2026, 2, 13, 11, 20, 30, 0, time.UTC),
		UpdatedBy: "u2",
	}

	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, task.ID).Return(task, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/"+task.ID.String(), nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "in_progress", got.Status)
	require.Equal(t, "critical", got.Priority)
	require.Equal(t, "u7", *got.Assignee)
	require.Equal(t, "2026-02-20T12:00:00Z", *got.DueDate)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	id := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, id).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/"+id.String(), nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListProjectTasks_Success(t *testing.T) {
	projectID := uuid.New()
	newer := domain.NewTask("Newer", nil, projectID, domain.TaskPriorityMedium, nil, nil, "u1")
	older := domain.NewTask("Older", nil, projectID, domain.TaskPriorityMedium, nil, nil, "u1")

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListProjectTasks", mock.Anything, projectID).Return([]domain.Task{newer, older}, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/projects/"+projectID.String()+"/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "Newer", got[0].Title)
	require.Equal(t, "Older", got[1].Title)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListProjectTasks_EmptyList(t *testing.T) {
	projectID := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListProjectTasks", mock.Anything, projectID).Return([]domain.Task{}, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/projects/"+projectID.String()+"/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListProjectTasks_Error(t *testing.T) {
	projectID := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListProjectTasks", mock.Anything, projectID).Return(nil, errors.New("db is down")).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/projects/"+projectID.String()+"/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to list the project tasks", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_Success(t *testing.T) {
	stored := domain.NewTask("Old title", nil, uuid.New(), domain.TaskPriorityMedium, nil, nil, "u1")

	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, stored.ID).Return(stored, nil).Once()
	serviceMock.On("UpdateTask", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.ID == stored.ID &&
			task.Title == "New title" &&
			task.Status == domain.TaskStatusInProgress &&
			task.UpdatedBy == "u2"
	})).Return(nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"title":"New title","status":"in_progress"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/"+stored.ID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("X-User-ID", "u2")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "New title", got.Title)
	require.Equal(t, "in_progress", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_NullDueDateClearsIt(t *testing.T) {
	dueDate := time.Now().UTC().Add(24 * time.Hour)
	stored := domain.NewTask("T", nil, uuid.New(), domain.TaskPriorityMedium, nil, &dueDate, "u1")

	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, stored.ID).Return(stored, nil).Once()
	serviceMock.On("UpdateTask", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.DueDate == nil
	})).Return(nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"due_date":null}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/"+stored.ID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTaskStatus_Success(t *testing.T) {
	stored := domain.NewTask("T", nil, uuid.New(), domain.TaskPriorityMedium, nil, nil, "u1")
	updated := stored
	updated.UpdateStatus(domain.TaskStatusDone, "u2")

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTaskStatus", mock.Anything, stored.ID, domain.TaskStatusDone, "u2").Return(updated, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"status":"done"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/"+stored.ID.String()+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("X-User-ID", "u2")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "done", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTaskStatus_NotFound(t *testing.T) {
	id := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTaskStatus", mock.Anything, id, domain.TaskStatusDone, "anonymous").Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"status":"done"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/"+id.String()+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AssignTask_Success(t *testing.T) {
	stored := domain.NewTask("T", nil, uuid.New(), domain.TaskPriorityMedium, nil, nil, "u1")
	assignee := "u9"
	updated := stored
	updated.AssignTo(&assignee, "u2")

	serviceMock := new(taskServiceMock)
	serviceMock.On("AssignTask", mock.Anything, stored.ID, &assignee, "u2").Return(updated, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"assignee":"u9"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/"+stored.ID.String()+"/assignee", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("X-User-ID", "u2")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "u9", *got.Assignee)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_SetTaskDueDate_Success(t *testing.T) {
	stored := domain.NewTask("T", nil, uuid.New(), domain.TaskPriorityMedium, nil, nil, "u1")
	dueDate := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := stored
	updated.SetDueDate(&dueDate, "u2")

	serviceMock := new(taskServiceMock)
	serviceMock.On("SetTaskDueDate", mock.Anything, stored.ID, mock.MatchedBy(func(value *time.Time) bool {
		return value != nil && value.Equal(dueDate)
	}), "u2").Return(updated, nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"due_date":"2026-03-01T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/"+stored.ID.String()+"/due-date", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("X-User-ID", "u2")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2026-03-01T09:00:00Z", *got.DueDate)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	id := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, id).Return(domain.ErrTaskNotFound).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+id.String(), nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	id := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, id).Return(nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+id.String(), nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
