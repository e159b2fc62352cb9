package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker/internal/core/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error)
	// GetByProjectID returns the project's tasks ordered by creation time,
	// most recent first. A project with no tasks yields an empty slice.
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskService interface {
	GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error)
	ListProjectTasks(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, task *domain.Task) error
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus, updatedBy string) (domain.Task, error)
	UpdateTaskPriority(ctx context.Context, id uuid.UUID, priority domain.TaskPriority, updatedBy string) (domain.Task, error)
	AssignTask(ctx context.Context, id uuid.UUID, assignee *string, updatedBy string) (domain.Task, error)
	SetTaskDueDate(ctx context.Context, id uuid.UUID, dueDate *time.Time, updatedBy string) (domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}
