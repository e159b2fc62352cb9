package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker/internal/core/domain"
	"tracker/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) ListProjectTasks(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	return s.taskRepository.GetByProjectID(ctx, projectID)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.NewTask(
		input.Title,
		input.Description,
		input.ProjectID,
		input.Priority,
		input.Assignee,
		input.DueDate,
		input.CreatedBy,
	)
	if err := s.taskRepository.Create(ctx, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, task *domain.Task) error {
	// Check if task exists
	if _, err := s.taskRepository.GetByID(ctx, task.ID); err != nil {
		return err
	}
	return s.taskRepository.Update(ctx, task)
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus, updatedBy string) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	task.UpdateStatus(status, updatedBy)
	if err := s.taskRepository.Update(ctx, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTaskPriority(ctx context.Context, id uuid.UUID, priority domain.TaskPriority, updatedBy string) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	task.UpdatePriority(priority, updatedBy)
	if err := s.taskRepository.Update(ctx, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) AssignTask(ctx context.Context, id uuid.UUID, assignee *string, updatedBy string) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	task.AssignTo(assignee, updatedBy)
	if err := s.taskRepository.Update(ctx, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) SetTaskDueDate(ctx context.Context, id uuid.UUID, dueDate *time.Time, updatedBy string) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	task.SetDueDate(dueDate, updatedBy)
	if err := s.taskRepository.Update(ctx, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	// Check if task exists
	if _, err := s.taskRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepository.Delete(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
