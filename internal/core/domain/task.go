package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func ParseTaskStatus(value string) (TaskStatus, error) {
	switch TaskStatus(value) {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone, TaskStatusCancelled:
		return TaskStatus(value), nil
	default:
		return "", fmt.Errorf("unknown task status %q", value)
	}
}

type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "low"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityCritical TaskPriority = "critical"
)

func ParseTaskPriority(value string) (TaskPriority, error) {
	switch TaskPriority(value) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return TaskPriority(value), nil
	default:
		return "", fmt.Errorf("unknown task priority %q", value)
	}
}

const (
	maxTaskTitleLength       = 200
	maxTaskDescriptionLength = 1000
)

type Task struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	Assignee    *string
	DueDate     *time.Time
	CreatedAt   time.Time
	CreatedBy   string
	UpdatedAt   time.Time
	UpdatedBy   string
}

// NewTask stamps identity and audit fields. Status always starts at todo;
// priority is caller-supplied (the HTTP adapter defaults it to medium).
func NewTask(
	title string,
	description *string,
	projectID uuid.UUID,
	priority TaskPriority,
	assignee *string,
	dueDate *time.Time,
	createdBy string,
) Task {
	ts := now()
	return Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      TaskStatusTodo,
		Priority:    priority,
		Assignee:    assignee,
		DueDate:     dueDate,
		CreatedAt:   ts,
		CreatedBy:   createdBy,
		UpdatedAt:   ts,
		UpdatedBy:   createdBy,
	}
}

func (t *Task) UpdateTitle(title string, updatedBy string) {
	t.Title = title
	t.touch(updatedBy)
}

func (t *Task) UpdateDescription(description *string, updatedBy string) {
	t.Description = description
	t.touch(updatedBy)
}

func (t *Task) UpdateStatus(status TaskStatus, updatedBy string) {
	t.Status = status
	t.touch(updatedBy)
}

func (t *Task) UpdatePriority(priority TaskPriority, updatedBy string) {
	t.Priority = priority
	t.touch(updatedBy)
}

// AssignTo sets or clears the assignee. A nil assignee unassigns the task.
func (t *Task) AssignTo(assignee *string, updatedBy string) {
	t.Assignee = assignee
	t.touch(updatedBy)
}

func (t *Task) SetDueDate(dueDate *time.Time, updatedBy string) {
	t.DueDate = dueDate
	t.touch(updatedBy)
}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusDone
}

// IsOverdue reports whether the due date has passed on an uncompleted task.
// Tasks without a due date are never overdue.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return time.Now().After(*t.DueDate) && !t.IsCompleted()
}

func (t *Task) IsAssigned() bool {
	return t.Assignee != nil
}

// Validate checks structural constraints; like Project.Validate it is only
// run when a caller asks for it.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Message: "task title cannot be empty"}
	}
	if len(t.Title) > maxTaskTitleLength {
		return &ValidationError{Message: "task title cannot exceed 200 characters"}
	}
	if t.Description != nil && len(*t.Description) > maxTaskDescriptionLength {
		return &ValidationError{Message: "task description cannot exceed 1000 characters"}
	}
	return nil
}

func (t *Task) touch(updatedBy string) {
	t.UpdatedAt = now()
	t.UpdatedBy = updatedBy
}

type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Title       string
	Description *string
	Priority    TaskPriority
	Assignee    *string
	DueDate     *time.Time
	CreatedBy   string
}
