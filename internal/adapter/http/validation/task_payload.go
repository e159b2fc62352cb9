package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tracker/internal/adapter/http/dto"
	"tracker/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest, createdBy string) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority, err = domain.ParseTaskPriority(*req.Priority)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		ProjectID:   projectID,
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		Assignee:    req.Assignee,
		DueDate:     dueDate,
		CreatedBy:   createdBy,
	}, nil
}

// ApplyTaskUpdate applies the fields present in the payload to the task
// through its mutators. JSON null clears description, assignee and due date.
func ApplyTaskUpdate(task *domain.Task, req dto.UpdateTaskRequest, raw map[string]json.RawMessage, updatedBy string) error {
	if !hasTaskUpdateFields(raw) {
		return ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return ErrInvalidTaskPayload
		}
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return ErrInvalidTaskPayload
		}
		task.UpdateTitle(title, updatedBy)
	}

	if hasJSONField(raw, "description") {
		if !isJSONNull(raw["description"]) && req.Description == nil {
			return ErrInvalidTaskPayload
		}
		task.UpdateDescription(req.Description, updatedBy)
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return ErrInvalidTaskPayload
		}
		status, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return ErrInvalidTaskPayload
		}
		task.UpdateStatus(status, updatedBy)
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return ErrInvalidTaskPayload
		}
		priority, err := domain.ParseTaskPriority(*req.Priority)
		if err != nil {
			return ErrInvalidTaskPayload
		}
		task.UpdatePriority(priority, updatedBy)
	}

	if hasJSONField(raw, "assignee") {
		if !isJSONNull(raw["assignee"]) && req.Assignee == nil {
			return ErrInvalidTaskPayload
		}
		task.AssignTo(req.Assignee, updatedBy)
	}

	if hasJSONField(raw, "due_date") {
		if !isJSONNull(raw["due_date"]) && req.DueDate == nil {
			return ErrInvalidTaskPayload
		}
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return ErrInvalidTaskPayload
		}
		task.SetDueDate(dueDate, updatedBy)
	}

	return nil
}

// ParseDueDate parses an optional RFC3339 due date from a payload.
func ParseDueDate(value *string) (*time.Time, error) {
	return parseDueDate(value)
}

func parseDueDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, ErrInvalidTaskPayload
	}
	utc := parsed.UTC().Truncate(time.Millisecond)
	return &utc, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "assignee") ||
		hasJSONField(raw, "due_date")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
