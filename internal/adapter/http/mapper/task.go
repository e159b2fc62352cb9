package mapper

import (
	"time"

	"tracker/internal/adapter/http/dto"
	"tracker/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID.String(),
		ProjectID: task.ProjectID.String(),
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		CreatedBy: task.CreatedBy,
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
		UpdatedBy: task.UpdatedBy,
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.Assignee != nil {
		value := *task.Assignee
		item.Assignee = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(time.RFC3339)
		item.DueDate = &value
	}

	return item
}
