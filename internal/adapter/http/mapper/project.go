package mapper

import (
	"time"

	"tracker/internal/adapter/http/dto"
	"tracker/internal/core/domain"
)

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:        project.ID.String(),
		Name:      project.Name,
		Status:    string(project.Status),
		OwnerID:   project.OwnerID.String(),
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		CreatedBy: project.CreatedBy,
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
		UpdatedBy: project.UpdatedBy,
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	return item
}
