package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusArchived  ProjectStatus = "archived"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ParseProjectStatus maps a stored or inbound string onto a status constant.
// Unknown values are an error, never silently defaulted.
func ParseProjectStatus(value string) (ProjectStatus, error) {
	switch ProjectStatus(value) {
	case ProjectStatusActive, ProjectStatusArchived, ProjectStatusCompleted:
		return ProjectStatus(value), nil
	default:
		return "", fmt.Errorf("unknown project status %q", value)
	}
}

const (
	maxProjectNameLength        = 100
	maxProjectDescriptionLength = 500
)

type Project struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Status      ProjectStatus
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	CreatedBy   string
	UpdatedAt   time.Time
	UpdatedBy   string
}

// NewProject stamps a fresh identity and audit trail. The new project starts
// active with created_at == updated_at.
func NewProject(name string, description *string, ownerID uuid.UUID, createdBy string) Project {
	ts := now()
	return Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Status:      ProjectStatusActive,
		OwnerID:     ownerID,
		CreatedAt:   ts,
		CreatedBy:   createdBy,
		UpdatedAt:   ts,
		UpdatedBy:   createdBy,
	}
}

func (p *Project) UpdateName(name string, updatedBy string) {
	p.Name = name
	p.touch(updatedBy)
}

func (p *Project) UpdateDescription(description *string, updatedBy string) {
	p.Description = description
	p.touch(updatedBy)
}

// UpdateStatus replaces the status without transition checks: the status set
// is a flat enum, any value is reachable from any other.
func (p *Project) UpdateStatus(status ProjectStatus, updatedBy string) {
	p.Status = status
	p.touch(updatedBy)
}

func (p *Project) IsActive() bool {
	return p.Status == ProjectStatusActive
}

func (p *Project) IsCompleted() bool {
	return p.Status == ProjectStatusCompleted
}

// Validate checks structural constraints. It is a query, not a gate:
// constructors and mutators never call it, callers decide when to.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Message: "project name cannot be empty"}
	}
	if len(p.Name) > maxProjectNameLength {
		return &ValidationError{Message: "project name cannot exceed 100 characters"}
	}
	if p.Description != nil && len(*p.Description) > maxProjectDescriptionLength {
		return &ValidationError{Message: "project description cannot exceed 500 characters"}
	}
	return nil
}

func (p *Project) touch(updatedBy string) {
	p.UpdatedAt = now()
	p.UpdatedBy = updatedBy
}

type CreateProjectInput struct {
	Name        string
	Description *string
	OwnerID     uuid.UUID
	CreatedBy   string
}
