package ports

import (
	"context"

	"github.com/google/uuid"

	"tracker/internal/core/domain"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Project, error)
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectService interface {
	GetProject(ctx context.Context, id uuid.UUID) (domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	UpdateProject(ctx context.Context, project *domain.Project) error
	UpdateProjectName(ctx context.Context, id uuid.UUID, name string, updatedBy string) (domain.Project, error)
	UpdateProjectDescription(ctx context.Context, id uuid.UUID, description *string, updatedBy string) (domain.Project, error)
	UpdateProjectStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus, updatedBy string) (domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}
