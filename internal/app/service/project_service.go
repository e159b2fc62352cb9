package service

import (
	"context"

	"github.com/google/uuid"

	"tracker/internal/core/domain"
	"tracker/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository}
}

func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (domain.Project, error) {
	return s.projectRepository.GetByID(ctx, id)
}

// CreateProject persists a freshly constructed project and returns the
// constructed value without re-fetching it.
func (s *ProjectService) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	project := domain.NewProject(input.Name, input.Description, input.OwnerID, input.CreatedBy)
	if err := s.projectRepository.Create(ctx, &project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, project *domain.Project) error {
	// Check if project exists
	if _, err := s.projectRepository.GetByID(ctx, project.ID); err != nil {
		return err
	}
	return s.projectRepository.Update(ctx, project)
}

func (s *ProjectService) UpdateProjectName(ctx context.Context, id uuid.UUID, name string, updatedBy string) (domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	project.UpdateName(name, updatedBy)
	if err := s.projectRepository.Update(ctx, &project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) UpdateProjectDescription(ctx context.Context, id uuid.UUID, description *string, updatedBy string) (domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	project.UpdateDescription(description, updatedBy)
	if err := s.projectRepository.Update(ctx, &project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus, updatedBy string) (domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	project.UpdateStatus(status, updatedBy)
	if err := s.projectRepository.Update(ctx, &project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	// Check if project exists
	if _, err := s.projectRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projectRepository.Delete(ctx, id)
}

var _ ports.ProjectService = (*ProjectService)(nil)
