package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"tracker/internal/adapter/http/dto"
	"tracker/internal/core/domain"
)

var ErrInvalidProjectPayload = errors.New("invalid project payload")

func BuildCreateProjectInput(req dto.CreateProjectRequest, createdBy string) (domain.CreateProjectInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	return domain.CreateProjectInput{
		Name:        name,
		Description: req.Description,
		OwnerID:     ownerID,
		CreatedBy:   createdBy,
	}, nil
}

// ApplyProjectUpdate applies the fields present in the payload to the
// project through its mutators. A JSON null description clears it.
func ApplyProjectUpdate(project *domain.Project, req dto.UpdateProjectRequest, raw map[string]json.RawMessage, updatedBy string) error {
	if !hasProjectUpdateFields(raw) {
		return ErrInvalidProjectPayload
	}

	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return ErrInvalidProjectPayload
		}
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return ErrInvalidProjectPayload
		}
		project.UpdateName(name, updatedBy)
	}

	if hasJSONField(raw, "description") {
		if !isJSONNull(raw["description"]) && req.Description == nil {
			return ErrInvalidProjectPayload
		}
		project.UpdateDescription(req.Description, updatedBy)
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return ErrInvalidProjectPayload
		}
		status, err := domain.ParseProjectStatus(*req.Status)
		if err != nil {
			return ErrInvalidProjectPayload
		}
		project.UpdateStatus(status, updatedBy)
	}

	return nil
}

func hasProjectUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status")
}
