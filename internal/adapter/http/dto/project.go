package dto

type ProjectItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	OwnerID     string  `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
	CreatedBy   string  `json:"created_by"`
	UpdatedAt   string  `json:"updated_at"`
	UpdatedBy   string  `json:"updated_by"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	OwnerID     string  `json:"owner_id" binding:"required,uuid"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Status      *string `json:"status" binding:"omitempty,oneof=active archived completed"`
}

type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active archived completed"`
}
