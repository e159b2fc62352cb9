package dto

type TaskItem struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Assignee    *string `json:"assignee,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
	CreatedBy   string  `json:"created_by"`
	UpdatedAt   string  `json:"updated_at"`
	UpdatedBy   string  `json:"updated_by"`
}

type CreateTaskRequest struct {
	ProjectID   string  `json:"project_id" binding:"required,uuid"`
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Assignee    *string `json:"assignee"`
	DueDate     *string `json:"due_date"` // RFC3339
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo in_progress done cancelled"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Assignee    *string `json:"assignee"`
	DueDate     *string `json:"due_date"` // RFC3339
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in_progress done cancelled"`
}

type UpdateTaskPriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=low medium high critical"`
}

type AssignTaskRequest struct {
	Assignee *string `json:"assignee"`
}

type SetTaskDueDateRequest struct {
	DueDate *string `json:"due_date"` // RFC3339
}
