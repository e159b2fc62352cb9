package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tracker/internal/core/domain"
	"tracker/internal/core/ports"
)

const (
	getTaskByIDQuery = `
SELECT id, project_id, title, description, status, priority, assignee, due_date, created_at, created_by, updated_at, updated_by
FROM task
WHERE id = ?;
`

	getTasksByProjectIDQuery = `
SELECT id, project_id, title, description, status, priority, assignee, due_date, created_at, created_by, updated_at, updated_by
FROM task
WHERE project_id = ?
ORDER BY created_at DESC;
`

	insertTaskQuery = `
INSERT INTO task (id, project_id, title, description, status, priority, assignee, due_date, created_at, created_by, updated_at, updated_by)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

	updateTaskQuery = `
UPDATE task
SET title = ?, description = ?, status = ?, priority = ?, assignee = ?, due_date = ?, updated_at = ?, updated_by = ?
WHERE id = ?;
`

	deleteTaskQuery = `DELETE FROM task WHERE id = ?;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	ProjectID   string         `db:"project_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	Assignee    sql.NullString `db:"assignee"`
	DueDate     sql.NullTime   `db:"due_date"`
	CreatedAt   time.Time      `db:"created_at"`
	CreatedBy   string         `db:"created_by"`
	UpdatedAt   time.Time      `db:"updated_at"`
	UpdatedBy   string         `db:"updated_by"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskByIDQuery, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, &domain.DatabaseError{Err: err}
	}

	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, getTasksByProjectIDQuery, projectID.String()); err != nil {
		return nil, &domain.DatabaseError{Err: err}
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.ID.String(),
		task.ProjectID.String(),
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.Assignee,
		task.DueDate,
		task.CreatedAt,
		task.CreatedBy,
		task.UpdatedAt,
		task.UpdatedBy,
	)
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	result, err := r.db.ExecContext(ctx, updateTaskQuery,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.Assignee,
		task.DueDate,
		task.UpdatedAt,
		task.UpdatedBy,
		task.ID.String(),
	)
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id.String())
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Task{}, &domain.DatabaseError{Err: err}
	}

	projectID, err := uuid.Parse(row.ProjectID)
	if err != nil {
		return domain.Task{}, &domain.DatabaseError{Err: err}
	}

	status, err := domain.ParseTaskStatus(row.Status)
	if err != nil {
		return domain.Task{}, &domain.DatabaseError{Err: err}
	}

	priority, err := domain.ParseTaskPriority(row.Priority)
	if err != nil {
		return domain.Task{}, &domain.DatabaseError{Err: err}
	}

	task := domain.Task{
		ID:        id,
		ProjectID: projectID,
		Title:     row.Title,
		Status:    status,
		Priority:  priority,
		CreatedAt: row.CreatedAt,
		CreatedBy: row.CreatedBy,
		UpdatedAt: row.UpdatedAt,
		UpdatedBy: row.UpdatedBy,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.Assignee.Valid {
		value := row.Assignee.String
		task.Assignee = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task, nil
}
