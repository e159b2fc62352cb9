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
	getProjectByIDQuery = `
SELECT id, name, description, status, owner_id, created_at, created_by, updated_at, updated_by
FROM project
WHERE id = ?;
`

	insertProjectQuery = `
INSERT INTO project (id, name, description, status, owner_id, created_at, created_by, updated_at, updated_by)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`

	updateProjectQuery = `
UPDATE project
SET name = ?, description = ?, status = ?, updated_at = ?, updated_by = ?
WHERE id = ?;
`

	deleteProjectQuery = `DELETE FROM project WHERE id = ?;`
)

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	OwnerID     string         `db:"owner_id"`
	CreatedAt   time.Time      `db:"created_at"`
	CreatedBy   string         `db:"created_by"`
	UpdatedAt   time.Time      `db:"updated_at"`
	UpdatedBy   string         `db:"updated_by"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, getProjectByIDQuery, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, &domain.DatabaseError{Err: err}
	}

	return mapProjectRowToDomainProject(row)
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.db.ExecContext(ctx, insertProjectQuery,
		project.ID.String(),
		project.Name,
		project.Description,
		string(project.Status),
		project.OwnerID.String(),
		project.CreatedAt,
		project.CreatedBy,
		project.UpdatedAt,
		project.UpdatedBy,
	)
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	result, err := r.db.ExecContext(ctx, updateProjectQuery,
		project.Name,
		project.Description,
		string(project.Status),
		project.UpdatedAt,
		project.UpdatedBy,
		project.ID.String(),
	)
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, deleteProjectQuery, id.String())
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &domain.DatabaseError{Err: err}
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func mapProjectRowToDomainProject(row projectRow) (domain.Project, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Project{}, &domain.DatabaseError{Err: err}
	}

	ownerID, err := uuid.Parse(row.OwnerID)
	if err != nil {
		return domain.Project{}, &domain.DatabaseError{Err: err}
	}

	status, err := domain.ParseProjectStatus(row.Status)
	if err != nil {
		return domain.Project{}, &domain.DatabaseError{Err: err}
	}

	project := domain.Project{
		ID:        id,
		Name:      row.Name,
		Status:    status,
		OwnerID:   ownerID,
		CreatedAt: row.CreatedAt,
		CreatedBy: row.CreatedBy,
		UpdatedAt: row.UpdatedAt,
		UpdatedBy: row.UpdatedBy,
	}

	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}

	return project, nil
}
