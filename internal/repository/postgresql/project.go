package postgresql

import (
	"context"
	"errors"

	"github.com/brightops/peoplehub-backend-go/internal/domain/project"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `
	p.id, p.tenant_id, p.name, p.client_name, p.category, p.description,
	p.initial_notes, p.status, p.project_head_id, p.start_date, p.end_date,
	p.created_by, p.created_at, p.updated_at, e.full_name
`

const projectJoins = `
	FROM projects p
	LEFT JOIN employees e ON e.id = p.project_head_id
`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.TenantID,
		&p.Name,
		&p.ClientName,
		&p.Category,
		&p.Description,
		&p.InitialNotes,
		&p.Status,
		&p.ProjectHeadID,
		&p.StartDate,
		&p.EndDate,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.ProjectHeadName,
	)
	return p, err
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (
			id, tenant_id, name, client_name, category, description,
			initial_notes, status, project_head_id, start_date, end_date,
			created_by, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.TenantID,
		p.Name,
		p.ClientName,
		p.Category,
		p.Description,
		p.InitialNotes,
		p.Status,
		p.ProjectHeadID,
		p.StartDate,
		p.EndDate,
		p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx,
		`SELECT `+projectColumns+projectJoins+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string, status *project.ProjectStatus) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + projectJoins + `
		WHERE p.tenant_id = $1
		  AND ($2::text IS NULL OR p.status = $2)
		ORDER BY p.created_at DESC`

	rows, err := q.Query(ctx, query, tenantID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $2,
		    client_name = $3,
		    category = $4,
		    description = $5,
		    initial_notes = $6,
		    status = $7,
		    project_head_id = $8,
		    start_date = $9,
		    end_date = $10,
		    updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		p.ID,
		p.Name,
		p.ClientName,
		p.Category,
		p.Description,
		p.InitialNotes,
		p.Status,
		p.ProjectHeadID,
		p.StartDate,
		p.EndDate,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}
	return nil
}
