package project

import "context"

// ProjectRepository - interface for projects table
type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	GetByTenantID(ctx context.Context, tenantID string, status *ProjectStatus) ([]Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error
}
