package employee

import (
	"context"
)

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByTenantID(ctx context.Context, tenantID string, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Deactivate(ctx context.Context, id string) error
}

// DepartmentRepository - interface for departments table
type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Department, error)
	Delete(ctx context.Context, id string) error
}
