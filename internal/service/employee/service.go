package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
)

type EmployeeService struct {
	employee.EmployeeRepository
	employee.DepartmentRepository
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	departmentRepository employee.DepartmentRepository,
) *EmployeeService {
	return &EmployeeService{
		EmployeeRepository:   employeeRepository,
		DepartmentRepository: departmentRepository,
	}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, tenantID string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	doj, _ := time.Parse("2006-01-02", req.DateOfJoining)

	emp := employee.Employee{
		TenantID:       tenantID,
		EmployeeCode:   req.EmployeeCode,
		FullName:       req.FullName,
		PersonalEmail:  req.PersonalEmail,
		Designation:    req.Designation,
		DepartmentID:   req.DepartmentID,
		EmploymentType: employee.EmploymentType(req.EmploymentType),
		DateOfJoining:  doj,
		IsActive:       true,
	}
	if req.Gender != nil {
		emp.Gender = employee.Gender(*req.Gender)
	}
	if req.ProbationEndDate != nil {
		probationEnd, _ := time.Parse("2006-01-02", *req.ProbationEndDate)
		emp.ProbationEndDate = &probationEnd
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, tenantID, id string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.TenantID != tenantID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context, tenantID string, activeOnly bool) ([]employee.Employee, error) {
	employees, err := s.EmployeeRepository.GetByTenantID(ctx, tenantID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, tenantID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.GetEmployee(ctx, tenantID, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PersonalEmail != nil {
		emp.PersonalEmail = req.PersonalEmail
	}
	if req.Gender != nil {
		emp.Gender = employee.Gender(*req.Gender)
	}
	if req.Designation != nil {
		emp.Designation = req.Designation
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.EmploymentType != nil {
		emp.EmploymentType = employee.EmploymentType(*req.EmploymentType)
	}
	if req.ProbationEndDate != nil {
		probationEnd, _ := time.Parse("2006-01-02", *req.ProbationEndDate)
		emp.ProbationEndDate = &probationEnd
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.EmployeeRepository.GetByID(ctx, emp.ID)
}

// DeactivateEmployee soft-deletes: the record stays for historical analytics
// but drops out of active listings and balance provisioning.
func (s *EmployeeService) DeactivateEmployee(ctx context.Context, tenantID, id string) error {
	if _, err := s.GetEmployee(ctx, tenantID, id); err != nil {
		return err
	}
	return s.EmployeeRepository.Deactivate(ctx, id)
}

func (s *EmployeeService) CreateDepartment(ctx context.Context, tenantID string, req employee.CreateDepartmentRequest) (employee.Department, error) {
	if err := req.Validate(); err != nil {
		return employee.Department{}, err
	}

	dept, err := s.DepartmentRepository.Create(ctx, employee.Department{
		TenantID: tenantID,
		Name:     req.Name,
	})
	if err != nil {
		return employee.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return dept, nil
}

func (s *EmployeeService) ListDepartments(ctx context.Context, tenantID string) ([]employee.Department, error) {
	departments, err := s.DepartmentRepository.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (s *EmployeeService) DeleteDepartment(ctx context.Context, tenantID, id string) error {
	return s.DepartmentRepository.Delete(ctx, id)
}
