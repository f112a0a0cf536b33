package postgresql

import (
	"context"
	"errors"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, tenant_id, department_id, employee_code, full_name, personal_email,
			gender, designation, employment_type, date_of_joining, probation_end_date,
			is_active, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			TRUE, NOW(), NOW()
		)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.TenantID,
		emp.DepartmentID,
		emp.EmployeeCode,
		emp.FullName,
		emp.PersonalEmail,
		emp.Gender,
		emp.Designation,
		emp.EmploymentType,
		emp.DateOfJoining,
		emp.ProbationEndDate,
	).Scan(&emp.ID, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.tenant_id, e.department_id, e.employee_code, e.full_name, e.personal_email,
			   COALESCE(e.gender, ''), e.designation, e.employment_type, e.date_of_joining,
			   e.probation_end_date, e.is_active, e.created_at, e.updated_at, d.name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.TenantID,
		&emp.DepartmentID,
		&emp.EmployeeCode,
		&emp.FullName,
		&emp.PersonalEmail,
		&emp.Gender,
		&emp.Designation,
		&emp.EmploymentType,
		&emp.DateOfJoining,
		&emp.ProbationEndDate,
		&emp.IsActive,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.tenant_id, e.department_id, e.employee_code, e.full_name, e.personal_email,
			   COALESCE(e.gender, ''), e.designation, e.employment_type, e.date_of_joining,
			   e.probation_end_date, e.is_active, e.created_at, e.updated_at, d.name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.tenant_id = $1 AND ($2 = FALSE OR e.is_active = TRUE)
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, tenantID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.TenantID,
			&emp.DepartmentID,
			&emp.EmployeeCode,
			&emp.FullName,
			&emp.PersonalEmail,
			&emp.Gender,
			&emp.Designation,
			&emp.EmploymentType,
			&emp.DateOfJoining,
			&emp.ProbationEndDate,
			&emp.IsActive,
			&emp.CreatedAt,
			&emp.UpdatedAt,
			&emp.DepartmentName,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET department_id = $2, full_name = $3, personal_email = $4, gender = NULLIF($5, ''),
			designation = $6, employment_type = $7, probation_end_date = $8, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		emp.ID,
		emp.DepartmentID,
		emp.FullName,
		emp.PersonalEmail,
		emp.Gender,
		emp.Designation,
		emp.EmploymentType,
		emp.ProbationEndDate,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) employee.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, dept employee.Department) (employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, tenant_id, name, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dept.TenantID, dept.Name).
		Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return employee.Department{}, err
	}

	return dept, nil
}

func (r *departmentRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, created_at, updated_at
		FROM departments
		WHERE tenant_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []employee.Department
	for rows.Next() {
		var dept employee.Department
		if err := rows.Scan(&dept.ID, &dept.TenantID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	return departments, rows.Err()
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrDepartmentNotFound
	}
	return nil
}
