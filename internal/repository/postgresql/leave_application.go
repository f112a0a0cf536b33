package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveApplicationRepositoryImpl struct {
	db *database.DB
}

func NewLeaveApplicationRepository(db *database.DB) leave.LeaveApplicationRepository {
	return &leaveApplicationRepositoryImpl{db: db}
}

const leaveApplicationColumns = `
	la.id, la.tenant_id, la.employee_id, la.leave_type_id,
	la.start_date, la.end_date, la.days_count, la.is_lop, la.lop_days,
	la.reason, la.attachment_url, la.status, la.current_approver_role,
	la.approved_by, la.approved_at, la.created_at, la.updated_at,
	lt.name, lt.code, e.full_name, d.name
`

const leaveApplicationJoins = `
	FROM leave_applications la
	JOIN leave_types lt ON lt.id = la.leave_type_id
	JOIN employees e ON e.id = la.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanLeaveApplication(row pgx.Row) (leave.LeaveApplication, error) {
	var a leave.LeaveApplication
	err := row.Scan(
		&a.ID,
		&a.TenantID,
		&a.EmployeeID,
		&a.LeaveTypeID,
		&a.StartDate,
		&a.EndDate,
		&a.DaysCount,
		&a.IsLOP,
		&a.LOPDays,
		&a.Reason,
		&a.AttachmentURL,
		&a.Status,
		&a.CurrentApproverRole,
		&a.ApprovedBy,
		&a.ApprovedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.LeaveTypeName,
		&a.LeaveTypeCode,
		&a.EmployeeName,
		&a.DepartmentName,
	)
	return a, err
}

func collectLeaveApplications(rows pgx.Rows) ([]leave.LeaveApplication, error) {
	var apps []leave.LeaveApplication
	for rows.Next() {
		a, err := scanLeaveApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *leaveApplicationRepositoryImpl) Create(ctx context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	if app.ID == "" {
		app.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_applications (
			id, tenant_id, employee_id, leave_type_id,
			start_date, end_date, days_count, is_lop, lop_days,
			reason, attachment_url, status, current_approver_role,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11, $12, $13,
			NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.ID,
		app.TenantID,
		app.EmployeeID,
		app.LeaveTypeID,
		app.StartDate,
		app.EndDate,
		app.DaysCount,
		app.IsLOP,
		app.LOPDays,
		app.Reason,
		app.AttachmentURL,
		app.Status,
		app.CurrentApproverRole,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return leave.LeaveApplication{}, err
	}

	return app, nil
}

func (r *leaveApplicationRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanLeaveApplication(q.QueryRow(ctx,
		`SELECT `+leaveApplicationColumns+leaveApplicationJoins+` WHERE la.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveApplication{}, leave.ErrLeaveApplicationNotFound
		}
		return leave.LeaveApplication{}, err
	}

	return a, nil
}

func (r *leaveApplicationRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, status *leave.LeaveStatus) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveApplicationColumns + leaveApplicationJoins + `
		WHERE la.employee_id = $1
		  AND ($2::text IS NULL OR la.status = $2)
		ORDER BY la.start_date DESC`

	rows, err := q.Query(ctx, query, employeeID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveApplications(rows)
}

func (r *leaveApplicationRepositoryImpl) GetByTenantAndYear(ctx context.Context, tenantID string, year int) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveApplicationColumns + leaveApplicationJoins + `
		WHERE la.tenant_id = $1
		  AND EXTRACT(YEAR FROM la.start_date) = $2
		ORDER BY la.start_date DESC`

	rows, err := q.Query(ctx, query, tenantID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveApplications(rows)
}

func (r *leaveApplicationRepositoryImpl) GetPendingByTenant(ctx context.Context, tenantID string) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveApplicationColumns + leaveApplicationJoins + `
		WHERE la.tenant_id = $1 AND la.status = 'pending'
		ORDER BY la.created_at ASC`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveApplications(rows)
}

// CheckOverlapping reports whether the employee already has a pending or
// approved application whose date range intersects [startDate, endDate].
func (r *leaveApplicationRepositoryImpl) CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_applications
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *leaveApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, approvedBy *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $2,
		    approved_by = COALESCE($3, approved_by),
		    approved_at = CASE WHEN $3::text IS NOT NULL THEN NOW() ELSE approved_at END,
		    updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, approvedBy)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveApplicationNotFound
	}
	return nil
}
