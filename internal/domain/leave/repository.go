package leave

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	GetByTenantID(ctx context.Context, tenantID string, enabledOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	GetByTenantAndYear(ctx context.Context, tenantID string, year int) ([]LeaveBalance, error)
	// GetForUpdate locks the balance row for the duration of the surrounding
	// transaction, serializing concurrent approvals per (employee, type, year).
	GetForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	AddUsedDays(ctx context.Context, id string, days decimal.Decimal) error
	Adjust(ctx context.Context, id string, delta decimal.Decimal) error
}

// LeaveApplicationRepository - interface for leave_applications table
type LeaveApplicationRepository interface {
	Create(ctx context.Context, app LeaveApplication) (LeaveApplication, error)
	GetByID(ctx context.Context, id string) (LeaveApplication, error)
	GetByEmployeeID(ctx context.Context, employeeID string, status *LeaveStatus) ([]LeaveApplication, error)
	GetByTenantAndYear(ctx context.Context, tenantID string, year int) ([]LeaveApplication, error)
	GetPendingByTenant(ctx context.Context, tenantID string) ([]LeaveApplication, error)
	CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus, approvedBy *string) error
}
