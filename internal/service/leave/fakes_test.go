package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes. They mirror the PostgreSQL implementations'
// error contracts so services under test see the same sentinel errors.

type fakeTypeRepo struct {
	types map[string]leave.LeaveType
	next  int
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{types: make(map[string]leave.LeaveType)}
}

func (f *fakeTypeRepo) Create(_ context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	for _, existing := range f.types {
		if existing.TenantID == lt.TenantID && existing.Code == lt.Code {
			return leave.LeaveType{}, leave.ErrLeaveTypeCodeExists
		}
	}
	f.next++
	lt.ID = fmt.Sprintf("lt-%d", f.next)
	f.types[lt.ID] = lt
	return lt, nil
}

func (f *fakeTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	lt, ok := f.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeTypeRepo) GetByTenantID(_ context.Context, tenantID string, enabledOnly bool) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for i := 1; i <= f.next; i++ {
		lt, ok := f.types[fmt.Sprintf("lt-%d", i)]
		if !ok || lt.TenantID != tenantID {
			continue
		}
		if enabledOnly && !lt.IsEnabled {
			continue
		}
		out = append(out, lt)
	}
	return out, nil
}

func (f *fakeTypeRepo) Update(_ context.Context, lt leave.LeaveType) error {
	if _, ok := f.types[lt.ID]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	f.types[lt.ID] = lt
	return nil
}

func (f *fakeTypeRepo) SetEnabled(_ context.Context, id string, enabled bool) error {
	lt, ok := f.types[id]
	if !ok {
		return leave.ErrLeaveTypeNotFound
	}
	lt.IsEnabled = enabled
	f.types[id] = lt
	return nil
}

type fakeBalanceRepo struct {
	balances map[string]leave.LeaveBalance
	next     int
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]leave.LeaveBalance)}
}

func (f *fakeBalanceRepo) Create(_ context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	f.next++
	b.ID = fmt.Sprintf("bal-%d", f.next)
	f.balances[b.ID] = b
	return b, nil
}

func (f *fakeBalanceRepo) GetByEmployeeTypeYear(_ context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	for _, b := range f.balances {
		if b.EmployeeID == employeeID && b.LeaveTypeID == leaveTypeID && b.Year == year {
			return b, nil
		}
	}
	return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
}

func (f *fakeBalanceRepo) GetByEmployeeAndYear(_ context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for _, b := range f.balances {
		if b.EmployeeID == employeeID && b.Year == year {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) GetByTenantAndYear(_ context.Context, tenantID string, year int) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for _, b := range f.balances {
		if b.TenantID == tenantID && b.Year == year {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) GetForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	return f.GetByEmployeeTypeYear(ctx, employeeID, leaveTypeID, year)
}

func (f *fakeBalanceRepo) AddUsedDays(_ context.Context, id string, days decimal.Decimal) error {
	b, ok := f.balances[id]
	if !ok {
		return leave.ErrLeaveBalanceNotFound
	}
	b.UsedDays = b.UsedDays.Add(days)
	f.balances[id] = b
	return nil
}

func (f *fakeBalanceRepo) Adjust(_ context.Context, id string, delta decimal.Decimal) error {
	b, ok := f.balances[id]
	if !ok {
		return leave.ErrLeaveBalanceNotFound
	}
	b.AdjustedDays = b.AdjustedDays.Add(delta)
	f.balances[id] = b
	return nil
}

type fakeApplicationRepo struct {
	apps map[string]leave.LeaveApplication
	next int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]leave.LeaveApplication)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	f.next++
	app.ID = fmt.Sprintf("app-%d", f.next)
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id string) (leave.LeaveApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return leave.LeaveApplication{}, leave.ErrLeaveApplicationNotFound
	}
	return app, nil
}

func (f *fakeApplicationRepo) GetByEmployeeID(_ context.Context, employeeID string, status *leave.LeaveStatus) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	for _, app := range f.apps {
		if app.EmployeeID != employeeID {
			continue
		}
		if status != nil && app.Status != *status {
			continue
		}
		out = append(out, app)
	}
	return out, nil
}

func (f *fakeApplicationRepo) GetByTenantAndYear(_ context.Context, tenantID string, year int) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	for _, app := range f.apps {
		if app.TenantID == tenantID && app.StartDate.Year() == year {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) GetPendingByTenant(_ context.Context, tenantID string) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	for _, app := range f.apps {
		if app.TenantID == tenantID && app.Status == leave.LeaveStatusPending {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) CheckOverlapping(_ context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	for _, app := range f.apps {
		if app.EmployeeID != employeeID {
			continue
		}
		if app.Status != leave.LeaveStatusPending && app.Status != leave.LeaveStatusApproved {
			continue
		}
		if !app.StartDate.After(endDate) && !app.EndDate.Before(startDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status leave.LeaveStatus, approvedBy *string) error {
	app, ok := f.apps[id]
	if !ok {
		return leave.ErrLeaveApplicationNotFound
	}
	app.Status = status
	if approvedBy != nil {
		app.ApprovedBy = approvedBy
		now := time.Now()
		app.ApprovedAt = &now
	}
	f.apps[id] = app
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	next      int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.next++
	emp.ID = fmt.Sprintf("emp-%d", f.next)
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByTenantID(_ context.Context, tenantID string, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for i := 1; i <= f.next; i++ {
		emp, ok := f.employees[fmt.Sprintf("emp-%d", i)]
		if !ok || emp.TenantID != tenantID {
			continue
		}
		if activeOnly && !emp.IsActive {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, id string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = false
	f.employees[id] = emp
	return nil
}
