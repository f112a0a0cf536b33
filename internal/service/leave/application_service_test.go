package leave

import (
	"context"
	"testing"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantID = "tenant-1"

func newTestApplicationService(t *testing.T) (*ApplicationService, *fakeTypeRepo, *fakeBalanceRepo, *fakeApplicationRepo, *fakeEmployeeRepo) {
	t.Helper()
	typeRepo := newFakeTypeRepo()
	balanceRepo := newFakeBalanceRepo()
	appRepo := newFakeApplicationRepo()
	empRepo := newFakeEmployeeRepo()
	svc := NewApplicationService(nil, typeRepo, balanceRepo, appRepo, empRepo)
	return svc, typeRepo, balanceRepo, appRepo, empRepo
}

func seedEmployee(t *testing.T, empRepo *fakeEmployeeRepo) employee.Employee {
	t.Helper()
	emp, err := empRepo.Create(context.Background(), employee.Employee{
		TenantID:      testTenantID,
		EmployeeCode:  "ENG-001",
		FullName:      "Priya Nair",
		Gender:        employee.GenderFemale,
		DateOfJoining: time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	})
	require.NoError(t, err)
	return emp
}

func seedLeaveType(t *testing.T, typeRepo *fakeTypeRepo) leave.LeaveType {
	t.Helper()
	lt, err := typeRepo.Create(context.Background(), leave.LeaveType{
		TenantID:         testTenantID,
		Name:             "Earned Leave",
		Code:             "EL",
		Category:         leave.CategoryEarned,
		EntitlementDays:  decimal.NewFromInt(12),
		AccrualType:      leave.AccrualYearly,
		RequiresApproval: true,
		IsEnabled:        true,
	})
	require.NoError(t, err)
	return lt
}

func TestApplicationService_Apply_Pending(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, balanceRepo, _, empRepo := newTestApplicationService(t)
	emp := seedEmployee(t, empRepo)
	lt := seedLeaveType(t, typeRepo)

	_, err := balanceRepo.Create(ctx, leave.LeaveBalance{
		TenantID:     testTenantID,
		EmployeeID:   emp.ID,
		LeaveTypeID:  lt.ID,
		Year:         2024,
		EntitledDays: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	result, err := svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)

	app := result.Application
	assert.Equal(t, leave.LeaveStatusPending, app.Status)
	assert.True(t, app.DaysCount.Equal(decimal.NewFromInt(5)))
	assert.False(t, app.IsLOP)
	assert.True(t, app.LOPDays.IsZero())
	assert.Empty(t, result.Warnings)
}

func TestApplicationService_Apply_OverBalanceIsAcceptedWithLOP(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, balanceRepo, _, empRepo := newTestApplicationService(t)
	emp := seedEmployee(t, empRepo)
	lt := seedLeaveType(t, typeRepo)

	_, err := balanceRepo.Create(ctx, leave.LeaveBalance{
		TenantID:     testTenantID,
		EmployeeID:   emp.ID,
		LeaveTypeID:  lt.ID,
		Year:         2024,
		EntitledDays: decimal.NewFromInt(12),
		UsedDays:     decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	result, err := svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)

	app := result.Application
	assert.Equal(t, leave.LeaveStatusPending, app.Status)
	assert.True(t, app.IsLOP)
	assert.True(t, app.LOPDays.Equal(decimal.NewFromInt(3)))
}

func TestApplicationService_Apply_NoBalanceRowUsesEntitlement(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, _, _, empRepo := newTestApplicationService(t)
	emp := seedEmployee(t, empRepo)
	lt := seedLeaveType(t, typeRepo)

	result, err := svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)
	assert.False(t, result.Application.IsLOP)
}

func TestApplicationService_Apply_Overlap(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, _, _, empRepo := newTestApplicationService(t)
	emp := seedEmployee(t, empRepo)
	lt := seedLeaveType(t, typeRepo)

	_, err := svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-05",
		EndDate:     "2024-06-10",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestApplicationService_Apply_WrongTenantType(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, _, _, empRepo := newTestApplicationService(t)
	emp := seedEmployee(t, empRepo)

	lt, err := typeRepo.Create(ctx, leave.LeaveType{
		TenantID:        "other-tenant",
		Name:            "Casual Leave",
		Code:            "CL",
		Category:        leave.CategoryCasual,
		EntitlementDays: decimal.NewFromInt(6),
		AccrualType:     leave.AccrualYearly,
		IsEnabled:       true,
	})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}

func TestApplicationService_Reject(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, _, _, empRepo := newTestApplicationService(t)
	emp := seedEmployee(t, empRepo)
	lt := seedLeaveType(t, typeRepo)

	result, err := svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)
	app := result.Application

	rejected, err := svc.Reject(ctx, testTenantID, "approver-1", app.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusRejected, rejected.Status)

	// A second decision on the same application conflicts.
	_, err = svc.Reject(ctx, testTenantID, "approver-1", app.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestApplicationService_Cancel(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, _, _, empRepo := newTestApplicationService(t)
	emp := seedEmployee(t, empRepo)
	lt := seedLeaveType(t, typeRepo)

	result, err := svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)
	app := result.Application

	// Only the owner can cancel.
	_, err = svc.Cancel(ctx, testTenantID, "someone-else", app.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveApplicationNotFound)

	cancelled, err := svc.Cancel(ctx, testTenantID, emp.ID, app.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusCancelled, cancelled.Status)
}

func TestApplicationService_CancelledLeavesNoOverlap(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, _, _, empRepo := newTestApplicationService(t)
	emp := seedEmployee(t, empRepo)
	lt := seedLeaveType(t, typeRepo)

	result, err := svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, testTenantID, emp.ID, result.Application.ID)
	require.NoError(t, err)

	// Re-applying over the cancelled range is allowed.
	_, err = svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	assert.NoError(t, err)
}

func TestApplicationService_Apply_ShortNoticeWarning(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, _, _, empRepo := newTestApplicationService(t)
	emp := seedEmployee(t, empRepo)

	notice := 7
	lt, err := typeRepo.Create(ctx, leave.LeaveType{
		TenantID:          testTenantID,
		Name:              "Earned Leave",
		Code:              "EL",
		Category:          leave.CategoryEarned,
		EntitlementDays:   decimal.NewFromInt(12),
		AccrualType:       leave.AccrualYearly,
		AdvanceNoticeDays: &notice,
		RequiresApproval:  true,
		IsEnabled:         true,
	})
	require.NoError(t, err)

	// A start date in the past can never satisfy the notice window.
	result, err := svc.Apply(ctx, testTenantID, emp.ID, leave.ApplyLeaveRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveStatusPending, result.Application.Status)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "advance notice")
}
