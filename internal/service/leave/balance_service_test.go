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

func newTestBalanceService(t *testing.T) (*BalanceService, *fakeTypeRepo, *fakeBalanceRepo, *fakeEmployeeRepo) {
	t.Helper()
	typeRepo := newFakeTypeRepo()
	balanceRepo := newFakeBalanceRepo()
	empRepo := newFakeEmployeeRepo()
	svc := NewBalanceService(typeRepo, balanceRepo, empRepo)
	return svc, typeRepo, balanceRepo, empRepo
}

func TestBalanceService_InitializeYear(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, balanceRepo, empRepo := newTestBalanceService(t)

	emp, err := empRepo.Create(ctx, employee.Employee{
		TenantID:      testTenantID,
		EmployeeCode:  "ENG-001",
		FullName:      "Priya Nair",
		Gender:        employee.GenderFemale,
		DateOfJoining: time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	})
	require.NoError(t, err)

	lt, err := typeRepo.Create(ctx, leave.LeaveType{
		TenantID:        testTenantID,
		Name:            "Earned Leave",
		Code:            "EL",
		Category:        leave.CategoryEarned,
		EntitlementDays: decimal.NewFromInt(12),
		AccrualType:     leave.AccrualYearly,
		IsEnabled:       true,
	})
	require.NoError(t, err)

	result, err := svc.InitializeYear(ctx, testTenantID, leave.InitializeYearRequest{Year: 2030})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Skipped)

	bal, err := balanceRepo.GetByEmployeeTypeYear(ctx, emp.ID, lt.ID, 2030)
	require.NoError(t, err)
	assert.True(t, bal.EntitledDays.Equal(decimal.NewFromInt(12)))
	assert.True(t, bal.UsedDays.IsZero())
}

func TestBalanceService_InitializeYear_Rerunnable(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, _, empRepo := newTestBalanceService(t)

	_, err := empRepo.Create(ctx, employee.Employee{
		TenantID:      testTenantID,
		EmployeeCode:  "ENG-001",
		FullName:      "Priya Nair",
		DateOfJoining: time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	})
	require.NoError(t, err)

	_, err = typeRepo.Create(ctx, leave.LeaveType{
		TenantID:        testTenantID,
		Name:            "Earned Leave",
		Code:            "EL",
		Category:        leave.CategoryEarned,
		EntitlementDays: decimal.NewFromInt(12),
		AccrualType:     leave.AccrualYearly,
		IsEnabled:       true,
	})
	require.NoError(t, err)

	first, err := svc.InitializeYear(ctx, testTenantID, leave.InitializeYearRequest{Year: 2030})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	second, err := svc.InitializeYear(ctx, testTenantID, leave.InitializeYearRequest{Year: 2030})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Skipped)
}

func TestBalanceService_InitializeYear_GenderFilter(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, balanceRepo, empRepo := newTestBalanceService(t)

	male, err := empRepo.Create(ctx, employee.Employee{
		TenantID:      testTenantID,
		EmployeeCode:  "ENG-001",
		FullName:      "Arun Mehta",
		Gender:        employee.GenderMale,
		DateOfJoining: time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	})
	require.NoError(t, err)

	female := employee.GenderFemale
	lt, err := typeRepo.Create(ctx, leave.LeaveType{
		TenantID:        testTenantID,
		Name:            "Maternity Leave",
		Code:            "ML",
		Category:        leave.CategoryMaternity,
		EntitlementDays: decimal.NewFromInt(180),
		AccrualType:     leave.AccrualYearly,
		GenderSpecific:  &female,
		IsEnabled:       true,
	})
	require.NoError(t, err)

	result, err := svc.InitializeYear(ctx, testTenantID, leave.InitializeYearRequest{Year: 2030})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)

	_, err = balanceRepo.GetByEmployeeTypeYear(ctx, male.ID, lt.ID, 2030)
	assert.ErrorIs(t, err, leave.ErrLeaveBalanceNotFound)
}

func TestBalanceService_InitializeYear_CarryForward(t *testing.T) {
	ctx := context.Background()
	svc, typeRepo, balanceRepo, empRepo := newTestBalanceService(t)

	emp, err := empTestSeed(ctx, empRepo)
	require.NoError(t, err)

	cap := decimal.NewFromInt(5)
	lt, err := typeRepo.Create(ctx, leave.LeaveType{
		TenantID:            testTenantID,
		Name:                "Earned Leave",
		Code:                "EL",
		Category:            leave.CategoryEarned,
		EntitlementDays:     decimal.NewFromInt(12),
		AccrualType:         leave.AccrualYearly,
		CarryForward:        true,
		MaxCarryForwardDays: &cap,
		IsEnabled:           true,
	})
	require.NoError(t, err)

	// Prior year closed with 12 - 4 = 8 available; carry-forward caps at 5.
	_, err = balanceRepo.Create(ctx, leave.LeaveBalance{
		TenantID:     testTenantID,
		EmployeeID:   emp.ID,
		LeaveTypeID:  lt.ID,
		Year:         2029,
		EntitledDays: decimal.NewFromInt(12),
		UsedDays:     decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	_, err = svc.InitializeYear(ctx, testTenantID, leave.InitializeYearRequest{Year: 2030})
	require.NoError(t, err)

	bal, err := balanceRepo.GetByEmployeeTypeYear(ctx, emp.ID, lt.ID, 2030)
	require.NoError(t, err)
	assert.True(t, bal.CarriedForwardDays.Equal(decimal.NewFromInt(5)), "got %s", bal.CarriedForwardDays)
}

func empTestSeed(ctx context.Context, empRepo *fakeEmployeeRepo) (employee.Employee, error) {
	return empRepo.Create(ctx, employee.Employee{
		TenantID:      testTenantID,
		EmployeeCode:  "ENG-002",
		FullName:      "Sana Kapoor",
		DateOfJoining: time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	})
}

func TestBalanceService_Adjust(t *testing.T) {
	ctx := context.Background()
	svc, _, balanceRepo, _ := newTestBalanceService(t)

	bal, err := balanceRepo.Create(ctx, leave.LeaveBalance{
		TenantID:     testTenantID,
		EmployeeID:   "emp-1",
		LeaveTypeID:  "lt-1",
		Year:         2030,
		EntitledDays: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	updated, err := svc.Adjust(ctx, testTenantID, leave.AdjustBalanceRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "lt-1",
		Year:        2030,
		Delta:       -2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, bal.ID, updated.ID)
	assert.True(t, updated.AdjustedDays.Equal(decimal.NewFromFloat(-2.5)))
	assert.True(t, updated.Available().Equal(decimal.NewFromFloat(9.5)))
}

func TestBalanceService_Adjust_WrongTenant(t *testing.T) {
	ctx := context.Background()
	svc, _, balanceRepo, _ := newTestBalanceService(t)

	_, err := balanceRepo.Create(ctx, leave.LeaveBalance{
		TenantID:     "other-tenant",
		EmployeeID:   "emp-1",
		LeaveTypeID:  "lt-1",
		Year:         2030,
		EntitledDays: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	_, err = svc.Adjust(ctx, testTenantID, leave.AdjustBalanceRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "lt-1",
		Year:        2030,
		Delta:       1,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveBalanceNotFound)
}
