package leave

import (
	"context"
	"testing"

	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeService_CreateLeaveType(t *testing.T) {
	ctx := context.Background()
	svc := NewTypeService(newFakeTypeRepo())

	rate := 1.0
	lt, err := svc.CreateLeaveType(ctx, testTenantID, leave.CreateLeaveTypeRequest{
		Name:            "Earned Leave",
		Code:            "EL",
		Category:        "earned",
		EntitlementDays: 12,
		AccrualType:     "monthly",
		AccrualRate:     &rate,
		CarryForward:    true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, lt.ID)
	assert.True(t, lt.IsEnabled, "new types start enabled")
	assert.True(t, lt.EntitlementDays.Equal(decimal.NewFromInt(12)))
	require.NotNil(t, lt.AccrualRate)
	assert.True(t, lt.AccrualRate.Equal(decimal.NewFromInt(1)))
}

func TestTypeService_CreateLeaveType_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewTypeService(newFakeTypeRepo())

	_, err := svc.CreateLeaveType(ctx, testTenantID, leave.CreateLeaveTypeRequest{
		Code:        "EL",
		Category:    "unknown-category",
		AccrualType: "yearly",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	details := verrs.ToMap()
	assert.Contains(t, details, "leave_type_name")
	assert.Contains(t, details, "category")
}

func TestTypeService_CreateLeaveType_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	svc := NewTypeService(newFakeTypeRepo())

	req := leave.CreateLeaveTypeRequest{
		Name:            "Earned Leave",
		Code:            "EL",
		Category:        "earned",
		EntitlementDays: 12,
		AccrualType:     "yearly",
	}

	_, err := svc.CreateLeaveType(ctx, testTenantID, req)
	require.NoError(t, err)

	_, err = svc.CreateLeaveType(ctx, testTenantID, req)
	assert.ErrorIs(t, err, leave.ErrLeaveTypeCodeExists)
}

func TestTypeService_UpdateAndDisable(t *testing.T) {
	ctx := context.Background()
	svc := NewTypeService(newFakeTypeRepo())

	lt, err := svc.CreateLeaveType(ctx, testTenantID, leave.CreateLeaveTypeRequest{
		Name:            "Casual Leave",
		Code:            "CL",
		Category:        "casual",
		EntitlementDays: 6,
		AccrualType:     "yearly",
	})
	require.NoError(t, err)

	newDays := 8.0
	updated, err := svc.UpdateLeaveType(ctx, testTenantID, leave.UpdateLeaveTypeRequest{
		ID:              lt.ID,
		EntitlementDays: &newDays,
	})
	require.NoError(t, err)
	assert.True(t, updated.EntitlementDays.Equal(decimal.NewFromInt(8)))

	require.NoError(t, svc.SetLeaveTypeEnabled(ctx, testTenantID, lt.ID, false))

	enabled, err := svc.ListLeaveTypes(ctx, testTenantID, true)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	all, err := svc.ListLeaveTypes(ctx, testTenantID, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTypeService_TenantIsolation(t *testing.T) {
	ctx := context.Background()
	svc := NewTypeService(newFakeTypeRepo())

	lt, err := svc.CreateLeaveType(ctx, "other-tenant", leave.CreateLeaveTypeRequest{
		Name:            "Sick Leave",
		Code:            "SL",
		Category:        "sick",
		EntitlementDays: 10,
		AccrualType:     "yearly",
	})
	require.NoError(t, err)

	_, err = svc.GetLeaveType(ctx, testTenantID, lt.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}
