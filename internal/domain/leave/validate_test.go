package leave

import (
	"testing"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:            "emp-1",
		TenantID:      "tenant-1",
		FullName:      "Priya Nair",
		Gender:        employee.GenderFemale,
		DateOfJoining: date(2022, time.March, 1),
		IsActive:      true,
	}
}

func testLeaveType() *LeaveType {
	return &LeaveType{
		ID:              "lt-1",
		TenantID:        "tenant-1",
		Name:            "Earned Leave",
		Code:            "EL",
		Category:        CategoryEarned,
		EntitlementDays: decimal.NewFromInt(12),
		AccrualType:     AccrualYearly,
		IsEnabled:       true,
	}
}

func testBalance(entitled, used int64) *LeaveBalance {
	return &LeaveBalance{
		ID:           "bal-1",
		EmployeeID:   "emp-1",
		LeaveTypeID:  "lt-1",
		Year:         2024,
		EntitledDays: decimal.NewFromInt(entitled),
		UsedDays:     decimal.NewFromInt(used),
	}
}

func TestValidateAndCompute_WithinBalance(t *testing.T) {
	comp, err := ValidateAndCompute(testEmployee(), testLeaveType(), testBalance(12, 0),
		date(2024, time.June, 3), date(2024, time.June, 7))
	require.NoError(t, err)

	assert.True(t, comp.DaysCount.Equal(decimal.NewFromInt(5)))
	assert.False(t, comp.IsOverBalance)
	assert.True(t, comp.LOPDays.IsZero())
	assert.True(t, comp.Deduction().Equal(decimal.NewFromInt(5)))
}

func TestValidateAndCompute_OverBalanceBecomesLOP(t *testing.T) {
	// 12 entitled, 10 used: 2 available. A 5-day request is accepted with
	// 3 LOP days, not rejected.
	comp, err := ValidateAndCompute(testEmployee(), testLeaveType(), testBalance(12, 10),
		date(2024, time.June, 3), date(2024, time.June, 7))
	require.NoError(t, err)

	assert.True(t, comp.IsOverBalance)
	assert.True(t, comp.DaysCount.Equal(decimal.NewFromInt(5)))
	assert.True(t, comp.LOPDays.Equal(decimal.NewFromInt(3)))
	assert.True(t, comp.Deduction().Equal(decimal.NewFromInt(2)))
}

func TestValidateAndCompute_NegativeBalanceClampsLOP(t *testing.T) {
	comp, err := ValidateAndCompute(testEmployee(), testLeaveType(), testBalance(2, 10),
		date(2024, time.June, 3), date(2024, time.June, 5))
	require.NoError(t, err)

	// Available is -8; LOP is clamped to the request size and the deduction
	// to zero.
	assert.True(t, comp.LOPDays.Equal(decimal.NewFromInt(3)))
	assert.True(t, comp.Deduction().IsZero())
}

func TestValidateAndCompute_WeekendsCountAsLeaveDays(t *testing.T) {
	// Fri Jun 7 through Mon Jun 10 2024 spans a weekend: 4 calendar days.
	comp, err := ValidateAndCompute(testEmployee(), testLeaveType(), testBalance(12, 0),
		date(2024, time.June, 7), date(2024, time.June, 10))
	require.NoError(t, err)

	assert.True(t, comp.DaysCount.Equal(decimal.NewFromInt(4)))
}

func TestValidateAndCompute_NoBalanceRowFallsBackToEntitlement(t *testing.T) {
	comp, err := ValidateAndCompute(testEmployee(), testLeaveType(), nil,
		date(2024, time.June, 3), date(2024, time.June, 7))
	require.NoError(t, err)

	assert.True(t, comp.AvailableBalance.Equal(decimal.NewFromInt(12)))
	assert.False(t, comp.IsOverBalance)
}

func TestValidateAndCompute_GenderRestriction(t *testing.T) {
	lt := testLeaveType()
	male := employee.GenderMale
	lt.GenderSpecific = &male

	_, err := ValidateAndCompute(testEmployee(), lt, nil,
		date(2024, time.June, 3), date(2024, time.June, 7))
	assert.ErrorIs(t, err, ErrIneligibleLeaveType)
}

func TestValidateAndCompute_UnknownGenderFailsOpen(t *testing.T) {
	lt := testLeaveType()
	female := employee.GenderFemale
	lt.GenderSpecific = &female

	emp := testEmployee()
	emp.Gender = ""

	_, err := ValidateAndCompute(emp, lt, nil,
		date(2024, time.June, 3), date(2024, time.June, 7))
	assert.NoError(t, err)
}

func TestValidateAndCompute_DisabledType(t *testing.T) {
	lt := testLeaveType()
	lt.IsEnabled = false

	_, err := ValidateAndCompute(testEmployee(), lt, nil,
		date(2024, time.June, 3), date(2024, time.June, 7))
	assert.ErrorIs(t, err, ErrIneligibleLeaveType)
}

func TestValidateAndCompute_ProbationGate(t *testing.T) {
	lt := testLeaveType()
	lt.PostProbationOnly = true

	emp := testEmployee()
	probationEnd := date(2024, time.September, 1)
	emp.ProbationEndDate = &probationEnd

	_, err := ValidateAndCompute(emp, lt, nil,
		date(2024, time.June, 3), date(2024, time.June, 7))
	assert.ErrorIs(t, err, ErrIneligibleLeaveType)

	// Starting on the probation end date itself is allowed.
	_, err = ValidateAndCompute(emp, lt, nil,
		date(2024, time.September, 1), date(2024, time.September, 2))
	assert.NoError(t, err)
}

func TestValidateAndCompute_InvalidDateRange(t *testing.T) {
	_, err := ValidateAndCompute(testEmployee(), testLeaveType(), nil,
		date(2024, time.June, 7), date(2024, time.June, 3))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestValidateAndCompute_MissingFields(t *testing.T) {
	_, err := ValidateAndCompute(testEmployee(), nil,
		nil, date(2024, time.June, 3), date(2024, time.June, 7))
	assert.ErrorIs(t, err, ErrMissingRequiredFields)

	_, err = ValidateAndCompute(testEmployee(), testLeaveType(), nil,
		time.Time{}, date(2024, time.June, 7))
	assert.ErrorIs(t, err, ErrMissingRequiredFields)
}

func TestValidateAndCompute_MedicalProofThreshold(t *testing.T) {
	lt := testLeaveType()
	threshold := 3
	lt.MedicalProofRequiredAfterDays = &threshold

	comp, err := ValidateAndCompute(testEmployee(), lt, testBalance(12, 0),
		date(2024, time.June, 3), date(2024, time.June, 7))
	require.NoError(t, err)
	assert.True(t, comp.MedicalProofRequired)

	comp, err = ValidateAndCompute(testEmployee(), lt, testBalance(12, 0),
		date(2024, time.June, 3), date(2024, time.June, 5))
	require.NoError(t, err)
	assert.False(t, comp.MedicalProofRequired)
}

func TestValidateAndCompute_YearlyCapFlag(t *testing.T) {
	lt := testLeaveType()
	limit := 4
	lt.MaxDaysPerYear = &limit

	comp, err := ValidateAndCompute(testEmployee(), lt, testBalance(12, 0),
		date(2024, time.June, 3), date(2024, time.June, 7))
	require.NoError(t, err)
	assert.True(t, comp.ExceedsMaxPerYear)

	comp, err = ValidateAndCompute(testEmployee(), lt, testBalance(12, 0),
		date(2024, time.June, 3), date(2024, time.June, 6))
	require.NoError(t, err)
	assert.False(t, comp.ExceedsMaxPerYear)
}

func TestNoticeShortfall(t *testing.T) {
	lt := testLeaveType()
	notice := 7
	lt.AdvanceNoticeDays = &notice

	appliedAt := date(2024, time.June, 1)

	assert.Equal(t, 0, NoticeShortfall(lt, appliedAt, date(2024, time.June, 10)))
	assert.Equal(t, 4, NoticeShortfall(lt, appliedAt, date(2024, time.June, 4)))
	assert.Equal(t, 0, NoticeShortfall(testLeaveType(), appliedAt, date(2024, time.June, 2)))
	assert.Equal(t, 0, NoticeShortfall(nil, appliedAt, date(2024, time.June, 2)))
}
