package leave

import (
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Computation is the result of validating a leave request against the
// employee's balance. Over-balance requests are accepted, not rejected:
// the overflow is priced as LOP (loss of pay) days.
type Computation struct {
	DaysCount        decimal.Decimal
	AvailableBalance decimal.Decimal
	IsOverBalance    bool
	LOPDays          decimal.Decimal

	// MedicalProofRequired is set when the leave type demands an attachment
	// beyond a configured day threshold. Informational; never blocks.
	MedicalProofRequired bool

	// ExceedsMaxPerYear is set when the request alone is longer than the
	// type's yearly cap. Informational; never blocks.
	ExceedsMaxPerYear bool
}

// ValidateAndCompute checks eligibility for a requested date range and
// computes the day count and LOP split. It is pure: no clocks, no stores.
// bal may be nil when no balance row exists yet for the year, in which case
// the leave type's base entitlement is used as the available balance.
//
// The day count is the inclusive calendar-day span. Weekends inside the
// range consume balance even though the attendance calendar treats them as
// non-working; the two calendars are intentionally separate.
func ValidateAndCompute(emp employee.Employee, lt *LeaveType, bal *LeaveBalance, startDate, endDate time.Time) (Computation, error) {
	if lt == nil || startDate.IsZero() || endDate.IsZero() {
		return Computation{}, ErrMissingRequiredFields
	}
	if !lt.IsEnabled {
		return Computation{}, ErrIneligibleLeaveType
	}
	if !lt.IsApplicableTo(emp.Gender) {
		return Computation{}, ErrIneligibleLeaveType
	}
	if lt.PostProbationOnly && !isPastProbation(emp, startDate) {
		return Computation{}, ErrIneligibleLeaveType
	}
	if startDate.After(endDate) {
		return Computation{}, ErrInvalidDateRange
	}

	days := int(endDate.Sub(startDate).Hours()/24) + 1
	daysCount := decimal.NewFromInt(int64(days))

	available := lt.EntitlementDays
	if bal != nil {
		available = bal.Available()
	}

	comp := Computation{
		DaysCount:        daysCount,
		AvailableBalance: available,
		LOPDays:          decimal.Zero,
	}

	if daysCount.GreaterThan(available) {
		comp.IsOverBalance = true
		lop := daysCount.Sub(available)
		if lop.IsNegative() {
			lop = decimal.Zero
		}
		// A transiently negative balance must not push LOP past the request.
		if lop.GreaterThan(daysCount) {
			lop = daysCount
		}
		comp.LOPDays = lop
	}

	if lt.MedicalProofRequiredAfterDays != nil && days > *lt.MedicalProofRequiredAfterDays {
		comp.MedicalProofRequired = true
	}
	if lt.MaxDaysPerYear != nil && days > *lt.MaxDaysPerYear {
		comp.ExceedsMaxPerYear = true
	}

	return comp, nil
}

// NoticeShortfall returns how many days short of the type's advance-notice
// requirement an application filed at appliedAt for startDate is, or 0 when
// the requirement is met or the type has none. Informational; never blocks.
func NoticeShortfall(lt *LeaveType, appliedAt, startDate time.Time) int {
	if lt == nil || lt.AdvanceNoticeDays == nil {
		return 0
	}
	notice := int(startDate.Sub(appliedAt).Hours() / 24)
	if notice >= *lt.AdvanceNoticeDays {
		return 0
	}
	return *lt.AdvanceNoticeDays - notice
}

// Deduction returns the number of days approval should add to used_days:
// the full request when it fits, otherwise everything the balance can cover.
// LOP days are recorded on the application and never touch the balance.
func (c Computation) Deduction() decimal.Decimal {
	if !c.IsOverBalance {
		return c.DaysCount
	}
	if c.AvailableBalance.IsNegative() {
		return decimal.Zero
	}
	return c.AvailableBalance
}
