package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// EntitledDaysAt computes how much of the annual entitlement has become
// available as of a date, per the leave type's accrual policy. Employees
// hired mid-year accrue from their joining date, not from January 1st.
func EntitledDaysAt(lt LeaveType, dateOfJoining, asOf time.Time) decimal.Decimal {
	switch lt.AccrualType {
	case AccrualNone:
		return decimal.Zero

	case AccrualYearly:
		// Full allotment up front.
		return lt.EntitlementDays

	case AccrualMonthly:
		rate := lt.EntitlementDays.Div(twelve)
		if lt.AccrualRate != nil {
			rate = *lt.AccrualRate
		}
		months := monthsAccrued(accrualStart(dateOfJoining, asOf), asOf)
		return capAtEntitlement(lt, rate.Mul(decimal.NewFromInt(int64(months))))

	case AccrualPerWorkingDay:
		if lt.AccrualRate == nil {
			return decimal.Zero
		}
		worked := CountWorkingDays(accrualStart(dateOfJoining, asOf), asOf)
		return capAtEntitlement(lt, lt.AccrualRate.Mul(decimal.NewFromInt(int64(worked))))
	}

	return lt.EntitlementDays
}

// CarryForwardDays computes the days rolled into the new year from the prior
// year's closing availability, subject to the configured cap. Nothing rolls
// over for types with carry-forward disabled or a negative close.
func CarryForwardDays(lt LeaveType, priorAvailable decimal.Decimal) decimal.Decimal {
	if !lt.CarryForward {
		return decimal.Zero
	}
	if priorAvailable.IsNegative() {
		return decimal.Zero
	}
	if lt.MaxCarryForwardDays != nil && priorAvailable.GreaterThan(*lt.MaxCarryForwardDays) {
		return *lt.MaxCarryForwardDays
	}
	return priorAvailable
}

// accrualStart is the later of the year start and the joining date.
func accrualStart(dateOfJoining, asOf time.Time) time.Time {
	yearStart := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	if dateOfJoining.After(yearStart) {
		return dateOfJoining
	}
	return yearStart
}

// monthsAccrued counts accrual months from start through asOf: the start
// month plus every 1st-of-month boundary crossed.
func monthsAccrued(start, asOf time.Time) int {
	if start.After(asOf) {
		return 0
	}
	years := asOf.Year() - start.Year()
	months := int(asOf.Month()) - int(start.Month())
	return years*12 + months + 1
}

func capAtEntitlement(lt LeaveType, accrued decimal.Decimal) decimal.Decimal {
	if accrued.GreaterThan(lt.EntitlementDays) {
		return lt.EntitlementDays
	}
	return accrued
}
