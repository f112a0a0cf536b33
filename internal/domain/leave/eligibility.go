package leave

import (
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
)

// IsApplicableTo reports whether the leave type may be applied for by an
// employee of the given gender. A type without a gender restriction is open
// to everyone. An employee with no recorded gender is treated as eligible
// (fail-open), so incomplete profiles never block applications.
func (lt LeaveType) IsApplicableTo(gender employee.Gender) bool {
	if lt.GenderSpecific == nil {
		return true
	}
	if gender == "" {
		return true
	}
	return *lt.GenderSpecific == gender
}

// isPastProbation reports whether the employee has cleared probation as of
// the given date. An unset probation end date means no probation applies.
func isPastProbation(emp employee.Employee, asOf time.Time) bool {
	if emp.ProbationEndDate == nil {
		return true
	}
	return !asOf.Before(*emp.ProbationEndDate)
}
