package leave

import "errors"

var (
	ErrLeaveTypeNotFound        = errors.New("Leave type not found")
	ErrLeaveTypeCodeExists      = errors.New("Leave type code already exists")
	ErrLeaveApplicationNotFound = errors.New("Leave application not found")
	ErrLeaveBalanceNotFound     = errors.New("Leave balance not found")
	ErrLeaveAlreadyProcessed    = errors.New("Leave application already processed")
	ErrOverlappingLeave         = errors.New("Overlapping leave application exists")

	// Validation failures surfaced by ValidateAndCompute. Being over balance
	// is deliberately not among them: an over-balance request succeeds and
	// carries the overflow as LOP days.
	ErrInvalidDateRange      = errors.New("End date must not be before start date")
	ErrIneligibleLeaveType   = errors.New("Leave type is not applicable to this employee")
	ErrMissingRequiredFields = errors.New("Leave type and date range are required")
)
