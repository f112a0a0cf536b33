package leave

import (
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// LeaveType entity
type LeaveType struct {
	ID          string
	TenantID    string
	Name        string
	Code        string
	Category    LeaveCategory
	Description *string

	// Entitlement & accrual
	EntitlementDays decimal.Decimal
	AccrualType     AccrualType
	AccrualRate     *decimal.Decimal

	// Carry-forward & encashment
	CarryForward        bool
	MaxCarryForwardDays *decimal.Decimal
	Encashment          bool

	// Applicability restrictions
	GenderSpecific    *employee.Gender
	PostProbationOnly bool

	// Request rules
	MaxDaysPerMonth               *int
	MaxDaysPerYear                *int
	MedicalProofRequiredAfterDays *int
	AdvanceNoticeDays             *int
	RequiresApproval              bool
	AutoExpiryDays                *int

	IsEnabled bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeaveCategory string

const (
	CategoryCasual    LeaveCategory = "casual"
	CategorySick      LeaveCategory = "sick"
	CategoryEarned    LeaveCategory = "earned"
	CategoryMaternity LeaveCategory = "maternity"
	CategoryPaternity LeaveCategory = "paternity"
	CategorySpecial   LeaveCategory = "special"
)

type AccrualType string

const (
	AccrualYearly        AccrualType = "yearly"
	AccrualMonthly       AccrualType = "monthly"
	AccrualPerWorkingDay AccrualType = "per_working_days"
	AccrualNone          AccrualType = "none"
)

// LeaveBalance entity, keyed (employee, leave_type, year). All day fields
// are decimals: half-day grants and adjustments are permitted.
type LeaveBalance struct {
	ID          string
	TenantID    string
	EmployeeID  string
	LeaveTypeID string
	Year        int

	EntitledDays       decimal.Decimal
	CarriedForwardDays decimal.Decimal
	AdjustedDays       decimal.Decimal
	UsedDays           decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Available returns entitled + carried_forward + adjusted - used. The value
// can go negative transiently when an over-drawn request is displayed; it is
// never persisted negative because approval deducts at most the available
// amount and routes the rest to LOP.
func (b LeaveBalance) Available() decimal.Decimal {
	return b.EntitledDays.
		Add(b.CarriedForwardDays).
		Add(b.AdjustedDays).
		Sub(b.UsedDays)
}

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

// LeaveApplication entity. The date range is immutable after creation;
// edits are modeled as cancel + reapply.
type LeaveApplication struct {
	ID          string
	TenantID    string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time

	// DaysCount is the inclusive calendar-day count between start and end.
	// Weekends inside the range count as leave days; this intentionally
	// differs from the working-day calendar used for attendance statistics.
	DaysCount decimal.Decimal
	IsLOP     bool
	LOPDays   decimal.Decimal

	Reason              *string
	AttachmentURL       *string
	Status              LeaveStatus
	CurrentApproverRole *string

	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	LeaveTypeName  *string
	LeaveTypeCode  *string
	EmployeeName   *string
	DepartmentName *string
}
