package leave

import (
	"github.com/brightops/peoplehub-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name                          string   `json:"leave_type_name"`
	Code                          string   `json:"leave_type_code"`
	Category                      string   `json:"category"`
	Description                   *string  `json:"description,omitempty"`
	EntitlementDays               float64  `json:"entitlement_days"`
	AccrualType                   string   `json:"accrual_type"`
	AccrualRate                   *float64 `json:"accrual_rate,omitempty"`
	CarryForward                  bool     `json:"carry_forward"`
	MaxCarryForwardDays           *float64 `json:"max_carry_forward_days,omitempty"`
	Encashment                    bool     `json:"encashment"`
	GenderSpecific                *string  `json:"gender_specific,omitempty"`
	PostProbationOnly             bool     `json:"post_probation_only"`
	MaxDaysPerMonth               *int     `json:"max_days_per_month,omitempty"`
	MaxDaysPerYear                *int     `json:"max_days_per_year,omitempty"`
	MedicalProofRequiredAfterDays *int     `json:"medical_proof_required_after_days,omitempty"`
	AdvanceNoticeDays             *int     `json:"advance_notice_days,omitempty"`
	RequiresApproval              bool     `json:"requires_approval"`
	AutoExpiryDays                *int     `json:"auto_expiry_days,omitempty"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_code",
			Message: "leave_type_code is required",
		})
	}
	if len(r.Code) > 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_code",
			Message: "leave_type_code must not exceed 10 characters",
		})
	}
	if !validator.IsInSlice(r.Category, []string{"casual", "sick", "earned", "maternity", "paternity", "special"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: casual, sick, earned, maternity, paternity, special",
		})
	}
	if r.EntitlementDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entitlement_days",
			Message: "entitlement_days must not be negative",
		})
	}
	if !validator.IsInSlice(r.AccrualType, []string{"yearly", "monthly", "per_working_days", "none"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "accrual_type",
			Message: "accrual_type must be one of: yearly, monthly, per_working_days, none",
		})
	}
	if r.GenderSpecific != nil && !validator.IsInSlice(*r.GenderSpecific, []string{"male", "female", "other"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender_specific",
			Message: "gender_specific must be one of: male, female, other",
		})
	}
	if r.MaxCarryForwardDays != nil && *r.MaxCarryForwardDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_carry_forward_days",
			Message: "max_carry_forward_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID                  string   `json:"leave_type_id"`
	Name                *string  `json:"leave_type_name,omitempty"`
	Description         *string  `json:"description,omitempty"`
	EntitlementDays     *float64 `json:"entitlement_days,omitempty"`
	CarryForward        *bool    `json:"carry_forward,omitempty"`
	MaxCarryForwardDays *float64 `json:"max_carry_forward_days,omitempty"`
	RequiresApproval    *bool    `json:"requires_approval,omitempty"`
	IsEnabled           *bool    `json:"is_enabled,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name must not be empty",
		})
	}
	if r.EntitlementDays != nil && *r.EntitlementDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entitlement_days",
			Message: "entitlement_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyLeaveResult pairs the created application with non-blocking warnings
// (short notice, yearly cap, missing medical proof) for the client to show.
type ApplyLeaveResult struct {
	Application LeaveApplication `json:"application"`
	Warnings    []string         `json:"warnings,omitempty"`
}

type ApplyLeaveRequest struct {
	LeaveTypeID   string  `json:"leave_type_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        *string `json:"reason,omitempty"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

func (r *ApproveApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "application_id",
			Message: "application_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectApplicationRequest struct {
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason"`
}

func (r *RejectApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "application_id",
			Message: "application_id is required",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InitializeYearRequest struct {
	Year int `json:"year"`
}

func (r *InitializeYearRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustBalanceRequest struct {
	EmployeeID  string  `json:"employee_id"`
	LeaveTypeID string  `json:"leave_type_id"`
	Year        int     `json:"year"`
	Delta       float64 `json:"delta"`
	Note        *string `json:"note,omitempty"`
}

func (r *AdjustBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
