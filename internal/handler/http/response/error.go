package response

import (
	"errors"
	"net/http"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/brightops/peoplehub-backend-go/internal/domain/mail"
	"github.com/brightops/peoplehub-backend-go/internal/domain/project"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeCodeExists):
		Conflict(w, "Leave type code already exists")
	case errors.Is(err, leave.ErrLeaveApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave application already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Overlapping leave application exists")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, leave.ErrIneligibleLeaveType):
		BadRequest(w, "Employee is not eligible for this leave type", nil)
	case errors.Is(err, leave.ErrMissingRequiredFields):
		BadRequest(w, "Missing required fields", nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")

	// Mail domain errors
	case errors.Is(err, mail.ErrTemplateNotFound):
		NotFound(w, "Email template not found")
	case errors.Is(err, mail.ErrInvalidTemplateBody):
		BadRequest(w, "Template body is not valid", nil)
	case errors.Is(err, mail.ErrSmtpSettingsNotFound):
		NotFound(w, "SMTP settings not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
