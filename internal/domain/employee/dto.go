package employee

import "github.com/brightops/peoplehub-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	PersonalEmail    *string `json:"personal_email,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	DepartmentID     *string `json:"department_id,omitempty"`
	EmploymentType   string  `json:"employment_type"`
	DateOfJoining    string  `json:"date_of_joining"`
	ProbationEndDate *string `json:"probation_end_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}
	if r.PersonalEmail != nil && !validator.IsValidEmail(*r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_email",
			Message: "personal_email must be a valid email address",
		})
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"male", "female", "other"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of: male, female, other",
		})
	}
	if !validator.IsInSlice(r.EmploymentType, []string{"full_time", "part_time", "contract", "intern"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: full_time, part_time, contract, intern",
		})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}
	if r.ProbationEndDate != nil {
		if _, ok := validator.IsValidDate(*r.ProbationEndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "probation_end_date",
				Message: "probation_end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"employee_id"`
	FullName         *string `json:"full_name,omitempty"`
	PersonalEmail    *string `json:"personal_email,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	DepartmentID     *string `json:"department_id,omitempty"`
	EmploymentType   *string `json:"employment_type,omitempty"`
	ProbationEndDate *string `json:"probation_end_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"male", "female", "other"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of: male, female, other",
		})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, []string{"full_time", "part_time", "contract", "intern"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: full_time, part_time, contract, intern",
		})
	}
	if r.ProbationEndDate != nil {
		if _, ok := validator.IsValidDate(*r.ProbationEndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "probation_end_date",
				Message: "probation_end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDepartmentRequest struct {
	Name string `json:"department_name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
