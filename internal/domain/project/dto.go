package project

import "github.com/brightops/peoplehub-backend-go/internal/pkg/validator"

type CreateProjectRequest struct {
	Name          string  `json:"project_name"`
	ClientName    *string `json:"client_name,omitempty"`
	Category      *string `json:"category,omitempty"`
	Description   *string `json:"description,omitempty"`
	InitialNotes  *string `json:"initial_notes,omitempty"`
	ProjectHeadID *string `json:"project_head_id,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name must not exceed 255 characters",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	ID            string  `json:"project_id"`
	Name          *string `json:"project_name,omitempty"`
	ClientName    *string `json:"client_name,omitempty"`
	Category      *string `json:"category,omitempty"`
	Description   *string `json:"description,omitempty"`
	Status        *string `json:"status,omitempty"`
	ProjectHeadID *string `json:"project_head_id,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name must not be empty",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{"planning", "active", "on_hold", "completed", "cancelled"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: planning, active, on_hold, completed, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
