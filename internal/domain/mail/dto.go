package mail

import "github.com/brightops/peoplehub-backend-go/internal/pkg/validator"

type CreateTemplateRequest struct {
	Name     string `json:"template_name"`
	Category string `json:"category"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Status   string `json:"status"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_name",
			Message: "template_name is required",
		})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}
	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{"active", "draft"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, draft",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTemplateRequest struct {
	ID       string  `json:"template_id"`
	Name     *string `json:"template_name,omitempty"`
	Category *string `json:"category,omitempty"`
	Subject  *string `json:"subject,omitempty"`
	Body     *string `json:"body,omitempty"`
	Status   *string `json:"status,omitempty"`
}

func (r *UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_id",
			Message: "template_id is required",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{"active", "draft"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, draft",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaveSmtpSettingsRequest struct {
	Host        string  `json:"host"`
	Port        int     `json:"port"`
	Username    string  `json:"username"`
	SenderEmail string  `json:"sender_email"`
	SenderName  *string `json:"sender_name,omitempty"`
	UseTLS      bool    `json:"use_tls"`
}

func (r *SaveSmtpSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Host) {
		errs = append(errs, validator.ValidationError{
			Field:   "host",
			Message: "host is required",
		})
	}
	if r.Port <= 0 || r.Port > 65535 {
		errs = append(errs, validator.ValidationError{
			Field:   "port",
			Message: "port must be between 1 and 65535",
		})
	}
	if !validator.IsValidEmail(r.SenderEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "sender_email",
			Message: "sender_email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
