package mail

import "time"

// EmailTemplate is a tenant-authored message template. Templates are stored
// and managed here; actual delivery belongs to the mailer service outside
// this application.
type EmailTemplate struct {
	ID        string
	TenantID  string
	Name      string
	Category  string
	Subject   string
	Body      string
	Status    TemplateStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TemplateStatus string

const (
	TemplateStatusActive TemplateStatus = "active"
	TemplateStatusDraft  TemplateStatus = "draft"
)

// SmtpSettings is the per-tenant outbound mail configuration, one row per
// tenant. The password is write-only through the API.
type SmtpSettings struct {
	ID          string
	TenantID    string
	Host        string
	Port        int
	Username    string
	SenderEmail string
	SenderName  *string
	UseTLS      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
