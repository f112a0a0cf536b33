package mail

import "context"

// EmailTemplateRepository - interface for email_templates table
type EmailTemplateRepository interface {
	Create(ctx context.Context, tmpl EmailTemplate) (EmailTemplate, error)
	GetByID(ctx context.Context, id string) (EmailTemplate, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]EmailTemplate, error)
	Update(ctx context.Context, tmpl EmailTemplate) error
	Delete(ctx context.Context, id string) error
}

// SmtpSettingsRepository - interface for smtp_settings table
type SmtpSettingsRepository interface {
	Upsert(ctx context.Context, settings SmtpSettings) (SmtpSettings, error)
	GetByTenantID(ctx context.Context, tenantID string) (SmtpSettings, error)
}
