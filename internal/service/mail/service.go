package mail

import (
	"context"
	"fmt"
	"html/template"

	"github.com/brightops/peoplehub-backend-go/internal/domain/mail"
)

// MailService manages email templates and per-tenant SMTP settings. Delivery
// is handled by an external mailer; this service only stores configuration.
type MailService struct {
	mail.EmailTemplateRepository
	mail.SmtpSettingsRepository
}

func NewMailService(
	templateRepository mail.EmailTemplateRepository,
	smtpRepository mail.SmtpSettingsRepository,
) *MailService {
	return &MailService{
		EmailTemplateRepository: templateRepository,
		SmtpSettingsRepository:  smtpRepository,
	}
}

func (s *MailService) CreateTemplate(ctx context.Context, tenantID string, req mail.CreateTemplateRequest) (mail.EmailTemplate, error) {
	if err := req.Validate(); err != nil {
		return mail.EmailTemplate{}, err
	}
	if err := validateBody(req.Body); err != nil {
		return mail.EmailTemplate{}, err
	}

	status := mail.TemplateStatusDraft
	if req.Status != "" {
		status = mail.TemplateStatus(req.Status)
	}

	created, err := s.EmailTemplateRepository.Create(ctx, mail.EmailTemplate{
		TenantID: tenantID,
		Name:     req.Name,
		Category: req.Category,
		Subject:  req.Subject,
		Body:     req.Body,
		Status:   status,
	})
	if err != nil {
		return mail.EmailTemplate{}, fmt.Errorf("failed to create email template: %w", err)
	}
	return created, nil
}

func (s *MailService) GetTemplate(ctx context.Context, tenantID, id string) (mail.EmailTemplate, error) {
	tmpl, err := s.EmailTemplateRepository.GetByID(ctx, id)
	if err != nil {
		return mail.EmailTemplate{}, err
	}
	if tmpl.TenantID != tenantID {
		return mail.EmailTemplate{}, mail.ErrTemplateNotFound
	}
	return tmpl, nil
}

func (s *MailService) ListTemplates(ctx context.Context, tenantID string) ([]mail.EmailTemplate, error) {
	templates, err := s.EmailTemplateRepository.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	return templates, nil
}

func (s *MailService) UpdateTemplate(ctx context.Context, tenantID string, req mail.UpdateTemplateRequest) (mail.EmailTemplate, error) {
	if err := req.Validate(); err != nil {
		return mail.EmailTemplate{}, err
	}

	tmpl, err := s.GetTemplate(ctx, tenantID, req.ID)
	if err != nil {
		return mail.EmailTemplate{}, err
	}

	if req.Name != nil {
		tmpl.Name = *req.Name
	}
	if req.Category != nil {
		tmpl.Category = *req.Category
	}
	if req.Subject != nil {
		tmpl.Subject = *req.Subject
	}
	if req.Body != nil {
		if err := validateBody(*req.Body); err != nil {
			return mail.EmailTemplate{}, err
		}
		tmpl.Body = *req.Body
	}
	if req.Status != nil {
		tmpl.Status = mail.TemplateStatus(*req.Status)
	}

	if err := s.EmailTemplateRepository.Update(ctx, tmpl); err != nil {
		return mail.EmailTemplate{}, fmt.Errorf("failed to update email template: %w", err)
	}
	return tmpl, nil
}

func (s *MailService) DeleteTemplate(ctx context.Context, tenantID, id string) error {
	if _, err := s.GetTemplate(ctx, tenantID, id); err != nil {
		return err
	}
	return s.EmailTemplateRepository.Delete(ctx, id)
}

func (s *MailService) SaveSmtpSettings(ctx context.Context, tenantID string, req mail.SaveSmtpSettingsRequest) (mail.SmtpSettings, error) {
	if err := req.Validate(); err != nil {
		return mail.SmtpSettings{}, err
	}

	saved, err := s.SmtpSettingsRepository.Upsert(ctx, mail.SmtpSettings{
		TenantID:    tenantID,
		Host:        req.Host,
		Port:        req.Port,
		Username:    req.Username,
		SenderEmail: req.SenderEmail,
		SenderName:  req.SenderName,
		UseTLS:      req.UseTLS,
	})
	if err != nil {
		return mail.SmtpSettings{}, fmt.Errorf("failed to save smtp settings: %w", err)
	}
	return saved, nil
}

func (s *MailService) GetSmtpSettings(ctx context.Context, tenantID string) (mail.SmtpSettings, error) {
	return s.SmtpSettingsRepository.GetByTenantID(ctx, tenantID)
}

// validateBody parses the body as an html/template so malformed placeholder
// syntax is rejected at save time instead of at send time.
func validateBody(body string) error {
	if _, err := template.New("body").Parse(body); err != nil {
		return mail.ErrInvalidTemplateBody
	}
	return nil
}
