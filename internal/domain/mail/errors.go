package mail

import "errors"

var (
	ErrTemplateNotFound     = errors.New("Email template not found")
	ErrInvalidTemplateBody  = errors.New("Email template body failed to parse")
	ErrSmtpSettingsNotFound = errors.New("SMTP settings not configured")
)
