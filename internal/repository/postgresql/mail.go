package postgresql

import (
	"context"
	"errors"

	"github.com/brightops/peoplehub-backend-go/internal/domain/mail"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type emailTemplateRepositoryImpl struct {
	db *database.DB
}

func NewEmailTemplateRepository(db *database.DB) mail.EmailTemplateRepository {
	return &emailTemplateRepositoryImpl{db: db}
}

const emailTemplateColumns = `
	id, tenant_id, name, category, subject, body, status, created_at, updated_at
`

func scanEmailTemplate(row pgx.Row) (mail.EmailTemplate, error) {
	var t mail.EmailTemplate
	err := row.Scan(
		&t.ID,
		&t.TenantID,
		&t.Name,
		&t.Category,
		&t.Subject,
		&t.Body,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

func (r *emailTemplateRepositoryImpl) Create(ctx context.Context, tmpl mail.EmailTemplate) (mail.EmailTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO email_templates (
			id, tenant_id, name, category, subject, body, status,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		tmpl.TenantID,
		tmpl.Name,
		tmpl.Category,
		tmpl.Subject,
		tmpl.Body,
		tmpl.Status,
	).Scan(&tmpl.ID, &tmpl.CreatedAt, &tmpl.UpdatedAt)
	if err != nil {
		return mail.EmailTemplate{}, err
	}

	return tmpl, nil
}

func (r *emailTemplateRepositoryImpl) GetByID(ctx context.Context, id string) (mail.EmailTemplate, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanEmailTemplate(q.QueryRow(ctx,
		`SELECT `+emailTemplateColumns+` FROM email_templates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mail.EmailTemplate{}, mail.ErrTemplateNotFound
		}
		return mail.EmailTemplate{}, err
	}

	return t, nil
}

func (r *emailTemplateRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]mail.EmailTemplate, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+emailTemplateColumns+` FROM email_templates WHERE tenant_id = $1 ORDER BY name`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []mail.EmailTemplate
	for rows.Next() {
		t, err := scanEmailTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *emailTemplateRepositoryImpl) Update(ctx context.Context, tmpl mail.EmailTemplate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE email_templates
		SET name = $2,
		    category = $3,
		    subject = $4,
		    body = $5,
		    status = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		tmpl.ID, tmpl.Name, tmpl.Category, tmpl.Subject, tmpl.Body, tmpl.Status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return mail.ErrTemplateNotFound
	}
	return nil
}

func (r *emailTemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM email_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return mail.ErrTemplateNotFound
	}
	return nil
}

type smtpSettingsRepositoryImpl struct {
	db *database.DB
}

func NewSmtpSettingsRepository(db *database.DB) mail.SmtpSettingsRepository {
	return &smtpSettingsRepositoryImpl{db: db}
}

func (r *smtpSettingsRepositoryImpl) Upsert(ctx context.Context, settings mail.SmtpSettings) (mail.SmtpSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO smtp_settings (
			id, tenant_id, host, port, username, sender_email, sender_name,
			use_tls, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
		ON CONFLICT (tenant_id) DO UPDATE
		SET host = EXCLUDED.host,
		    port = EXCLUDED.port,
		    username = EXCLUDED.username,
		    sender_email = EXCLUDED.sender_email,
		    sender_name = EXCLUDED.sender_name,
		    use_tls = EXCLUDED.use_tls,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		settings.TenantID,
		settings.Host,
		settings.Port,
		settings.Username,
		settings.SenderEmail,
		settings.SenderName,
		settings.UseTLS,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		return mail.SmtpSettings{}, err
	}

	return settings, nil
}

func (r *smtpSettingsRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) (mail.SmtpSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, host, port, username, sender_email, sender_name,
		       use_tls, created_at, updated_at
		FROM smtp_settings
		WHERE tenant_id = $1
	`

	var s mail.SmtpSettings
	err := q.QueryRow(ctx, query, tenantID).Scan(
		&s.ID,
		&s.TenantID,
		&s.Host,
		&s.Port,
		&s.Username,
		&s.SenderEmail,
		&s.SenderName,
		&s.UseTLS,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mail.SmtpSettings{}, mail.ErrSmtpSettingsNotFound
		}
		return mail.SmtpSettings{}, err
	}

	return s, nil
}
