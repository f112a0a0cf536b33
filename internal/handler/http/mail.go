package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brightops/peoplehub-backend-go/internal/domain/mail"
	"github.com/brightops/peoplehub-backend-go/internal/handler/http/response"
	mailService "github.com/brightops/peoplehub-backend-go/internal/service/mail"
	"github.com/go-chi/chi/v5"
)

type MailHandler interface {
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	GetTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	UpdateTemplate(w http.ResponseWriter, r *http.Request)
	DeleteTemplate(w http.ResponseWriter, r *http.Request)

	SaveSmtpSettings(w http.ResponseWriter, r *http.Request)
	GetSmtpSettings(w http.ResponseWriter, r *http.Request)
}

type MailHandlerImpl struct {
	mailService *mailService.MailService
}

func NewMailHandler(svc *mailService.MailService) MailHandler {
	return &MailHandlerImpl{mailService: svc}
}

func (h *MailHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req mail.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTemplate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tmpl, err := h.mailService.CreateTemplate(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Email template created successfully", tmpl)
}

func (h *MailHandlerImpl) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Template ID is required", nil)
		return
	}

	tmpl, err := h.mailService.GetTemplate(r.Context(), tenantID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tmpl)
}

func (h *MailHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	templates, err := h.mailService.ListTemplates(r.Context(), tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

func (h *MailHandlerImpl) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req mail.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTemplate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	tmpl, err := h.mailService.UpdateTemplate(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email template updated successfully", tmpl)
}

func (h *MailHandlerImpl) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Template ID is required", nil)
		return
	}

	if err := h.mailService.DeleteTemplate(r.Context(), tenantID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email template deleted successfully", nil)
}

func (h *MailHandlerImpl) SaveSmtpSettings(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req mail.SaveSmtpSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveSmtpSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.mailService.SaveSmtpSettings(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "SMTP settings saved successfully", settings)
}

func (h *MailHandlerImpl) GetSmtpSettings(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	settings, err := h.mailService.GetSmtpSettings(r.Context(), tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}
