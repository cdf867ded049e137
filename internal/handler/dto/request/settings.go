package request

import (
	"cart-recovery/internal/usecase/shared"
)

type UpdateSettingsRequest struct {
	AbandonMinutes  int         `json:"abandon_minutes" binding:"required,gte=1"`
	RetentionDays   int         `json:"retention_days" binding:"required,gte=1"`
	EnableEmails    *bool       `json:"enable_emails" binding:"required"`
	EmailSteps      map[int]int `json:"email_steps" binding:"required"`
	RestoreRedirect string      `json:"restore_redirect" binding:"required,oneof=cart checkout"`
}

func (r UpdateSettingsRequest) ToSettings() shared.RecoverySettings {
	return shared.RecoverySettings{
		AbandonMinutes:  r.AbandonMinutes,
		RetentionDays:   r.RetentionDays,
		EnableEmails:    *r.EnableEmails,
		EmailSteps:      r.EmailSteps,
		RestoreRedirect: r.RestoreRedirect,
	}
}

type TemplateBody struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type UpdateTemplatesRequest struct {
	Templates map[int]TemplateBody `json:"templates" binding:"required"`
}

func (r UpdateTemplatesRequest) ToTemplates() map[int]shared.EmailTemplate {
	out := make(map[int]shared.EmailTemplate, len(r.Templates))
	for step, tmpl := range r.Templates {
		out[step] = shared.EmailTemplate{Subject: tmpl.Subject, Body: tmpl.Body}
	}
	return out
}
