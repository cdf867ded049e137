package response

import (
	"cart-recovery/internal/usecase/shared"
)

type SettingsResponse struct {
	AbandonMinutes  int         `json:"abandon_minutes"`
	RetentionDays   int         `json:"retention_days"`
	EnableEmails    bool        `json:"enable_emails"`
	EmailSteps      map[int]int `json:"email_steps"`
	RestoreRedirect string      `json:"restore_redirect"`
}

func FromSettings(s shared.RecoverySettings) *SettingsResponse {
	return &SettingsResponse{
		AbandonMinutes:  s.AbandonMinutes,
		RetentionDays:   s.RetentionDays,
		EnableEmails:    s.EnableEmails,
		EmailSteps:      s.EmailSteps,
		RestoreRedirect: s.RestoreRedirect,
	}
}

type TemplatesResponse struct {
	Templates map[int]shared.EmailTemplate `json:"templates"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
