package usecase

import (
	"context"
	"encoding/json"

	"cart-recovery/internal/infra"
	"cart-recovery/internal/pkg/errs"
	"cart-recovery/internal/usecase/shared"
)

const (
	settingsOptionKey  = "abandoned_cart_settings"
	templatesOptionKey = "abandoned_cart_email_templates"
)

var (
	ErrInvalidSettings = errs.New("invalid recovery settings")
	ErrSettingsFailed  = errs.New("settings storage failed")
)

// OptionsRepository is the durable key-value record the tunables live in
// (the options-table equivalent).
type OptionsRepository interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, value []byte) error
}

// SettingsService merges stored overrides over compiled-in defaults.
// Stored values win, defaults fill gaps, so a partial override never
// knocks out unrelated settings.
type SettingsService struct {
	options OptionsRepository
}

func NewSettingsService(options OptionsRepository) *SettingsService {
	return &SettingsService{options: options}
}

// storedSettings uses pointers to tell "absent" apart from zero values.
type storedSettings struct {
	AbandonMinutes  *int        `json:"abandon_minutes,omitempty"`
	RetentionDays   *int        `json:"retention_days,omitempty"`
	EnableEmails    *bool       `json:"enable_emails,omitempty"`
	EmailSteps      map[int]int `json:"email_steps,omitempty"`
	RestoreRedirect *string     `json:"restore_redirect,omitempty"`
}

func (s *SettingsService) Settings(ctx context.Context) (shared.RecoverySettings, error) {
	merged := shared.DefaultRecoverySettings()

	raw, err := s.options.Get(ctx, settingsOptionKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return merged, nil
		}
		return merged, errs.Mark(err, ErrSettingsFailed)
	}

	var stored storedSettings
	if err := json.Unmarshal(raw, &stored); err != nil {
		// A corrupt option behaves like an absent one.
		return merged, nil
	}

	if stored.AbandonMinutes != nil {
		merged.AbandonMinutes = *stored.AbandonMinutes
	}
	if stored.RetentionDays != nil {
		merged.RetentionDays = *stored.RetentionDays
	}
	if stored.EnableEmails != nil {
		merged.EnableEmails = *stored.EnableEmails
	}
	if len(stored.EmailSteps) > 0 {
		merged.EmailSteps = stored.EmailSteps
	}
	if stored.RestoreRedirect != nil {
		merged.RestoreRedirect = *stored.RestoreRedirect
	}
	return merged, nil
}

func (s *SettingsService) Update(ctx context.Context, settings shared.RecoverySettings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return errs.Mark(err, ErrInvalidSettings)
	}
	if err := s.options.Set(ctx, settingsOptionKey, raw); err != nil {
		return errs.Mark(err, ErrSettingsFailed)
	}
	return nil
}

func validateSettings(settings shared.RecoverySettings) error {
	if settings.AbandonMinutes < 1 {
		return errs.Mark(errs.New("abandon_minutes must be at least 1"), ErrInvalidSettings)
	}
	if settings.RetentionDays < 1 {
		return errs.Mark(errs.New("retention_days must be at least 1"), ErrInvalidSettings)
	}
	if settings.RestoreRedirect != shared.RedirectCart && settings.RestoreRedirect != shared.RedirectCheckout {
		return errs.Mark(errs.New("restore_redirect must be cart or checkout"), ErrInvalidSettings)
	}
	for step, hours := range settings.EmailSteps {
		if step < 1 || hours < 1 {
			return errs.Mark(errs.New("email steps must be positive"), ErrInvalidSettings)
		}
	}
	return nil
}
