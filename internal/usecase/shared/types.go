package shared

import (
	"sort"
	"time"
)

// RecoverySettings are the tunables of the recovery workflow. Stored
// overrides are merged over defaults; stored values win, defaults fill gaps.
type RecoverySettings struct {
	AbandonMinutes  int         `json:"abandon_minutes"`
	RetentionDays   int         `json:"retention_days"`
	EnableEmails    bool        `json:"enable_emails"`
	EmailSteps      map[int]int `json:"email_steps"` // step number -> hours after abandonment
	RestoreRedirect string      `json:"restore_redirect"`
}

const (
	RedirectCart     = "cart"
	RedirectCheckout = "checkout"
)

func DefaultRecoverySettings() RecoverySettings {
	return RecoverySettings{
		AbandonMinutes:  45,
		RetentionDays:   30,
		EnableEmails:    true,
		EmailSteps:      map[int]int{1: 1, 2: 24, 3: 72},
		RestoreRedirect: RedirectCheckout,
	}
}

func (s RecoverySettings) AbandonCutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(s.AbandonMinutes) * time.Minute)
}

func (s RecoverySettings) RetentionCutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(s.RetentionDays) * 24 * time.Hour)
}

func (s RecoverySettings) StepCutoff(now time.Time, hours int) time.Time {
	return now.Add(-time.Duration(hours) * time.Hour)
}

// StepsAscending returns the configured step numbers in ascending order.
func (s RecoverySettings) StepsAscending() []int {
	steps := make([]int, 0, len(s.EmailSteps))
	for step := range s.EmailSteps {
		steps = append(steps, step)
	}
	sort.Ints(steps)
	return steps
}

// EmailTemplate is one step's subject/body pair before token substitution.
type EmailTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type RenderedEmail struct {
	Subject string
	Body    string
}
