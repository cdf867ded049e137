package commands

import (
	"context"
	"log/slog"

	"cart-recovery/internal/pkg/clock"
	"cart-recovery/internal/pkg/config"
	"cart-recovery/internal/pkg/errs"
	"cart-recovery/internal/pkg/restorekey"
	"cart-recovery/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSweepFailed = errs.New("cart sweep failed")

// SweepReport is what one scheduler invocation did, for logging only.
type SweepReport struct {
	Abandoned  int64
	Expired    int64
	Purged     int64
	EmailsSent int
}

type SweepCommands interface {
	RunSweep(ctx context.Context) (SweepReport, error)
}

type sweepImpl struct {
	carts     CartRepository
	settings  SettingsProvider
	templates TemplateEngine
	mailer    Mailer
	signer    *restorekey.Signer
	recovery  config.RecoveryConfig
	clock     clock.Clock
}

func NewSweepCommands(
	carts CartRepository,
	settings SettingsProvider,
	templates TemplateEngine,
	mailer Mailer,
	signer *restorekey.Signer,
	cfg config.Config,
	clk clock.Clock,
) SweepCommands {
	return &sweepImpl{
		carts:     carts,
		settings:  settings,
		templates: templates,
		mailer:    mailer,
		signer:    signer,
		recovery:  cfg.Recovery,
		clock:     clk,
	}
}

// RunSweep drives the cart state machine: abandonment sweep, expiry sweep,
// retention purge, then recovery-email dispatch. Each sweep is idempotent,
// so a run killed halfway is simply finished by the next one.
func (s *sweepImpl) RunSweep(ctx context.Context) (SweepReport, error) {
	var report SweepReport

	settings, err := s.settings.Settings(ctx)
	if err != nil {
		return report, errs.Mark(err, ErrSweepFailed)
	}

	now := s.clock.Now()

	abandoned, err := s.carts.MarkAbandoned(ctx, settings.AbandonCutoff(now), now)
	if err != nil {
		return report, errs.Mark(err, ErrSweepFailed)
	}
	report.Abandoned = abandoned

	// Runs after the abandonment sweep; both key off last_activity_at, so a
	// cart past both thresholds ends the run expired.
	expired, err := s.carts.MarkExpired(ctx, settings.RetentionCutoff(now), now)
	if err != nil {
		return report, errs.Mark(err, ErrSweepFailed)
	}
	report.Expired = expired

	// Expired rows are kept for a further retention window, then removed.
	purged, err := s.carts.PurgeExpired(ctx, settings.RetentionCutoff(now))
	if err != nil {
		return report, errs.Mark(err, ErrSweepFailed)
	}
	report.Purged = purged

	if !settings.EnableEmails {
		return report, nil
	}

	report.EmailsSent = s.dispatchEmails(ctx, settings)
	return report, nil
}

// dispatchEmails walks configured steps in ascending order. A cart receives
// at most one email per run: a long-dormant cart that crosses several
// thresholds at once starts at its lowest unsent step and advances one step
// per scheduler invocation.
func (s *sweepImpl) dispatchEmails(ctx context.Context, settings shared.RecoverySettings) int {
	sent := 0
	mailedThisRun := make(map[uuid.UUID]struct{})
	now := s.clock.Now()

	for _, step := range settings.StepsAscending() {
		hours := settings.EmailSteps[step]
		candidates, err := s.carts.FindEmailCandidates(ctx, step, settings.StepCutoff(now, hours))
		if err != nil {
			slog.Error("failed to query email candidates", "step", step, "error", err)
			continue
		}

		for _, rec := range candidates {
			if _, done := mailedThisRun[rec.ID]; done {
				continue
			}

			link := s.signer.Link(s.recovery.BaseURL, rec.Token)
			rendered, ok, err := s.templates.Render(ctx, step, rec, link)
			if err != nil {
				slog.Error("failed to render recovery email", "step", step, "cart_id", rec.ID, "error", err)
				continue
			}
			if !ok {
				// No template for this step; candidate stays eligible.
				continue
			}

			if err := s.mailer.Send(ctx, rec.Email, rendered.Subject, rendered.Body); err != nil {
				// Bookkeeping untouched: the candidate is naturally retried
				// on the next run.
				slog.Warn("recovery email send failed", "step", step, "cart_id", rec.ID, "error", err)
				continue
			}

			if err := s.carts.RecordEmailSent(ctx, rec.ID, step, now); err != nil {
				slog.Error("failed to record sent email", "step", step, "cart_id", rec.ID, "error", err)
			}
			mailedThisRun[rec.ID] = struct{}{}
			sent++
		}
	}

	return sent
}
