//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/pkg/clock"
	"cart-recovery/internal/pkg/config"
	"cart-recovery/internal/pkg/restorekey"
	"cart-recovery/internal/usecase/commands"
	"cart-recovery/internal/usecase/shared"
	commandsmock "cart-recovery/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sweepFixture struct {
	ctrl      *gomock.Controller
	carts     *commandsmock.MockCartRepository
	settings  *commandsmock.MockSettingsProvider
	templates *commandsmock.MockTemplateEngine
	mailer    *commandsmock.MockMailer
	signer    *restorekey.Signer
	clock     *clock.MockClock
	sweep     commands.SweepCommands
}

func newSweepFixture(t *testing.T) *sweepFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := config.NewTestConfig()
	signer := restorekey.NewSigner(cfg.Recovery.Secret)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	f := &sweepFixture{
		ctrl:      ctrl,
		carts:     commandsmock.NewMockCartRepository(ctrl),
		settings:  commandsmock.NewMockSettingsProvider(ctrl),
		templates: commandsmock.NewMockTemplateEngine(ctrl),
		mailer:    commandsmock.NewMockMailer(ctrl),
		signer:    signer,
		clock:     clk,
	}
	f.sweep = commands.NewSweepCommands(f.carts, f.settings, f.templates, f.mailer, signer, cfg, clk)
	return f
}

func (f *sweepFixture) expectTransitions(settings shared.RecoverySettings, abandoned, expired, purged int64) {
	now := f.clock.Now()
	f.settings.EXPECT().Settings(gomock.Any()).Return(settings, nil)
	f.carts.EXPECT().MarkAbandoned(gomock.Any(), settings.AbandonCutoff(now), now).Return(abandoned, nil)
	f.carts.EXPECT().MarkExpired(gomock.Any(), settings.RetentionCutoff(now), now).Return(expired, nil)
	f.carts.EXPECT().PurgeExpired(gomock.Any(), settings.RetentionCutoff(now)).Return(purged, nil)
}

func abandonedRecord(t *testing.T, token, email string) *cart.Record {
	t.Helper()
	rec, err := cart.NewRecord(token, email, cart.Items{{ProductID: 1, Name: "Widget", Quantity: 1}}, 1000, "USD", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, rec.Abandon(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)))
	return rec
}

func TestRunSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("runs transitions then dispatches one email per due cart", func(t *testing.T) {
		f := newSweepFixture(t)
		settings := shared.DefaultRecoverySettings()
		now := f.clock.Now()
		rec := abandonedRecord(t, "tok-1", "jane@example.com")

		f.expectTransitions(settings, 2, 1, 3)

		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 1, settings.StepCutoff(now, 1)).Return([]*cart.Record{rec}, nil)
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 2, settings.StepCutoff(now, 24)).Return(nil, nil)
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 3, settings.StepCutoff(now, 72)).Return(nil, nil)

		wantLink := f.signer.Link(config.NewTestConfig().Recovery.BaseURL, "tok-1")
		f.templates.EXPECT().Render(gomock.Any(), 1, rec, wantLink).
			Return(shared.RenderedEmail{Subject: "s", Body: "b"}, true, nil)
		f.mailer.EXPECT().Send(gomock.Any(), "jane@example.com", "s", "b").Return(nil)
		f.carts.EXPECT().RecordEmailSent(gomock.Any(), rec.ID, 1, now).Return(nil)

		report, err := f.sweep.RunSweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, commands.SweepReport{Abandoned: 2, Expired: 1, Purged: 3, EmailsSent: 1}, report)
	})

	t.Run("emails disabled skips dispatch entirely", func(t *testing.T) {
		f := newSweepFixture(t)
		settings := shared.DefaultRecoverySettings()
		settings.EnableEmails = false

		f.expectTransitions(settings, 0, 0, 0)

		report, err := f.sweep.RunSweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.EmailsSent)
	})

	t.Run("a cart past several thresholds gets only its lowest unsent step", func(t *testing.T) {
		f := newSweepFixture(t)
		settings := shared.DefaultRecoverySettings()
		now := f.clock.Now()
		rec := abandonedRecord(t, "tok-1", "jane@example.com")

		f.expectTransitions(settings, 0, 0, 0)

		// Dormant long enough to be due for every step at once.
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 1, gomock.Any()).Return([]*cart.Record{rec}, nil)
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 2, gomock.Any()).Return([]*cart.Record{rec}, nil)
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 3, gomock.Any()).Return([]*cart.Record{rec}, nil)

		f.templates.EXPECT().Render(gomock.Any(), 1, rec, gomock.Any()).
			Return(shared.RenderedEmail{Subject: "s", Body: "b"}, true, nil)
		f.mailer.EXPECT().Send(gomock.Any(), "jane@example.com", "s", "b").Return(nil)
		f.carts.EXPECT().RecordEmailSent(gomock.Any(), rec.ID, 1, now).Return(nil)

		report, err := f.sweep.RunSweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.EmailsSent)
	})

	t.Run("send failure leaves bookkeeping untouched", func(t *testing.T) {
		f := newSweepFixture(t)
		settings := shared.DefaultRecoverySettings()
		rec := abandonedRecord(t, "tok-1", "jane@example.com")

		f.expectTransitions(settings, 0, 0, 0)

		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 1, gomock.Any()).Return([]*cart.Record{rec}, nil)
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 2, gomock.Any()).Return(nil, nil)
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 3, gomock.Any()).Return(nil, nil)

		f.templates.EXPECT().Render(gomock.Any(), 1, rec, gomock.Any()).
			Return(shared.RenderedEmail{Subject: "s", Body: "b"}, true, nil)
		f.mailer.EXPECT().Send(gomock.Any(), "jane@example.com", "s", "b").
			Return(errors.New("smtp unreachable"))
		// No RecordEmailSent: the candidate stays eligible for the next run.

		report, err := f.sweep.RunSweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.EmailsSent)
	})

	t.Run("missing template skips the candidate without sending", func(t *testing.T) {
		f := newSweepFixture(t)
		settings := shared.DefaultRecoverySettings()
		settings.EmailSteps = map[int]int{5: 1}
		rec := abandonedRecord(t, "tok-1", "jane@example.com")

		f.expectTransitions(settings, 0, 0, 0)
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 5, gomock.Any()).Return([]*cart.Record{rec}, nil)
		f.templates.EXPECT().Render(gomock.Any(), 5, rec, gomock.Any()).
			Return(shared.RenderedEmail{}, false, nil)

		report, err := f.sweep.RunSweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.EmailsSent)
	})

	t.Run("candidate query failure does not abort other steps", func(t *testing.T) {
		f := newSweepFixture(t)
		settings := shared.DefaultRecoverySettings()
		rec := abandonedRecord(t, "tok-1", "jane@example.com")

		f.expectTransitions(settings, 0, 0, 0)

		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 1, gomock.Any()).
			Return(nil, errors.New("query timeout"))
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 2, gomock.Any()).Return([]*cart.Record{rec}, nil)
		f.carts.EXPECT().FindEmailCandidates(gomock.Any(), 3, gomock.Any()).Return(nil, nil)

		f.templates.EXPECT().Render(gomock.Any(), 2, rec, gomock.Any()).
			Return(shared.RenderedEmail{Subject: "s", Body: "b"}, true, nil)
		f.mailer.EXPECT().Send(gomock.Any(), "jane@example.com", "s", "b").Return(nil)
		f.carts.EXPECT().RecordEmailSent(gomock.Any(), rec.ID, 2, f.clock.Now()).Return(nil)

		report, err := f.sweep.RunSweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.EmailsSent)
	})

	t.Run("settings failure aborts the run", func(t *testing.T) {
		f := newSweepFixture(t)
		f.settings.EXPECT().Settings(gomock.Any()).
			Return(shared.RecoverySettings{}, errors.New("options table gone"))

		_, err := f.sweep.RunSweep(ctx)
		assert.ErrorIs(t, err, commands.ErrSweepFailed)
	})

	t.Run("transition failure aborts before dispatch", func(t *testing.T) {
		f := newSweepFixture(t)
		settings := shared.DefaultRecoverySettings()
		now := f.clock.Now()

		f.settings.EXPECT().Settings(gomock.Any()).Return(settings, nil)
		f.carts.EXPECT().MarkAbandoned(gomock.Any(), settings.AbandonCutoff(now), now).
			Return(int64(0), errors.New("deadlock"))

		_, err := f.sweep.RunSweep(ctx)
		assert.ErrorIs(t, err, commands.ErrSweepFailed)
	})
}
