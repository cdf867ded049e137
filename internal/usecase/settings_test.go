//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cart-recovery/internal/infra"
	"cart-recovery/internal/usecase"
	"cart-recovery/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOptions is an in-memory stand-in for the options table.
type fakeOptions struct {
	values map[string][]byte
	getErr error
	setErr error
}

func newFakeOptions() *fakeOptions {
	return &fakeOptions{values: map[string][]byte{}}
}

func (f *fakeOptions) Get(_ context.Context, name string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	raw, ok := f.values[name]
	if !ok {
		return nil, infra.WrapRepoErr("option not found", errors.New("no rows"), infra.KindNotFound)
	}
	return raw, nil
}

func (f *fakeOptions) Set(_ context.Context, name string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[name] = value
	return nil
}

// seed stores a raw settings payload under whatever key the service reads,
// by writing through Update first and then replacing the stored blob.
func seedSettings(t *testing.T, opts *fakeOptions, raw string) {
	t.Helper()
	svc := usecase.NewSettingsService(opts)
	require.NoError(t, svc.Update(context.Background(), shared.DefaultRecoverySettings()))
	require.Len(t, opts.values, 1)
	for name := range opts.values {
		opts.values[name] = []byte(raw)
	}
}

func TestSettingsServiceSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("absent option yields defaults", func(t *testing.T) {
		svc := usecase.NewSettingsService(newFakeOptions())

		got, err := svc.Settings(ctx)
		require.NoError(t, err)
		assert.Equal(t, shared.DefaultRecoverySettings(), got)
	})

	t.Run("stored values win, defaults fill gaps", func(t *testing.T) {
		opts := newFakeOptions()
		seedSettings(t, opts, `{"abandon_minutes":90,"restore_redirect":"cart"}`)
		svc := usecase.NewSettingsService(opts)

		got, err := svc.Settings(ctx)
		require.NoError(t, err)

		assert.Equal(t, 90, got.AbandonMinutes)
		assert.Equal(t, shared.RedirectCart, got.RestoreRedirect)
		// Untouched fields keep their defaults.
		assert.Equal(t, 30, got.RetentionDays)
		assert.True(t, got.EnableEmails)
		assert.Equal(t, map[int]int{1: 1, 2: 24, 3: 72}, got.EmailSteps)
	})

	t.Run("stored false overrides default true", func(t *testing.T) {
		opts := newFakeOptions()
		seedSettings(t, opts, `{"enable_emails":false}`)
		svc := usecase.NewSettingsService(opts)

		got, err := svc.Settings(ctx)
		require.NoError(t, err)
		assert.False(t, got.EnableEmails)
	})

	t.Run("stored steps replace the default schedule wholesale", func(t *testing.T) {
		opts := newFakeOptions()
		seedSettings(t, opts, `{"email_steps":{"1":2}}`)
		svc := usecase.NewSettingsService(opts)

		got, err := svc.Settings(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[int]int{1: 2}, got.EmailSteps)
	})

	t.Run("corrupt option behaves like an absent one", func(t *testing.T) {
		opts := newFakeOptions()
		seedSettings(t, opts, `{"abandon_minutes":"ninety"`)
		svc := usecase.NewSettingsService(opts)

		got, err := svc.Settings(ctx)
		require.NoError(t, err)
		assert.Equal(t, shared.DefaultRecoverySettings(), got)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		opts := newFakeOptions()
		opts.getErr = infra.WrapRepoErr("boom", errors.New("connection reset"))
		svc := usecase.NewSettingsService(opts)

		_, err := svc.Settings(ctx)
		assert.ErrorIs(t, err, usecase.ErrSettingsFailed)
	})
}

func TestSettingsServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		opts := newFakeOptions()
		svc := usecase.NewSettingsService(opts)

		want := shared.RecoverySettings{
			AbandonMinutes:  60,
			RetentionDays:   14,
			EnableEmails:    false,
			EmailSteps:      map[int]int{1: 2, 2: 48},
			RestoreRedirect: shared.RedirectCart,
		}
		require.NoError(t, svc.Update(ctx, want))

		got, err := svc.Settings(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("validation", func(t *testing.T) {
		svc := usecase.NewSettingsService(newFakeOptions())

		tests := []struct {
			name   string
			mutate func(*shared.RecoverySettings)
		}{
			{name: "abandon_minutes below one", mutate: func(s *shared.RecoverySettings) { s.AbandonMinutes = 0 }},
			{name: "retention_days below one", mutate: func(s *shared.RecoverySettings) { s.RetentionDays = 0 }},
			{name: "unknown redirect target", mutate: func(s *shared.RecoverySettings) { s.RestoreRedirect = "homepage" }},
			{name: "non-positive step number", mutate: func(s *shared.RecoverySettings) { s.EmailSteps = map[int]int{0: 1} }},
			{name: "non-positive step delay", mutate: func(s *shared.RecoverySettings) { s.EmailSteps = map[int]int{1: 0} }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				settings := shared.DefaultRecoverySettings()
				tt.mutate(&settings)
				assert.ErrorIs(t, svc.Update(ctx, settings), usecase.ErrInvalidSettings)
			})
		}
	})
}
