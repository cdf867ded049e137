package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cart-recovery/internal/pkg/config"
	"cart-recovery/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// Scheduler invokes the cart sweep on a recurring cadence. The first run is
// deliberately skewed by a startup delay so a fleet-wide deploy does not
// fire every instance's sweep at the same instant.
type Scheduler struct {
	sweep    commands.SweepCommands
	interval time.Duration
	delay    time.Duration

	cron       *cron.Cron
	startTimer *time.Timer
	mu         sync.Mutex
	running    bool
}

func New(sweep commands.SweepCommands, cfg config.Config) *Scheduler {
	return &Scheduler{
		sweep:    sweep,
		interval: cfg.Recovery.SweepInterval,
		delay:    cfg.Recovery.SweepStartupDelay,
		cron:     cron.New(),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every "+s.interval.String(), s.run); err != nil {
		return err
	}

	s.startTimer = time.AfterFunc(s.delay, s.run)
	s.cron.Start()
	slog.Info("cart sweep scheduled", "interval", s.interval, "startup_delay", s.delay)
	return nil
}

// Stop halts future runs. A sweep killed mid-run is safe: every sweep is
// idempotent and the next run re-evaluates the same predicates.
func (s *Scheduler) Stop() {
	if s.startTimer != nil {
		s.startTimer.Stop()
	}
	<-s.cron.Stop().Done()
}

// run serializes sweep invocations; an overrunning sweep causes the next
// tick to be skipped rather than stacked.
func (s *Scheduler) run() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		slog.Warn("cart sweep still running, skipping tick")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	report, err := s.sweep.RunSweep(ctx)
	if err != nil {
		slog.Error("cart sweep failed", "error", err)
		return
	}
	slog.Info("cart sweep completed",
		"abandoned", report.Abandoned,
		"expired", report.Expired,
		"purged", report.Purged,
		"emails_sent", report.EmailsSent,
	)
}
