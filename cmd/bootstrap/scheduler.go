package bootstrap

import (
	"context"

	"cart-recovery/internal/scheduler"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		scheduler.New,
	),
	fx.Invoke(startScheduler),
)

func startScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sched.Start()
		},
		OnStop: func(_ context.Context) error {
			sched.Stop()
			return nil
		},
	})
}
