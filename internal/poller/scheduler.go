package poller

import (
	"context"
	"time"

	"namada_governance_bot/configs"

	"github.com/go-co-op/gocron"
)

// Schedule registers the poll cycle on the scheduler. A tick is skipped
// while the previous one is still running.
func Schedule(ctx context.Context, scheduler *gocron.Scheduler, cycle *PollCycle, config configs.Poll) (*gocron.Job, error) {
	return scheduler.
		Every(config.Interval).
		StartAt(time.Now().Add(config.FirstRunDelay)).
		SingletonMode().
		Do(func() {
			_ = cycle.Run(ctx)
		})
}
