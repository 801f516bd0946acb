package preview

import (
	"fmt"
	"log/slog"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/attrdoc/internal/config"
)

// refreshScheduler wraps gocron for the periodic full refresh. The
// watcher handles the common case; the schedule catches changes the
// watcher cannot see, such as new directories matching a glob.
type refreshScheduler struct {
	scheduler gocron.Scheduler
}

func startRefreshScheduler(cfg config.PreviewConfig, refresh func()) (*refreshScheduler, error) {
	interval, err := cfg.RefreshIntervalDuration()
	if err != nil {
		return nil, err
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create refresh scheduler: %w", err)
	}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(refresh),
		gocron.WithName("preview-refresh"),
	)
	if err != nil {
		return nil, fmt.Errorf("create refresh job: %w", err)
	}

	s.Start()
	slog.Info("Scheduled periodic preview refresh", "interval", interval.String())
	return &refreshScheduler{scheduler: s}, nil
}

// Stop gracefully shuts down the scheduler.
func (r *refreshScheduler) Stop() error {
	return r.scheduler.Shutdown()
}
