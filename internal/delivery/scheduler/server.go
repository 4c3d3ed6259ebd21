// Package scheduler runs enabled job specs on their cron schedules.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"tapadmin/config"
	"tapadmin/internal/delivery"
	"tapadmin/internal/infra/metrics"
	"tapadmin/internal/usecase"

	"go.uber.org/fx"
)

const defaultTickInterval = time.Minute

type schedulerServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	jobs     usecase.JobUsecase
	registry *metrics.Metrics
	stopped  chan struct{}
}

// ServerParams holds dependencies for the job scheduler.
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Jobs     usecase.JobUsecase
	Registry *metrics.Metrics
}

// NewServer creates the polling job scheduler.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &schedulerServer{
		cfg:      params.Cfg,
		logger:   params.Logger,
		jobs:     params.Jobs,
		registry: params.Registry,
		stopped:  make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve polls for due jobs once per tick. Each tick evaluates every enabled
// spec against the wall clock in the spec's own timezone, so a slow previous
// tick can never double-fire a schedule.
func (s *schedulerServer) Serve(ctx context.Context) error {
	if s.cfg.Scheduler == nil || !s.cfg.Scheduler.Enabled {
		s.logger.Info("Job scheduler disabled")

		return nil
	}

	interval := s.cfg.Scheduler.TickInterval
	if interval <= 0 {
		interval = defaultTickInterval
	}

	s.logger.Info("Starting job scheduler", slog.Duration("tickInterval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopped:
			return nil
		case now := <-ticker.C:
			s.tick(ctx, now)
		}
	}
}

func (s *schedulerServer) tick(ctx context.Context, now time.Time) {
	s.registry.SchedulerTicks.Inc()

	runs, err := s.jobs.RunDueJobs(ctx, now)
	if err != nil {
		s.logger.Error("Due-job sweep failed", slog.Any("error", err))

		return
	}

	for _, run := range runs {
		status := "succeeded"
		if !run.Succeeded {
			status = "failed"
		}

		s.registry.JobRuns.WithLabelValues(status).Inc()
		s.logger.Info("Scheduled job finished",
			slog.String("jobId", run.JobID),
			slog.String("status", status),
			slog.Int("itemsDone", run.ItemsDone),
		)
	}
}

func (s *schedulerServer) stop(ctx context.Context) error {
	close(s.stopped)

	return nil
}
