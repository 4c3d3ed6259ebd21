package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tapadmin/config"
	"tapadmin/internal/domain/entity"
	"tapadmin/internal/infra/metrics"
	mocksusecase "tapadmin/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type schedulerFixtures struct {
	server *schedulerServer
	jobs   *mocksusecase.MockJobUsecase
}

func createTestScheduler(t *testing.T, cfg *config.Config) schedulerFixtures {
	jobs := mocksusecase.NewMockJobUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return schedulerFixtures{
		server: &schedulerServer{
			cfg:      cfg,
			logger:   logger,
			jobs:     jobs,
			registry: metrics.Registry("test"),
			stopped:  make(chan struct{}),
		},
		jobs: jobs,
	}
}

func TestScheduler_Serve_Disabled(t *testing.T) {
	fx := createTestScheduler(t, &config.Config{})

	err := fx.server.Serve(context.Background())

	require.NoError(t, err)
}

func TestScheduler_Tick_RunsDueJobs(t *testing.T) {
	cfg := &config.Config{Scheduler: &config.SchedulerConfig{Enabled: true}}
	fx := createTestScheduler(t, cfg)

	ctx := context.Background()
	now := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)

	fx.jobs.EXPECT().
		RunDueJobs(ctx, now).
		Return([]*entity.JobRun{
			{JobID: "job-1", Succeeded: true, ItemsDone: 3},
			{JobID: "job-2", Succeeded: false, Error: "merchant scan failed"},
		}, nil)

	fx.server.tick(ctx, now)
}

func TestScheduler_Tick_SweepFailure(t *testing.T) {
	cfg := &config.Config{Scheduler: &config.SchedulerConfig{Enabled: true}}
	fx := createTestScheduler(t, cfg)

	ctx := context.Background()
	now := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)

	fx.jobs.EXPECT().
		RunDueJobs(ctx, now).
		Return(nil, errors.New("job list unavailable"))

	fx.server.tick(ctx, now)
}

func TestScheduler_Serve_StopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{Scheduler: &config.SchedulerConfig{Enabled: true, TickInterval: time.Hour}}
	fx := createTestScheduler(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- fx.server.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
