package usecase

import (
	"context"
	"time"

	"tapadmin/internal/domain/entity"
)

// JobInput creates or updates a scheduled job spec.
type JobInput struct {
	Name           string            `json:"name" validate:"required"`
	Description    string            `json:"description"`
	Kind           entity.JobKind    `json:"kind" validate:"required,oneof=rewardGeneration tierRecalculation aggregateRefresh"`
	Schedule       string            `json:"schedule" validate:"required"`
	Timezone       string            `json:"timezone"`
	MemoryMB       int               `json:"memoryMb" validate:"gte=0"`
	TimeoutSeconds int               `json:"timeoutSeconds" validate:"gte=0"`
	SecretNames    []string          `json:"secretNames"`
	Enabled        bool              `json:"enabled"`
	Params         map[string]string `json:"params"`
}

// JobUsecase defines scheduled-job administration and execution.
type JobUsecase interface {
	// ListJobs returns every job spec.
	ListJobs(ctx context.Context) ([]*entity.JobSpec, error)

	// GetJob retrieves one job spec.
	GetJob(ctx context.Context, id string) (*entity.JobSpec, error)

	// CreateJob validates the cron schedule and timezone and persists the
	// spec, returning its id.
	CreateJob(ctx context.Context, input *JobInput) (string, error)

	// UpdateJob replaces the mutable fields of a spec.
	UpdateJob(ctx context.Context, id string, input *JobInput) error

	// DeleteJob removes a spec.
	DeleteJob(ctx context.Context, id string) error

	// RunJob executes one job immediately, regardless of its schedule, and
	// records the outcome on the spec.
	RunJob(ctx context.Context, id string) (*entity.JobRun, error)

	// RunDueJobs executes every enabled job whose schedule fires at the
	// given instant (evaluated in each job's timezone).
	RunDueJobs(ctx context.Context, now time.Time) ([]*entity.JobRun, error)
}
