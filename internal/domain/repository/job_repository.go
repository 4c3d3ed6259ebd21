package repository

import (
	"context"
	"time"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/errors"
)

// ErrJobNotFound is returned when a job spec document is missing.
var ErrJobNotFound = errors.New("job not found")

// JobRepository defines typed scheduled-job spec operations.
type JobRepository interface {
	// ListJobs scans the adminjobs collection.
	ListJobs(ctx context.Context) ([]*entity.JobSpec, error)

	// FindJobByID retrieves one job spec.
	FindJobByID(ctx context.Context, id string) (*entity.JobSpec, error)

	// CreateJob persists a new spec with an auto-generated id and returns it.
	CreateJob(ctx context.Context, job *entity.JobSpec) (string, error)

	// UpdateJob applies targeted field updates to a job spec.
	UpdateJob(ctx context.Context, id string, updates []FieldUpdate) error

	// DeleteJob removes a job spec.
	DeleteJob(ctx context.Context, id string) error

	// RecordRun stamps the outcome of an execution onto the spec.
	RecordRun(ctx context.Context, id string, at time.Time, status, runErr string) error
}
