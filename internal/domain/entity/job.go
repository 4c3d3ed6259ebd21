package entity

import "time"

// JobKind selects the typed operation a scheduled job performs.
type JobKind string

const (
	// JobKindRewardGeneration asks the agent to draft a personalized reward
	// for each affiliated customer of the target merchant.
	JobKindRewardGeneration JobKind = "rewardGeneration"
	// JobKindTierRecalculation reassigns membership tiers from the current
	// merchant-relative stats.
	JobKindTierRecalculation JobKind = "tierRecalculation"
	// JobKindAggregateRefresh rebuilds the cached customer aggregates.
	JobKindAggregateRefresh JobKind = "aggregateRefresh"
)

// JobSpec is a typed scheduled-job document in the `adminjobs` collection.
// Schedule is a five-field cron expression evaluated in Timezone. The spec
// describes what to run; it never embeds executable code.
type JobSpec struct {
	ID             string            `firestore:"-" json:"id"`
	Name           string            `firestore:"name" json:"name"`
	Description    string            `firestore:"description" json:"description"`
	Kind           JobKind           `firestore:"kind" json:"kind"`
	Schedule       string            `firestore:"schedule" json:"schedule"`
	Timezone       string            `firestore:"timezone" json:"timezone"`
	MemoryMB       int               `firestore:"memoryMb" json:"memoryMb"`
	TimeoutSeconds int               `firestore:"timeoutSeconds" json:"timeoutSeconds"`
	SecretNames    []string          `firestore:"secretNames" json:"secretNames,omitempty"`
	Enabled        bool              `firestore:"enabled" json:"enabled"`
	Params         map[string]string `firestore:"params" json:"params,omitempty"`
	CreatedAt      time.Time         `firestore:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time         `firestore:"updatedAt" json:"updatedAt"`
	LastRunAt      *time.Time        `firestore:"lastRunAt" json:"lastRunAt,omitempty"`
	LastRunStatus  string            `firestore:"lastRunStatus" json:"lastRunStatus,omitempty"`
	LastRunError   string            `firestore:"lastRunError" json:"lastRunError,omitempty"`
}

// JobRun summarizes one execution of a job.
type JobRun struct {
	JobID      string        `json:"jobId"`
	Kind       JobKind       `json:"kind"`
	StartedAt  time.Time     `json:"startedAt"`
	Duration   time.Duration `json:"duration"`
	Succeeded  bool          `json:"succeeded"`
	Error      string        `json:"error,omitempty"`
	ItemsTotal int           `json:"itemsTotal"`
	ItemsDone  int           `json:"itemsDone"`
}
