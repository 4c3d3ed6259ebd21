package usecase

import (
	"context"

	"tapadmin/internal/domain/entity"
)

// RewardListResult is the merged three-location reward view. A pass that
// fails wholesale (for example, the global scan) is reported in Failures and
// the rows from the passes that did succeed are still returned.
type RewardListResult struct {
	Rows     []entity.RewardRow `json:"rows"`
	Failures []string           `json:"failures,omitempty"`
}

// RewardUsecase defines operations over the merged reward view.
type RewardUsecase interface {
	// ListRewards merges the global, merchant and customer reward locations
	// into one provenance-tagged list, filtered and sorted.
	ListRewards(ctx context.Context, query ListQuery) (*RewardListResult, error)

	// UpdateRewardField applies one targeted field edit to the single
	// physical document addressed by collectionPath.
	UpdateRewardField(ctx context.Context, collectionPath, path string, value any) error

	// DeleteReward removes the document at collectionPath only; sibling
	// copies in the other locations are untouched.
	DeleteReward(ctx context.Context, collectionPath string) error

	// DeleteRewards deletes the addressed copies concurrently and reports
	// per-item failures.
	DeleteRewards(ctx context.Context, collectionPaths []string) (*BulkDeleteReport, error)
}
