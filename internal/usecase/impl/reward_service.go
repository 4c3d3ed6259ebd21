package impl

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"tapadmin/internal/domain/constants"
	"tapadmin/internal/domain/entity"
	domainerrors "tapadmin/internal/domain/errors"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/domain/view"
	"tapadmin/internal/errors"
	"tapadmin/internal/usecase"
	"tapadmin/internal/util"
)

type rewardService struct {
	rewardRepo   repository.RewardRepository
	merchantRepo repository.MerchantRepository
	customerRepo repository.CustomerRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewRewardService is the constructor for rewardService.
func NewRewardService(
	rewardRepo repository.RewardRepository,
	merchantRepo repository.MerchantRepository,
	customerRepo repository.CustomerRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.RewardUsecase {
	return &rewardService{
		rewardRepo:   rewardRepo,
		merchantRepo: merchantRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// ListRewards merges the three reward locations. Each pass has its own
// failure boundary: a failing pass (or a failing parent within a pass) is
// reported and skipped without aborting the others.
func (srv *rewardService) ListRewards(ctx context.Context, query usecase.ListQuery) (*usecase.RewardListResult, error) {
	result := &usecase.RewardListResult{}

	// Pass 1: global collection.
	globals, err := srv.rewardRepo.ListGlobalRewards(ctx)
	if err != nil {
		srv.logger.Warn("global reward pass failed", slog.Any("error", err))
		result.Failures = append(result.Failures, "global: "+err.Error())
	}
	for _, reward := range globals {
		result.Rows = append(result.Rows, entity.RewardRow{
			Reward:         *reward,
			DisplayID:      reward.ID,
			Source:         entity.RewardSourceGlobal,
			CollectionPath: "rewards/" + reward.ID,
			CreatedAtISO:   util.NormalizeTimestamp(reward.CreatedAt),
		})
	}

	// Pass 2: merchant subcollections. Per-parent sub-reads fan out with a
	// bounded group; scans land in a slice indexed by parent so the merge
	// order stays deterministic regardless of completion order.
	merchants, err := srv.merchantRepo.ListMerchants(ctx)
	if err != nil {
		srv.logger.Warn("merchant reward pass failed", slog.Any("error", err))
		result.Failures = append(result.Failures, "merchants: "+err.Error())
	}

	var mu sync.Mutex
	merchantScans := make([][]*entity.Reward, len(merchants))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(aggregationConcurrency)
	for i, merchant := range merchants {
		group.Go(func() error {
			rewards, scanErr := srv.rewardRepo.ListMerchantRewards(groupCtx, merchant.ID)
			if scanErr != nil {
				srv.logger.Warn("skipping merchant in reward merge",
					slog.String("merchant_id", merchant.ID),
					slog.Any("error", scanErr),
				)
				mu.Lock()
				result.Failures = append(result.Failures, "merchant "+merchant.ID+": "+scanErr.Error())
				mu.Unlock()

				return nil
			}
			merchantScans[i] = rewards

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "merchant reward fan-out")
	}

	for i, merchant := range merchants {
		for _, reward := range merchantScans[i] {
			result.Rows = append(result.Rows, entity.RewardRow{
				Reward:         *reward,
				DisplayID:      merchant.ID + "-" + reward.ID,
				Source:         entity.RewardSourceMerchant,
				CollectionPath: "merchants/" + merchant.ID + "/rewards/" + reward.ID,
				MerchantName:   merchant.DisplayName(),
				CreatedAtISO:   util.NormalizeTimestamp(reward.CreatedAt),
			})
		}
	}

	// Pass 3: customer subcollections, same fan-out shape.
	customers, err := srv.customerRepo.ListCustomers(ctx)
	if err != nil {
		srv.logger.Warn("customer reward pass failed", slog.Any("error", err))
		result.Failures = append(result.Failures, "customers: "+err.Error())
	}

	customerScans := make([][]*entity.Reward, len(customers))

	group, groupCtx = errgroup.WithContext(ctx)
	group.SetLimit(aggregationConcurrency)
	for i, customer := range customers {
		group.Go(func() error {
			rewards, scanErr := srv.rewardRepo.ListCustomerRewards(groupCtx, customer.ID)
			if scanErr != nil {
				srv.logger.Warn("skipping customer in reward merge",
					slog.String("customer_id", customer.ID),
					slog.Any("error", scanErr),
				)
				mu.Lock()
				result.Failures = append(result.Failures, "customer "+customer.ID+": "+scanErr.Error())
				mu.Unlock()

				return nil
			}
			customerScans[i] = rewards

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "customer reward fan-out")
	}

	for i, customer := range customers {
		for _, reward := range customerScans[i] {
			result.Rows = append(result.Rows, entity.RewardRow{
				Reward:         *reward,
				DisplayID:      customer.ID + "-" + reward.ID,
				Source:         entity.RewardSourceCustomer,
				CollectionPath: "customers/" + customer.ID + "/rewards/" + reward.ID,
				CustomerName:   customer.DisplayName(),
				CreatedAtISO:   util.NormalizeTimestamp(reward.CreatedAt),
			})
		}
	}

	if query.Search != "" {
		filtered := result.Rows[:0]
		for _, row := range result.Rows {
			if view.Matches(query.Search, view.RewardSearchFields(row)...) {
				filtered = append(filtered, row)
			}
		}
		result.Rows = filtered
	}

	sortKey := query.SortKey
	if sortKey == "" {
		sortKey = "rewardName"
	}
	view.Sort(result.Rows, sortKey, query.Direction(), func(row entity.RewardRow, key string) any {
		return view.RewardSortValue(row, key)
	})

	return result, nil
}

func (srv *rewardService) UpdateRewardField(ctx context.Context, collectionPath, path string, value any) error {
	if path == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("field path is required")
	}

	err := srv.rewardRepo.UpdateAtPath(ctx, collectionPath, []repository.FieldUpdate{{Path: path, Value: value}})
	if err != nil {
		return srv.mapPathError(err, "failed to update reward field")
	}

	srv.publishRewardEvent(ctx, constants.EventRewardUpdated, collectionPath)

	return nil
}

func (srv *rewardService) DeleteReward(ctx context.Context, collectionPath string) error {
	if err := srv.rewardRepo.DeleteAtPath(ctx, collectionPath); err != nil {
		return srv.mapPathError(err, "failed to delete reward")
	}

	srv.publishRewardEvent(ctx, constants.EventRewardDeleted, collectionPath)

	return nil
}

func (srv *rewardService) DeleteRewards(ctx context.Context, collectionPaths []string) (*usecase.BulkDeleteReport, error) {
	report := &usecase.BulkDeleteReport{
		Requested: len(collectionPaths),
		Failed:    make(map[string]string),
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(bulkDeleteConcurrency)

	for _, path := range collectionPaths {
		group.Go(func() error {
			err := srv.rewardRepo.DeleteAtPath(groupCtx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed[path] = err.Error()
			} else {
				report.Deleted++
			}

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "bulk delete rewards")
	}

	if report.Deleted > 0 {
		srv.publishRewardEvent(ctx, constants.EventRewardDeleted, "")
	}

	return report, nil
}

func (srv *rewardService) mapPathError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrInvalidRewardPath):
		return domainerrors.ErrInvalidCollectionPath
	case errors.Is(err, repository.ErrRewardNotFound):
		return domainerrors.ErrRewardNotFound
	default:
		return errors.Wrap(err, msg)
	}
}

func (srv *rewardService) publishRewardEvent(ctx context.Context, eventType, entityID string) {
	event := &service.AdminEvent{
		EventType:  eventType,
		EntityID:   entityID,
		OccurredAt: timeNow(),
	}
	if err := srv.publisher.PublishAdminEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish admin event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}
