package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"tapadmin/internal/domain/constants"
	"tapadmin/internal/domain/entity"
	domainerrors "tapadmin/internal/domain/errors"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/errors"
	"tapadmin/internal/usecase"
)

type membershipService struct {
	membershipRepo repository.MembershipRepository
	merchantRepo   repository.MerchantRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// NewMembershipService is the constructor for membershipService.
func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	merchantRepo repository.MerchantRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MembershipUsecase {
	return &membershipService{
		membershipRepo: membershipRepo,
		merchantRepo:   merchantRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

// ListTiers returns the merchant's tiers with customer counts derived by a
// case-insensitive scan over the merchant's customer subdocuments.
func (srv *membershipService) ListTiers(ctx context.Context, merchantID string) ([]*entity.MembershipTier, error) {
	tiers, err := srv.membershipRepo.ListTiers(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tiers")
	}

	customers, err := srv.merchantRepo.ListMerchantCustomers(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant customers for tier counts")
	}

	for _, tier := range tiers {
		for _, customer := range customers {
			if strings.EqualFold(customer.MembershipTier, tier.Name) {
				tier.CustomerCount++
			}
		}
	}

	return tiers, nil
}

// SaveTier creates or updates a tier. The Bronze baseline is immutable: it
// cannot be renamed, conditioned or replaced.
func (srv *membershipService) SaveTier(ctx context.Context, merchantID string, input *usecase.TierInput) (*entity.MembershipTier, error) {
	if input.Name != entity.TierBronze && input.Name != entity.TierSilver && input.Name != entity.TierGold {
		return nil, domainerrors.NewValidationError("Tier name must be Bronze, Silver or Gold")
	}
	if input.Name == entity.TierBronze && anyConditionEnabled(input.Conditions) {
		return nil, domainerrors.ErrTierImmutable
	}

	if input.ID != "" {
		existing, err := srv.membershipRepo.FindTierByID(ctx, merchantID, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrTierNotFound) {
				return nil, domainerrors.ErrTierNotFound
			}

			return nil, errors.Wrap(err, "failed to load tier")
		}
		if existing.Name == entity.TierBronze && input.Name != entity.TierBronze {
			return nil, domainerrors.ErrTierImmutable
		}
	}

	tier := &entity.MembershipTier{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Order:       input.Order,
		IsActive:    input.IsActive,
		Conditions:  input.Conditions,
	}
	if err := srv.membershipRepo.UpsertTier(ctx, merchantID, tier); err != nil {
		return nil, errors.Wrap(err, "failed to save tier")
	}

	srv.publishTierEvent(ctx, constants.EventTierSaved, merchantID, tier.ID)

	return tier, nil
}

// DeleteTier removes a tier; the Bronze baseline cannot be deleted.
func (srv *membershipService) DeleteTier(ctx context.Context, merchantID, tierID string) error {
	tier, err := srv.membershipRepo.FindTierByID(ctx, merchantID, tierID)
	if err != nil {
		if errors.Is(err, repository.ErrTierNotFound) {
			return domainerrors.ErrTierNotFound
		}

		return errors.Wrap(err, "failed to load tier")
	}
	if tier.Name == entity.TierBronze {
		return domainerrors.ErrTierImmutable
	}

	if err := srv.membershipRepo.DeleteTier(ctx, merchantID, tierID); err != nil {
		return errors.Wrap(err, "failed to delete tier")
	}

	srv.publishTierEvent(ctx, constants.EventTierDeleted, merchantID, tierID)

	return nil
}

// RecalculateTiers reassigns every customer of the merchant to the highest
// active tier they qualify for.
func (srv *membershipService) RecalculateTiers(ctx context.Context, merchantID string) ([]usecase.TierChange, error) {
	tiers, err := srv.membershipRepo.ListTiers(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tiers")
	}

	active := make([]*entity.MembershipTier, 0, len(tiers))
	for _, tier := range tiers {
		if tier.IsActive {
			active = append(active, tier)
		}
	}
	// Highest order first so the first qualifying tier wins.
	sort.Slice(active, func(a, b int) bool { return active[a].Order > active[b].Order })

	customers, err := srv.merchantRepo.ListMerchantCustomers(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant customers")
	}

	var changes []usecase.TierChange
	for _, customer := range customers {
		target := entity.TierBronze
		for _, tier := range active {
			if tier.Qualifies(customer.TotalLifetimeSpend, customer.LifetimeTransactionCount, customer.RedemptionCount) {
				target = tier.Name

				break
			}
		}

		if strings.EqualFold(customer.MembershipTier, target) {
			continue
		}
		if err := srv.merchantRepo.SetMerchantCustomerTier(ctx, merchantID, customer.CustomerID, target); err != nil {
			srv.logger.Warn("failed to move customer tier",
				slog.String("merchant_id", merchantID),
				slog.String("customer_id", customer.CustomerID),
				slog.Any("error", err),
			)

			continue
		}
		changes = append(changes, usecase.TierChange{
			CustomerID: customer.CustomerID,
			From:       customer.MembershipTier,
			To:         target,
		})
	}

	return changes, nil
}

func anyConditionEnabled(c entity.TierConditions) bool {
	return c.LifetimeTransactions.Enabled || c.LifetimeSpend.Enabled || c.NumberOfRedemptions.Enabled
}

func (srv *membershipService) publishTierEvent(ctx context.Context, eventType, merchantID, tierID string) {
	event := &service.AdminEvent{
		EventType:  eventType,
		MerchantID: merchantID,
		EntityID:   tierID,
		OccurredAt: timeNow(),
	}
	if err := srv.publisher.PublishAdminEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish admin event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}
