package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/errors"
)

// membershipRepository implements repository.MembershipRepository.
type membershipRepository struct {
	client *firestore.Client
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(client *firestore.Client) repository.MembershipRepository {
	return &membershipRepository{client: client}
}

func (repo *membershipRepository) tiers(merchantID string) *firestore.CollectionRef {
	return repo.client.Collection(collectionMerchants).Doc(merchantID).Collection(collectionMemberships)
}

func (repo *membershipRepository) ListTiers(ctx context.Context, merchantID string) ([]*entity.MembershipTier, error) {
	iter := repo.tiers(merchantID).OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var tiers []*entity.MembershipTier
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list tiers of merchant %s", merchantID)
		}

		var tier entity.MembershipTier
		if err := doc.DataTo(&tier); err != nil {
			return nil, errors.Wrapf(err, "failed to decode tier %s", doc.Ref.ID)
		}
		tier.ID = doc.Ref.ID
		tiers = append(tiers, &tier)
	}

	return tiers, nil
}

func (repo *membershipRepository) FindTierByID(ctx context.Context, merchantID, tierID string) (*entity.MembershipTier, error) {
	doc, err := repo.tiers(merchantID).Doc(tierID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrTierNotFound
		}

		return nil, errors.Wrap(err, "failed to find tier by ID")
	}

	var tier entity.MembershipTier
	if err := doc.DataTo(&tier); err != nil {
		return nil, errors.Wrap(err, "failed to decode tier")
	}
	tier.ID = doc.Ref.ID

	return &tier, nil
}

func (repo *membershipRepository) UpsertTier(ctx context.Context, merchantID string, tier *entity.MembershipTier) error {
	ref := repo.tiers(merchantID).NewDoc()
	if tier.ID != "" {
		ref = repo.tiers(merchantID).Doc(tier.ID)
	}

	now := time.Now().UTC()
	if tier.CreatedAt.IsZero() {
		tier.CreatedAt = now
	}
	tier.UpdatedAt = now

	if _, err := ref.Set(ctx, tier); err != nil {
		return errors.Wrapf(err, "failed to upsert tier for merchant %s", merchantID)
	}
	tier.ID = ref.ID

	return nil
}

func (repo *membershipRepository) DeleteTier(ctx context.Context, merchantID, tierID string) error {
	ref := repo.tiers(merchantID).Doc(tierID)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrTierNotFound
		}

		return errors.Wrap(err, "failed to load tier before delete")
	}

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete tier")
	}

	return nil
}
