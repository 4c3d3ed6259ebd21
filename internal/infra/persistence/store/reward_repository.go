package store

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/errors"
)

// rewardRepository implements repository.RewardRepository and
// repository.AtomicRewardWriter.
type rewardRepository struct {
	client *firestore.Client
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(client *firestore.Client) repository.RewardRepository {
	return &rewardRepository{client: client}
}

// NewAtomicRewardWriter exposes the same store as the transactional write
// primitive used by the program builders.
func NewAtomicRewardWriter(client *firestore.Client) repository.AtomicRewardWriter {
	return &rewardRepository{client: client}
}

func (repo *rewardRepository) ListGlobalRewards(ctx context.Context) ([]*entity.Reward, error) {
	return repo.scanRewards(ctx, repo.client.Collection(collectionRewards), "failed to list global rewards")
}

func (repo *rewardRepository) ListMerchantRewards(ctx context.Context, merchantID string) ([]*entity.Reward, error) {
	ref := repo.client.Collection(collectionMerchants).Doc(merchantID).Collection(collectionRewards)

	return repo.scanRewards(ctx, ref, "failed to list rewards of merchant "+merchantID)
}

func (repo *rewardRepository) ListCustomerRewards(ctx context.Context, customerID string) ([]*entity.Reward, error) {
	ref := repo.client.Collection(collectionCustomers).Doc(customerID).Collection(collectionRewards)

	return repo.scanRewards(ctx, ref, "failed to list rewards of customer "+customerID)
}

func (repo *rewardRepository) scanRewards(ctx context.Context, ref *firestore.CollectionRef, failMsg string) ([]*entity.Reward, error) {
	iter := ref.Documents(ctx)
	defer iter.Stop()

	var rewards []*entity.Reward
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, failMsg)
		}

		var reward entity.Reward
		if err := doc.DataTo(&reward); err != nil {
			return nil, errors.Wrapf(err, "failed to decode reward %s", doc.Ref.ID)
		}
		reward.ID = doc.Ref.ID
		rewards = append(rewards, &reward)
	}

	return rewards, nil
}

func (repo *rewardRepository) DeleteAtPath(ctx context.Context, collectionPath string) error {
	ref, err := repo.rewardDocRef(collectionPath)
	if err != nil {
		return err
	}

	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrRewardNotFound
		}

		return errors.Wrapf(err, "failed to load reward at %s", collectionPath)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete reward at %s", collectionPath)
	}

	return nil
}

func (repo *rewardRepository) UpdateAtPath(ctx context.Context, collectionPath string, updates []repository.FieldUpdate) error {
	ref, err := repo.rewardDocRef(collectionPath)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	if _, err := ref.Update(ctx, toFirestoreUpdates(updates)); err != nil {
		if isNotFound(err) {
			return repository.ErrRewardNotFound
		}

		return errors.Wrapf(err, "failed to update reward at %s", collectionPath)
	}

	return nil
}

// rewardDocRef resolves a synthesized collection path to the one physical
// document it addresses. Only the three known location shapes are accepted.
func (repo *rewardRepository) rewardDocRef(collectionPath string) (*firestore.DocumentRef, error) {
	segments, err := splitRewardPath(collectionPath)
	if err != nil {
		return nil, err
	}

	switch len(segments) {
	case 2:
		return repo.client.Collection(collectionRewards).Doc(segments[1]), nil
	default:
		return repo.client.Collection(segments[0]).Doc(segments[1]).
			Collection(collectionRewards).Doc(segments[3]), nil
	}
}

// splitRewardPath validates that a path names one of the three reward
// locations: rewards/{id}, merchants/{mid}/rewards/{id} or
// customers/{cid}/rewards/{id}.
func splitRewardPath(collectionPath string) ([]string, error) {
	segments := strings.Split(strings.Trim(collectionPath, "/"), "/")
	switch len(segments) {
	case 2:
		if segments[0] != collectionRewards || segments[1] == "" {
			return nil, repository.ErrInvalidRewardPath
		}
	case 4:
		if segments[0] != collectionMerchants && segments[0] != collectionCustomers {
			return nil, repository.ErrInvalidRewardPath
		}
		if segments[2] != collectionRewards || segments[1] == "" || segments[3] == "" {
			return nil, repository.ErrInvalidRewardPath
		}
	default:
		return nil, repository.ErrInvalidRewardPath
	}

	return segments, nil
}

func (repo *rewardRepository) NewRewardID() string {
	return repo.client.Collection(collectionRewards).NewDoc().ID
}

// CreateReward commits every copy of the reward and the merchant patch in
// one transaction. The precondition runs against the merchant document read
// inside the transaction, so caps hold under concurrent builders.
func (repo *rewardRepository) CreateReward(ctx context.Context, write *repository.RewardWrite) error {
	if write.MerchantID == "" {
		return errors.New("reward write requires a merchant id")
	}
	if write.Reward != nil && write.RewardID == "" {
		return errors.New("reward write requires an id")
	}

	merchantRef := repo.client.Collection(collectionMerchants).Doc(write.MerchantID)

	return repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(merchantRef)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrMerchantNotFound
			}

			return errors.Wrap(err, "failed to load merchant in reward transaction")
		}

		var merchant entity.Merchant
		if err := doc.DataTo(&merchant); err != nil {
			return errors.Wrap(err, "failed to decode merchant in reward transaction")
		}
		merchant.ID = doc.Ref.ID

		if write.Precondition != nil {
			if err := write.Precondition(&merchant); err != nil {
				return err
			}
		}

		if write.Reward != nil {
			if err := tx.Set(merchantRef.Collection(collectionRewards).Doc(write.RewardID), write.Reward); err != nil {
				return errors.Wrap(err, "failed to stage merchant reward copy")
			}
			if write.WriteGlobal {
				if err := tx.Set(repo.client.Collection(collectionRewards).Doc(write.RewardID), write.Reward); err != nil {
					return errors.Wrap(err, "failed to stage global reward copy")
				}
			}
			for _, customerID := range write.CustomerIDs {
				ref := repo.client.Collection(collectionCustomers).Doc(customerID).
					Collection(collectionRewards).Doc(write.RewardID)
				if err := tx.Set(ref, write.Reward); err != nil {
					return errors.Wrapf(err, "failed to stage customer reward copy for %s", customerID)
				}
			}
		}

		if len(write.MerchantFields) > 0 {
			if err := tx.Update(merchantRef, toFirestoreUpdates(write.MerchantFields)); err != nil {
				return errors.Wrap(err, "failed to stage merchant patch")
			}
		}

		return nil
	})
}
