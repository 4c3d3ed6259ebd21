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

// merchantRepository implements repository.MerchantRepository.
type merchantRepository struct {
	client *firestore.Client
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(client *firestore.Client) repository.MerchantRepository {
	return &merchantRepository{client: client}
}

func (repo *merchantRepository) CreateMerchant(ctx context.Context, merchant *entity.Merchant) (string, error) {
	now := time.Now().UTC()
	merchant.CreatedAt = now
	merchant.LastUpdated = now

	ref := repo.client.Collection(collectionMerchants).NewDoc()
	if _, err := ref.Set(ctx, merchant); err != nil {
		return "", errors.Wrap(err, "failed to create merchant")
	}
	merchant.ID = ref.ID

	return ref.ID, nil
}

func (repo *merchantRepository) FindMerchantByID(ctx context.Context, id string) (*entity.Merchant, error) {
	doc, err := repo.client.Collection(collectionMerchants).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	var merchant entity.Merchant
	if err := doc.DataTo(&merchant); err != nil {
		return nil, errors.Wrap(err, "failed to decode merchant")
	}
	merchant.ID = doc.Ref.ID

	return &merchant, nil
}

func (repo *merchantRepository) ListMerchants(ctx context.Context) ([]*entity.Merchant, error) {
	iter := repo.client.Collection(collectionMerchants).Documents(ctx)
	defer iter.Stop()

	var merchants []*entity.Merchant
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list merchants")
		}

		var merchant entity.Merchant
		if err := doc.DataTo(&merchant); err != nil {
			return nil, errors.Wrapf(err, "failed to decode merchant %s", doc.Ref.ID)
		}
		merchant.ID = doc.Ref.ID
		merchants = append(merchants, &merchant)
	}

	return merchants, nil
}

func (repo *merchantRepository) UpdateMerchant(ctx context.Context, id string, updates []repository.FieldUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	fsUpdates := toFirestoreUpdates(updates)
	fsUpdates = append(fsUpdates, firestore.Update{Path: "lastUpdated", Value: time.Now().UTC()})

	if _, err := repo.client.Collection(collectionMerchants).Doc(id).Update(ctx, fsUpdates); err != nil {
		if isNotFound(err) {
			return repository.ErrMerchantNotFound
		}

		return errors.Wrap(err, "failed to update merchant")
	}

	return nil
}

func (repo *merchantRepository) DeleteMerchant(ctx context.Context, id string) error {
	ref := repo.client.Collection(collectionMerchants).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrMerchantNotFound
		}

		return errors.Wrap(err, "failed to load merchant before delete")
	}

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete merchant")
	}

	return nil
}

func (repo *merchantRepository) ListMerchantCustomers(ctx context.Context, merchantID string) ([]*entity.MerchantCustomer, error) {
	iter := repo.client.Collection(collectionMerchants).Doc(merchantID).Collection(collectionCustomers).Documents(ctx)
	defer iter.Stop()

	var customers []*entity.MerchantCustomer
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list customers of merchant %s", merchantID)
		}

		var customer entity.MerchantCustomer
		if err := doc.DataTo(&customer); err != nil {
			return nil, errors.Wrapf(err, "failed to decode merchant customer %s", doc.Ref.ID)
		}
		customer.CustomerID = doc.Ref.ID
		customers = append(customers, &customer)
	}

	return customers, nil
}

func (repo *merchantRepository) FindMerchantCustomer(ctx context.Context, merchantID, customerID string) (*entity.MerchantCustomer, error) {
	doc, err := repo.client.Collection(collectionMerchants).Doc(merchantID).
		Collection(collectionCustomers).Doc(customerID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMerchantCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant customer")
	}

	var customer entity.MerchantCustomer
	if err := doc.DataTo(&customer); err != nil {
		return nil, errors.Wrap(err, "failed to decode merchant customer")
	}
	customer.CustomerID = doc.Ref.ID

	return &customer, nil
}

func (repo *merchantRepository) SetMerchantCustomerTier(ctx context.Context, merchantID, customerID, tier string) error {
	ref := repo.client.Collection(collectionMerchants).Doc(merchantID).
		Collection(collectionCustomers).Doc(customerID)

	if _, err := ref.Update(ctx, []firestore.Update{{Path: "membershipTier", Value: tier}}); err != nil {
		if isNotFound(err) {
			return repository.ErrMerchantCustomerNotFound
		}

		return errors.Wrap(err, "failed to set merchant customer tier")
	}

	return nil
}
