package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/errors"
)

// customerRepository implements repository.CustomerRepository.
type customerRepository struct {
	client *firestore.Client
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(client *firestore.Client) repository.CustomerRepository {
	return &customerRepository{client: client}
}

func (repo *customerRepository) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	iter := repo.client.Collection(collectionCustomers).Documents(ctx)
	defer iter.Stop()

	var customers []*entity.Customer
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list customers")
		}

		var customer entity.Customer
		if err := doc.DataTo(&customer); err != nil {
			return nil, errors.Wrapf(err, "failed to decode customer %s", doc.Ref.ID)
		}
		customer.ID = doc.Ref.ID
		customers = append(customers, &customer)
	}

	return customers, nil
}

func (repo *customerRepository) FindCustomerByID(ctx context.Context, id string) (*entity.Customer, error) {
	doc, err := repo.client.Collection(collectionCustomers).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	var customer entity.Customer
	if err := doc.DataTo(&customer); err != nil {
		return nil, errors.Wrap(err, "failed to decode customer")
	}
	customer.ID = doc.Ref.ID

	return &customer, nil
}

func (repo *customerRepository) UpdateCustomer(ctx context.Context, id string, updates []repository.FieldUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	if _, err := repo.client.Collection(collectionCustomers).Doc(id).Update(ctx, toFirestoreUpdates(updates)); err != nil {
		if isNotFound(err) {
			return repository.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to update customer")
	}

	return nil
}

func (repo *customerRepository) DeleteCustomer(ctx context.Context, id string) error {
	ref := repo.client.Collection(collectionCustomers).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to load customer before delete")
	}

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}

	return nil
}

func (repo *customerRepository) ListTransactions(ctx context.Context, customerID string, limit int) ([]*entity.TransactionRecord, error) {
	query := repo.client.Collection(collectionCustomers).Doc(customerID).
		Collection(subTransactions).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*entity.TransactionRecord
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list transactions of customer %s", customerID)
		}

		var record entity.TransactionRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, errors.Wrapf(err, "failed to decode transaction %s", doc.Ref.ID)
		}
		record.ID = doc.Ref.ID
		records = append(records, &record)
	}

	return records, nil
}

func (repo *customerRepository) ListRedemptions(ctx context.Context, customerID string, limit int) ([]*entity.RedemptionRecord, error) {
	query := repo.client.Collection(collectionCustomers).Doc(customerID).
		Collection(subRedemptions).
		OrderBy("redemptionDate", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*entity.RedemptionRecord
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list redemptions of customer %s", customerID)
		}

		var record entity.RedemptionRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, errors.Wrapf(err, "failed to decode redemption %s", doc.Ref.ID)
		}
		record.ID = doc.Ref.ID
		records = append(records, &record)
	}

	return records, nil
}
