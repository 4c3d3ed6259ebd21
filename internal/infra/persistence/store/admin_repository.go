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

// adminRepository implements repository.AdminRepository.
type adminRepository struct {
	client *firestore.Client
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &adminRepository{client: client}
}

func (repo *adminRepository) FindAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	iter := repo.client.Collection(collectionAdmins).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrAdminNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	var admin entity.AdminUser
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Wrap(err, "failed to decode admin")
	}
	admin.ID = doc.Ref.ID

	return &admin, nil
}

func (repo *adminRepository) FindAdminByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	doc, err := repo.client.Collection(collectionAdmins).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	var admin entity.AdminUser
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Wrap(err, "failed to decode admin")
	}
	admin.ID = doc.Ref.ID

	return &admin, nil
}

func (repo *adminRepository) CreateAdmin(ctx context.Context, admin *entity.AdminUser) (string, error) {
	admin.CreatedAt = time.Now().UTC()

	ref := repo.client.Collection(collectionAdmins).NewDoc()
	if _, err := ref.Set(ctx, admin); err != nil {
		return "", errors.Wrap(err, "failed to create admin")
	}
	admin.ID = ref.ID

	return ref.ID, nil
}

func (repo *adminRepository) TouchLogin(ctx context.Context, id string, at time.Time) error {
	updates := []firestore.Update{{Path: "lastLoginAt", Value: at.UTC()}}
	if _, err := repo.client.Collection(collectionAdmins).Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrAdminNotFound
		}

		return errors.Wrap(err, "failed to touch admin login")
	}

	return nil
}

// enquiryRepository implements repository.EnquiryRepository.
type enquiryRepository struct {
	client *firestore.Client
}

// NewEnquiryRepository is the constructor for enquiryRepository.
func NewEnquiryRepository(client *firestore.Client) repository.EnquiryRepository {
	return &enquiryRepository{client: client}
}

func (repo *enquiryRepository) ListEnquiries(ctx context.Context) ([]*entity.Enquiry, error) {
	iter := repo.client.Collection(collectionEnquiries).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var enquiries []*entity.Enquiry
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list enquiries")
		}

		var enquiry entity.Enquiry
		if err := doc.DataTo(&enquiry); err != nil {
			return nil, errors.Wrapf(err, "failed to decode enquiry %s", doc.Ref.ID)
		}
		enquiry.ID = doc.Ref.ID
		enquiries = append(enquiries, &enquiry)
	}

	return enquiries, nil
}
