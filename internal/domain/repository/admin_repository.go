package repository

import (
	"context"
	"time"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/errors"
)

// ErrAdminNotFound is returned when no administrator matches the email.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines console administrator operations.
type AdminRepository interface {
	// FindAdminByEmail retrieves an administrator by email.
	FindAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error)

	// FindAdminByID retrieves an administrator by document id.
	FindAdminByID(ctx context.Context, id string) (*entity.AdminUser, error)

	// CreateAdmin persists a new administrator and returns its id.
	CreateAdmin(ctx context.Context, admin *entity.AdminUser) (string, error)

	// TouchLogin stamps the last successful login time.
	TouchLogin(ctx context.Context, id string, at time.Time) error
}

// EnquiryRepository lists merchant onboarding enquiries.
type EnquiryRepository interface {
	// ListEnquiries scans the merchantenquiry collection, newest first.
	ListEnquiries(ctx context.Context) ([]*entity.Enquiry, error)
}
