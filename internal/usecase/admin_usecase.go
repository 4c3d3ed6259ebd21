package usecase

import (
	"context"

	"tapadmin/internal/domain/entity"
)

// TokenPair is the issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginInput carries admin credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminUsecase defines console authentication and admin-facing reads.
type AdminUsecase interface {
	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*TokenPair, error)

	// Refresh exchanges a valid refresh token for a new pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// EnsureBootstrapAdmin seeds the configured administrator when the
	// admins collection has no matching account yet.
	EnsureBootstrapAdmin(ctx context.Context) error

	// ListEnquiries returns merchant onboarding enquiries, newest first.
	ListEnquiries(ctx context.Context) ([]*entity.Enquiry, error)
}
