// Package service defines domain-level service interfaces.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for issuing and validating admin tokens.
type TokenService interface {
	// GenerateTokens creates an access and refresh token pair for an admin.
	GenerateTokens(adminID string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}

// PasswordHasher defines password hashing for admin credentials.
type PasswordHasher interface {
	// Hash returns the hash of a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext matches the stored hash.
	Compare(hashedPassword, password string) error
}
