package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tapadmin/config"
	"tapadmin/internal/domain/entity"
	domainerrors "tapadmin/internal/domain/errors"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/infra/auth"
	mockRepo "tapadmin/internal/mocks/repository"
	mockSvc "tapadmin/internal/mocks/service"
	"tapadmin/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
// Tokens are issued and parsed by the real JWT service so refresh semantics
// are exercised against genuine signatures.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	adminRepo   *mockRepo.MockAdminRepository
	enquiryRepo *mockRepo.MockEnquiryRepository
	tokens      service.TokenService
	hasher      *mockSvc.MockPasswordHasher
	cfg         *config.Config
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	adminRepo := mockRepo.NewMockAdminRepository(t)
	enquiryRepo := mockRepo.NewMockEnquiryRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAdminService(adminRepo, enquiryRepo, tokens, hasher, cfg, logger)

	return adminServiceFixtures{
		service:     svc,
		adminRepo:   adminRepo,
		enquiryRepo: enquiryRepo,
		tokens:      tokens,
		hasher:      hasher,
		cfg:         cfg,
	}
}

func TestAdminService_Login_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admin := &entity.AdminUser{
		ID:           "admin-1",
		Email:        "ops@example.com",
		PasswordHash: "$2a$10$hash",
		Roles:        []string{"admin"},
	}

	fx.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "ops@example.com").
		Return(admin, nil)
	fx.hasher.EXPECT().
		Compare("$2a$10$hash", "correct horse").
		Return(nil)
	fx.adminRepo.EXPECT().
		TouchLogin(ctx, "admin-1", mock.AnythingOfType("time.Time")).
		Return(nil)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ops@example.com", Password: "correct horse"})
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestAdminService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAdminNotFound)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.Error(t, err)
	assert.Nil(t, pair)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admin := &entity.AdminUser{ID: "admin-1", Email: "ops@example.com", PasswordHash: "$2a$10$hash"}

	fx.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "ops@example.com").
		Return(admin, nil)
	fx.hasher.EXPECT().
		Compare("$2a$10$hash", "wrong").
		Return(errors.New("hash mismatch"))

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ops@example.com", Password: "wrong"})
	assert.Error(t, err)
	assert.Nil(t, pair)
	// Indistinguishable from an unknown account.
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func TestAdminService_Login_TouchLoginFailureIgnored(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admin := &entity.AdminUser{ID: "admin-1", Email: "ops@example.com", PasswordHash: "$2a$10$hash"}

	fx.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "ops@example.com").
		Return(admin, nil)
	fx.hasher.EXPECT().
		Compare("$2a$10$hash", "correct horse").
		Return(nil)
	fx.adminRepo.EXPECT().
		TouchLogin(ctx, "admin-1", mock.AnythingOfType("time.Time")).
		Return(errors.New("write failed"))

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ops@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestAdminService_Refresh_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	_, refreshToken, err := fx.tokens.GenerateTokens("admin-1", []string{"admin"})
	require.NoError(t, err)

	fx.adminRepo.EXPECT().
		FindAdminByID(ctx, "admin-1").
		Return(&entity.AdminUser{ID: "admin-1", Roles: []string{"admin", "billing"}}, nil)

	pair, err := fx.service.Refresh(ctx, refreshToken)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// The new access token carries the roles read from the store, not the
	// ones baked into the old pair.
	parsed, err := fx.tokens.ValidateToken(pair.AccessToken, fx.cfg.SecretKey.Access)
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin-1", claims["sub"])
	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Len(t, roles, 2)
}

func TestAdminService_Refresh_AccessTokenRejected(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	accessToken, _, err := fx.tokens.GenerateTokens("admin-1", []string{"admin"})
	require.NoError(t, err)

	// Signed with the access secret, so it cannot validate as a refresh token.
	pair, err := fx.service.Refresh(ctx, accessToken)
	assert.Error(t, err)
	assert.Nil(t, pair)
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestAdminService_Refresh_WrongTokenType(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	// Correctly signed with the refresh secret but carrying the wrong type.
	claims := jwt.MapClaims{
		"sub":  "admin-1",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "access",
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(fx.cfg.SecretKey.Refresh))
	require.NoError(t, err)

	pair, err := fx.service.Refresh(ctx, forged)
	assert.Error(t, err)
	assert.Nil(t, pair)
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestAdminService_Refresh_Garbage(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	pair, err := fx.service.Refresh(ctx, "not-a-token")
	assert.Error(t, err)
	assert.Nil(t, pair)
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestAdminService_Refresh_RevokedAdmin(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	_, refreshToken, err := fx.tokens.GenerateTokens("admin-1", []string{"admin"})
	require.NoError(t, err)

	fx.adminRepo.EXPECT().
		FindAdminByID(ctx, "admin-1").
		Return(nil, repository.ErrAdminNotFound)

	pair, err := fx.service.Refresh(ctx, refreshToken)
	assert.Error(t, err)
	assert.Nil(t, pair)
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid, err)
}

func TestAdminService_EnsureBootstrapAdmin_NotConfigured(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	err := fx.service.EnsureBootstrapAdmin(ctx)
	require.NoError(t, err)
}

func TestAdminService_EnsureBootstrapAdmin_AlreadyExists(t *testing.T) {
	fx := createTestAdminService(t)
	fx.cfg.Auth = &config.AuthConfig{
		AdminEmail:        "ops@example.com",
		AdminPasswordHash: "$2a$10$hash",
	}

	ctx := context.Background()
	fx.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "ops@example.com").
		Return(&entity.AdminUser{ID: "admin-1", Email: "ops@example.com"}, nil)

	err := fx.service.EnsureBootstrapAdmin(ctx)
	require.NoError(t, err)
}

func TestAdminService_EnsureBootstrapAdmin_Seeds(t *testing.T) {
	fx := createTestAdminService(t)
	fx.cfg.Auth = &config.AuthConfig{
		AdminEmail:        "ops@example.com",
		AdminPasswordHash: "$2a$10$hash",
	}

	ctx := context.Background()
	fx.adminRepo.EXPECT().
		FindAdminByEmail(ctx, "ops@example.com").
		Return(nil, repository.ErrAdminNotFound)

	var seeded *entity.AdminUser
	fx.adminRepo.EXPECT().
		CreateAdmin(ctx, mock.AnythingOfType("*entity.AdminUser")).
		RunAndReturn(func(_ context.Context, admin *entity.AdminUser) (string, error) {
			seeded = admin

			return "admin-1", nil
		})

	err := fx.service.EnsureBootstrapAdmin(ctx)
	require.NoError(t, err)
	require.NotNil(t, seeded)
	assert.Equal(t, "ops@example.com", seeded.Email)
	assert.Equal(t, "$2a$10$hash", seeded.PasswordHash)
	assert.Equal(t, []string{"admin"}, seeded.Roles)
}

func TestAdminService_ListEnquiries(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	expected := []*entity.Enquiry{
		{ID: "e1", Name: "Alice Wong", Business: "Corner Cafe"},
	}

	fx.enquiryRepo.EXPECT().
		ListEnquiries(ctx).
		Return(expected, nil)

	enquiries, err := fx.service.ListEnquiries(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, enquiries)
}
