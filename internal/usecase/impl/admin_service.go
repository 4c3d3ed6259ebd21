package impl

import (
	"context"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"tapadmin/config"
	"tapadmin/internal/domain/entity"
	domainerrors "tapadmin/internal/domain/errors"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/errors"
	"tapadmin/internal/usecase"
)

type adminService struct {
	adminRepo   repository.AdminRepository
	enquiryRepo repository.EnquiryRepository
	tokens      service.TokenService
	hasher      service.PasswordHasher
	cfg         *config.Config
	logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	adminRepo repository.AdminRepository,
	enquiryRepo repository.EnquiryRepository,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		adminRepo:   adminRepo,
		enquiryRepo: enquiryRepo,
		tokens:      tokens,
		hasher:      hasher,
		cfg:         cfg,
		logger:      logger,
	}
}

func (srv *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPair, error) {
	admin, err := srv.adminRepo.FindAdminByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			// Same error as a wrong password; callers cannot probe for accounts.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	if err := srv.hasher.Compare(admin.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, refresh, err := srv.tokens.GenerateTokens(admin.ID, admin.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.adminRepo.TouchLogin(ctx, admin.ID, timeNow()); err != nil {
		srv.logger.Warn("failed to stamp last login",
			slog.String("admin_id", admin.ID),
			slog.Any("error", err),
		)
	}

	return &usecase.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (srv *adminService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	token, err := srv.tokens.ValidateToken(refreshToken, srv.cfg.SecretKey.Refresh)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	adminID, _ := claims["sub"].(string)
	if adminID == "" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	// Re-read the account so revoked admins stop refreshing and role
	// changes land on the next access token.
	admin, err := srv.findAdminByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	access, refresh, err := srv.tokens.GenerateTokens(admin.ID, admin.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (srv *adminService) EnsureBootstrapAdmin(ctx context.Context) error {
	if srv.cfg.Auth == nil || srv.cfg.Auth.AdminEmail == "" || srv.cfg.Auth.AdminPasswordHash == "" {
		return nil
	}

	_, err := srv.adminRepo.FindAdminByEmail(ctx, srv.cfg.Auth.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check bootstrap admin")
	}

	admin := &entity.AdminUser{
		Email:        srv.cfg.Auth.AdminEmail,
		PasswordHash: srv.cfg.Auth.AdminPasswordHash,
		Roles:        []string{"admin"},
		CreatedAt:    timeNow(),
	}
	id, err := srv.adminRepo.CreateAdmin(ctx, admin)
	if err != nil {
		return errors.Wrap(err, "failed to seed bootstrap admin")
	}

	srv.logger.Info("seeded bootstrap admin",
		slog.String("admin_id", id),
		slog.String("email", admin.Email),
	)

	return nil
}

func (srv *adminService) ListEnquiries(ctx context.Context) ([]*entity.Enquiry, error) {
	enquiries, err := srv.enquiryRepo.ListEnquiries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enquiries")
	}

	return enquiries, nil
}

func (srv *adminService) findAdminByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	admin, err := srv.adminRepo.FindAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	return admin, nil
}
