// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"warden/config"
	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/usecase"

	"github.com/pkg/errors"
)

const defaultMinPasswordLength = 8

// emailShape is the basic local@domain check applied before a lookup or
// insert. Anything stricter belongs to a verification email, not a regex.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// adminService implements the AdminUsecase interface.
type adminService struct {
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	minPasswordLength int
}

// NewAdminService is the constructor for adminService. It receives all dependencies as interfaces.
func NewAdminService(
	adminRepo repository.AdminRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	minLen := defaultMinPasswordLength
	if cfg != nil && cfg.Auth != nil && cfg.Auth.MinPasswordLength > 0 {
		minLen = cfg.Auth.MinPasswordLength
	}

	return &adminService{
		adminRepo:         adminRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		logger:            logger,
		minPasswordLength: minLen,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the administrator registration process: presence
// check, duplicate lookup, shape and length checks, hashing, then a single
// typed insert.
func (srv *adminService) Register(ctx context.Context, input *usecase.RegisterAdminInput) (*usecase.RegisterOutput, error) {
	email, err := srv.validateCredentials(input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting admin registration", "email", email)

	// Existence pre-check. This is an optimization for a friendly error; the
	// unique constraint in the store decides the race between two concurrent
	// registrations for the same email. A duplicate email reports the
	// conflict even when the rest of the input would fail validation.
	_, err = srv.adminRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrAdminAlreadyExists.WrapMessage("admin registration failed")
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return nil, errors.Wrap(err, "failed to find administrator by email")
	}

	if !emailShape.MatchString(email) {
		return nil, domainerrors.ErrEmailInvalid.WrapMessage("registration failed")
	}
	if len(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort.WrapMessage("registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newAdmin := &entity.Administrator{
		FullName:     strings.TrimSpace(input.FullName),
		Username:     strings.TrimSpace(input.Username),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := srv.adminRepo.Create(ctx, newAdmin); err != nil {
		srv.log(ctx).Error("Failed to create administrator", "error", err, "email", email)

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("Admin registered successfully", "adminID", newAdmin.ID)

	return &usecase.RegisterOutput{Admin: newAdmin}, nil
}

// Login orchestrates the administrator login process. A missing account and a
// wrong password produce the same error so the endpoint leaks nothing about
// which emails exist.
func (srv *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email, err := srv.validateCredentials(input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting admin login", "email", email)

	admin, err := srv.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		// Store unavailability is an internal failure, not a credential
		// failure; let it surface as a 500 rather than a misleading 401.
		return nil, errors.Wrap(err, "failed to find administrator by email")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(admin.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", "error", err, "adminID", admin.ID)

		return nil, domainerrors.ErrTokenGenerationFailed.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("Admin logged in successfully", "adminID", admin.ID)

	return &usecase.LoginOutput{
		Admin:       admin,
		AccessToken: accessToken,
	}, nil
}

// validateCredentials normalizes the email and enforces presence of both
// fields. The normalized email is what every lookup and insert uses.
func (srv *adminService) validateCredentials(email, password string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" || password == "" {
		return "", domainerrors.ErrMissingCredentials.WrapMessage("credential validation failed")
	}

	return normalized, nil
}
