package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Test doubles ---

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.Administrator, error) {
	args := m.Called(ctx, email)
	if admin, ok := args.Get(0).(*entity.Administrator); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) Create(ctx context.Context, admin *entity.Administrator) error {
	args := m.Called(ctx, admin)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(adminID uuid.UUID) (string, error) {
	args := m.Called(adminID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

// --- Fixtures ---

type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	adminRepo    *mockAdminRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	t.Helper()

	adminRepo := &mockAdminRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(adminRepo, hasher, tokenService, nil, logger)

	return adminServiceFixtures{
		service:      service,
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// --- Register ---

func TestAdminService_Register_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	input := &usecase.RegisterAdminInput{
		Email:    "a@b.com",
		Password: "password1",
	}

	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, repository.ErrAdminNotFound)
	fx.hasher.On("Hash", "password1").Return("hashed_password", nil)
	fx.adminRepo.On("Create", ctx, mock.AnythingOfType("*entity.Administrator")).
		Run(func(args mock.Arguments) {
			admin := args.Get(1).(*entity.Administrator)
			admin.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "a@b.com", output.Admin.Email)
	assert.Equal(t, "hashed_password", output.Admin.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.Admin.ID)
	fx.adminRepo.AssertExpectations(t)
}

func TestAdminService_Register_NormalizesEmail(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	input := &usecase.RegisterAdminInput{
		Email:    "  Ada@Example.COM  ",
		Password: "password1",
	}

	fx.adminRepo.On("FindByEmail", ctx, "ada@example.com").Return(nil, repository.ErrAdminNotFound)
	fx.hasher.On("Hash", "password1").Return("hashed_password", nil)
	fx.adminRepo.On("Create", ctx, mock.AnythingOfType("*entity.Administrator")).Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", output.Admin.Email)
}

func TestAdminService_Register_MissingFields(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	cases := []*usecase.RegisterAdminInput{
		{Email: "", Password: "password1"},
		{Email: "a@b.com", Password: ""},
		{Email: "   ", Password: "password1"},
	}

	for _, input := range cases {
		output, err := fx.service.Register(ctx, input)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
	}

	// Validation failures never touch the repository.
	fx.adminRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAdminService_Register_InvalidEmailShape(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.adminRepo.On("FindByEmail", ctx, "not-an-email").Return(nil, repository.ErrAdminNotFound)

	output, err := fx.service.Register(ctx, &usecase.RegisterAdminInput{
		Email:    "not-an-email",
		Password: "password1",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInvalid))
}

func TestAdminService_Register_PasswordTooShort(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, repository.ErrAdminNotFound)

	output, err := fx.service.Register(ctx, &usecase.RegisterAdminInput{
		Email:    "a@b.com",
		Password: "short",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAdminService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	existing := &entity.Administrator{ID: uuid.New(), Email: "a@b.com"}
	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(existing, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterAdminInput{
		Email:    "a@b.com",
		Password: "password1",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminAlreadyExists))
	fx.adminRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_Register_DuplicateEmailWinsOverShortPassword(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	// The duplicate lookup runs before shape and length checks, so an
	// already-registered email reports the conflict even when the rest of
	// the input would fail validation.
	existing := &entity.Administrator{ID: uuid.New(), Email: "a@b.com"}
	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(existing, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterAdminInput{
		Email:    "a@b.com",
		Password: "short",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminAlreadyExists))
}

func TestAdminService_Register_DuplicateEmailRace(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	// The pre-check misses the duplicate; the store's unique constraint is
	// the source of truth and reports the conflict at insert time.
	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, repository.ErrAdminNotFound)
	fx.hasher.On("Hash", "password1").Return("hashed_password", nil)
	fx.adminRepo.On("Create", ctx, mock.AnythingOfType("*entity.Administrator")).
		Return(domainerrors.ErrAdminAlreadyExists.WrapMessage("email already exists"))

	output, err := fx.service.Register(ctx, &usecase.RegisterAdminInput{
		Email:    "a@b.com",
		Password: "password1",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminAlreadyExists))
}

func TestAdminService_Register_HashFailure(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, repository.ErrAdminNotFound)
	fx.hasher.On("Hash", "password1").Return("", errors.New("bcrypt: boom"))

	output, err := fx.service.Register(ctx, &usecase.RegisterAdminInput{
		Email:    "a@b.com",
		Password: "password1",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAdminService_Register_UsesRequestScopedLogger(t *testing.T) {
	fx := createTestAdminService(t)

	// A request-scoped logger placed in the context carries the request id;
	// the service must log through it rather than the injected base logger.
	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-123"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, repository.ErrAdminNotFound)
	fx.hasher.On("Hash", "password1").Return("hashed_password", nil)
	fx.adminRepo.On("Create", ctx, mock.AnythingOfType("*entity.Administrator")).Return(nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterAdminInput{
		Email:    "a@b.com",
		Password: "password1",
	})

	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "request_id=req-123"))
	assert.True(t, strings.Contains(buf.String(), "Starting admin registration"))
}

// --- Login ---

func TestAdminService_Login_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	adminID := uuid.New()
	stored := &entity.Administrator{ID: adminID, Email: "a@b.com", PasswordHash: "hashed_password"}

	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(stored, nil)
	fx.hasher.On("Check", "password1", "hashed_password").Return(true)
	fx.tokenService.On("GenerateAccessToken", adminID).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "a@b.com",
		Password: "password1",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, adminID, output.Admin.ID)
	fx.tokenService.AssertExpectations(t)
}

func TestAdminService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	stored := &entity.Administrator{ID: uuid.New(), Email: "a@b.com", PasswordHash: "hashed_password"}

	fx.adminRepo.On("FindByEmail", ctx, "missing@b.com").Return(nil, repository.ErrAdminNotFound)
	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(stored, nil)
	fx.hasher.On("Check", "wrong", "hashed_password").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "missing@b.com", Password: "wrong"})
	_, mismatchErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, mismatchErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(mismatchErr, domainerrors.ErrInvalidCredentials))

	// Same underlying AppError means the same status code and message text.
	var unknownApp, mismatchApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(mismatchErr, &mismatchApp))
	assert.Equal(t, unknownApp.HTTPCode(), mismatchApp.HTTPCode())
	assert.Equal(t, unknownApp.Message(), mismatchApp.Message())
}

func TestAdminService_Login_MissingFields(t *testing.T) {
	fx := createTestAdminService(t)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.com"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
}

func TestAdminService_Login_StoreUnavailableIsNotCredentialFailure(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, errors.New("connection refused"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "password1"})

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAdminService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	adminID := uuid.New()
	stored := &entity.Administrator{ID: adminID, Email: "a@b.com", PasswordHash: "hashed_password"}

	fx.adminRepo.On("FindByEmail", ctx, "a@b.com").Return(stored, nil)
	fx.hasher.On("Check", "password1", "hashed_password").Return(true)
	fx.tokenService.On("GenerateAccessToken", adminID).Return("", errors.New("no signer"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "password1"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenGenerationFailed))
}
