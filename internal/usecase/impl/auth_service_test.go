package impl

import (
	"context"
	"testing"

	"chapel/internal/domain/entity"
	domainerrors "chapel/internal/domain/errors"
	"chapel/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *fakeUserRepo
	hasher   *fakeHasher
	tokens   *fakeTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	hasher := &fakeHasher{}
	tokens := &fakeTokenService{}

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       testLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	user, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "grace@example.com",
		Username: "grace",
		Password: "sufficiently long",
		FullName: "Grace Kim",
	})

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "grace@example.com", user.Email)
	assert.Equal(t, "hashed:sufficiently long", user.HashedPassword)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
}

func TestAuthService_Register_EmailConflict(t *testing.T) {
	fx := createTestAuthService(t)
	fx.userRepo.add(&entity.User{Email: "taken@example.com", Username: "someone"})

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "taken@example.com",
		Username: "newcomer",
		Password: "sufficiently long",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrEmailAlreadyRegistered.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Register_UsernameConflict(t *testing.T) {
	fx := createTestAuthService(t)
	fx.userRepo.add(&entity.User{Email: "other@example.com", Username: "taken"})

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "new@example.com",
		Username: "taken",
		Password: "sufficiently long",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUsernameTaken.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Register_HasherFailure(t *testing.T) {
	fx := createTestAuthService(t)
	fx.hasher.failHash = true

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "grace@example.com",
		Username: "grace",
		Password: "sufficiently long",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPasswordHashFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	fx.userRepo.add(&entity.User{
		Username:       "grace",
		HashedPassword: "hashed:sufficiently long",
		IsActive:       true,
	})

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "grace",
		Password: "sufficiently long",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-1", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestAuthService(t)
	fx.userRepo.add(&entity.User{
		Username:       "grace",
		HashedPassword: "hashed:right password",
	})

	_, unknownErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "nobody",
		Password: "whatever",
	})
	_, wrongErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "grace",
		Password: "wrong password",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongErr, &wrongApp)

	// The response must not reveal whether the username exists.
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), unknownApp.ErrorCode())
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokens.failGenerate = true
	fx.userRepo.add(&entity.User{
		Username:       "grace",
		HashedPassword: "hashed:sufficiently long",
	})

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "grace",
		Password: "sufficiently long",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errTokenUnavailable)
}

func TestAuthService_GetUser(t *testing.T) {
	fx := createTestAuthService(t)
	stored := fx.userRepo.add(&entity.User{Username: "grace", IsAdmin: true})

	user, err := fx.service.GetUser(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)

	_, err = fx.service.GetUser(context.Background(), 404)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
}
