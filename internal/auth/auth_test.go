package auth_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:       "test-signing-key",
		SessionTokenTTL: 60,
		VerifyTokenTTL:  60,
		ResetTokenTTL:   30,
	}
}

func testUser() *models.User {
	hash, _ := HashPassword("correct horse battery staple")
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FirstName: "Dana",
		LastName:  "Cole",
		Email:     "dana@example.com",
		Password:  hash,
		IsActive:  true,
	}
}

func TestJWTOperations(t *testing.T) {
	service := NewAuthService(testConfig(), nil)
	user := testUser()

	t.Run("round trip keeps identity", func(t *testing.T) {
		token, err := service.GenerateToken(user, PurposeSession, time.Hour)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token, PurposeSession)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, PurposeSession, claims.Purpose)
	})

	t.Run("purpose mismatch rejected", func(t *testing.T) {
		token, err := service.GenerateToken(user, PurposeSession, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token, PurposeReset)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

		_, err = service.ValidateToken(token, PurposeVerify)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, err := service.GenerateToken(user, PurposeSession, -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token, PurposeSession)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, err := service.GenerateToken(user, PurposeSession, time.Hour)
		require.NoError(t, err)

		other := NewAuthService(&AuthConfig{JWTSecret: "different-key"}, nil)
		_, err = other.ValidateToken(token, PurposeSession)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.jwt", PurposeSession)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := testUser()
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

		service := NewAuthService(testConfig(), userRepo)
		token, loggedIn, err := service.Login(user.Email, "correct horse battery staple")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, loggedIn.ID)

		claims, err := service.ValidateToken(token, PurposeSession)
		require.NoError(t, err)
		assert.Equal(t, PurposeSession, claims.Purpose)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := testUser()
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

		service := NewAuthService(testConfig(), userRepo)
		_, _, err := service.Login(user.Email, "guess")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		userRepo.EXPECT().GetByEmail("ghost@example.com").Return(nil, apperrors.ErrUserNotFound)

		service := NewAuthService(testConfig(), userRepo)
		_, _, err := service.Login("ghost@example.com", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unconfirmed account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := testUser()
		user.IsActive = false
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

		service := NewAuthService(testConfig(), userRepo)
		_, _, err := service.Login(user.Email, "correct horse battery staple")
		assert.ErrorIs(t, err, apperrors.ErrAccountNotActive)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-enough")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-enough", hash)

	assert.NoError(t, CheckPassword(hash, "s3cret-enough"))
	assert.Error(t, CheckPassword(hash, "s3cret-wrong"))
}

func TestLoadAuthConfig(t *testing.T) {
	t.Run("reads file and applies defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "auth.yaml")
		require.NoError(t, os.WriteFile(path, []byte("jwt_secret: file-secret\n"), 0600))

		config, err := LoadAuthConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "file-secret", config.JWTSecret)
		assert.Equal(t, 12*60, config.SessionTokenTTL)
		assert.Equal(t, 60, config.VerifyTokenTTL)
		assert.Equal(t, 30, config.ResetTokenTTL)
	})

	t.Run("environment secret wins", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "auth.yaml")
		require.NoError(t, os.WriteFile(path, []byte("jwt_secret: file-secret\n"), 0600))

		t.Setenv("JWT_SECRET", "env-secret")
		config, err := LoadAuthConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "env-secret", config.JWTSecret)
	})

	t.Run("missing secret fails", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "auth.yaml")
		require.NoError(t, os.WriteFile(path, []byte("session_token_ttl: 10\n"), 0600))

		t.Setenv("JWT_SECRET", "")
		_, err := LoadAuthConfig(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "jwt_secret is required")
	})
}

func TestUserFromClaims(t *testing.T) {
	t.Run("loads the referenced user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := testUser()
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		userRepo.EXPECT().GetByID(user.ID).Return(user, nil)

		service := NewAuthService(testConfig(), userRepo)
		loaded, err := service.UserFromClaims(&Claims{UserID: user.ID.String()})
		require.NoError(t, err)
		assert.Equal(t, user.Email, loaded.Email)
	})

	t.Run("malformed subject rejected", func(t *testing.T) {
		service := NewAuthService(testConfig(), nil)
		_, err := service.UserFromClaims(&Claims{UserID: "not-a-uuid"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
