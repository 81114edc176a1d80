package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/config"
	"github.com/lunaalencar/juridico-api/internal/models"
	"github.com/lunaalencar/juridico-api/internal/repository"
)

type mockUserRepo struct {
	repository.UserRepository
	mockFindByUsername func(ctx context.Context, username string) (*models.User, error)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.mockFindByUsername(ctx, username)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 24}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	mockRepo := &mockUserRepo{
		mockFindByUsername: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{Username: username, Status: models.StatusInactive}, nil
		},
	}
	service := NewAuthService(mockRepo, testConfig())

	result, err := service.Login(context.Background(), "dra.luna", "password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mockRepo := &mockUserRepo{
		mockFindByUsername: func(ctx context.Context, username string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := NewAuthService(mockRepo, testConfig())

	result, err := service.Login(context.Background(), "nobody", "password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := &mockUserRepo{
		mockFindByUsername: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{
				Username:          username,
				Status:            models.StatusActive,
				EncryptedPassword: string(hash),
			}, nil
		},
	}
	service := NewAuthService(mockRepo, testConfig())

	result, err := service.Login(context.Background(), "dra.luna", "wrong-password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := &mockUserRepo{
		mockFindByUsername: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{
				ID:                4,
				Username:          username,
				Status:            models.StatusActive,
				Role:              models.RoleSecretaria,
				EncryptedPassword: string(hash),
			}, nil
		},
	}
	service := NewAuthService(mockRepo, testConfig())

	result, err := service.Login(context.Background(), "dra.luna", "secret1")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, uint(4), result.User.ID)
}
