// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibell/store-backend/internal/config"
	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/repository"
	"github.com/decibell/store-backend/internal/storage"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	users := repository.NewUserRepository(storage.Open(t.TempDir()))
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
	return NewAuthService(users, cfg), users
}

func TestRegisterAndLogin(t *testing.T) {
	service, users := newAuthService(t)

	resp, err := service.Register(&RegisterRequest{
		Username: "joana_s",
		Email:    "joana@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.User.ID)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	// The stored hash is never the plain password.
	stored, err := users.GetByEmail("joana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngPass", stored.PasswordHash)

	login, err := service.Login(&LoginRequest{Email: "joana@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = service.Login(&LoginRequest{Email: "joana@example.com", Password: "WrongPass1"})
	assert.EqualError(t, err, "invalid email or password")
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(&RegisterRequest{Username: "joana_s", Email: "joana@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)

	_, err = service.Register(&RegisterRequest{Username: "other", Email: "joana@example.com", Password: "Str0ngPass"})
	assert.EqualError(t, err, "user with this email already exists")

	_, err = service.Register(&RegisterRequest{Username: "joana_s", Email: "new@example.com", Password: "Str0ngPass"})
	assert.EqualError(t, err, "username already taken")
}

func TestRegisterValidation(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(&RegisterRequest{Username: "joana_s", Email: "joana@example.com", Password: "weak"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRefreshToken(t *testing.T) {
	service, _ := newAuthService(t)

	resp, err := service.Register(&RegisterRequest{Username: "joana_s", Email: "joana@example.com", Password: "Str0ngPass"})
	require.NoError(t, err)

	refreshed, err := service.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	_, err = service.RefreshToken("not-a-token")
	assert.Error(t, err)
}
