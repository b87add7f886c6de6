package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users map[string]User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]User{}}
}

func (m *memoryUserRepo) Create(_ context.Context, user User) error {
	if _, ok := m.users[user.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	user, ok := m.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, _ User) (string, error) { return "token", nil }

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user and returns a token", func(t *testing.T) {
		svc := NewAuthService(newMemoryUserRepo(), staticTokens{})
		result, err := svc.Register(ctx, "user@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", result.User.Email)
		assert.NotEmpty(t, result.User.PasswordHash)
		assert.NotEqual(t, "secret", result.User.PasswordHash)
		assert.Equal(t, "token", result.Token)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewAuthService(newMemoryUserRepo(), staticTokens{})
		_, err := svc.Register(ctx, "user@example.com", "secret")
		require.NoError(t, err)
		_, err = svc.Register(ctx, "user@example.com", "other")
		require.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("email is normalized", func(t *testing.T) {
		svc := NewAuthService(newMemoryUserRepo(), staticTokens{})
		result, err := svc.Register(ctx, "  HR@Example.COM ", "secret")
		require.NoError(t, err)
		assert.Equal(t, "hr@example.com", result.User.Email)

		_, err = svc.Register(ctx, "hr@example.com", "other")
		require.ErrorIs(t, err, ErrUserAlreadyExists)

		_, err = svc.Login(ctx, "HR@example.com", "secret")
		require.NoError(t, err)
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc := NewAuthService(newMemoryUserRepo(), staticTokens{})
		_, err := svc.Register(ctx, "", "secret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = svc.Register(ctx, "user@example.com", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newMemoryUserRepo(), staticTokens{})
	_, err := svc.Register(ctx, "user@example.com", "secret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login(ctx, "user@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "token", result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "user@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "secret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
