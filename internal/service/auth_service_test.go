package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/auth"
	"company-cms/internal/domain"
	"company-cms/internal/repository"
	"company-cms/internal/repository/sqlite"
)

func newAuthService(t *testing.T) (AuthService, *auth.TokenService, repository.UserRepository) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := sqlite.NewUserRepository(db)
	require.NoError(t, users.Init(context.Background()))

	tokens := auth.NewTokenService("test-secret", "company-cms", time.Hour)
	return NewAuthService(users, tokens), tokens, users
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	t.Parallel()

	svc, tokens, _ := newAuthService(t)
	ctx := context.Background()

	first, token, err := svc.Register(ctx, "founder", "founder@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, first.IsAdmin)
	assert.True(t, first.IsActive)
	assert.Empty(t, first.PasswordHash)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "founder", subject)

	second, _, err := svc.Register(ctx, "editor", "editor@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, second.IsAdmin)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "", "a@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = svc.Register(ctx, "user", "not-an-email", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = svc.Register(ctx, "user", "a@example.com", "short")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "sam", "sam@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "sam", "else@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "sam", "sam@example.com", "password123")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "sam", "password123")
	require.NoError(t, err)
	assert.Equal(t, "sam", user.Username)
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "sam", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ghost", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	t.Parallel()

	svc, _, users := newAuthService(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	_, err = users.Create(ctx, &domain.User{
		Username:     "inactive",
		Email:        "inactive@example.com",
		PasswordHash: hash,
		IsActive:     false,
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "inactive", "password123")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestResolveSubject(t *testing.T) {
	t.Parallel()

	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "sam", "sam@example.com", "password123")
	require.NoError(t, err)

	user, err := svc.ResolveSubject(ctx, "sam")
	require.NoError(t, err)
	assert.Equal(t, "sam", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.ResolveSubject(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
