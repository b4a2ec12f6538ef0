package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/domain"
)

func TestUserCreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	user := &domain.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "hash",
		IsAdmin:      true,
		IsActive:     true,
	}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "admin@example.com", got.Email)
	assert.True(t, got.IsAdmin)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestUserDuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.User{
		Username: "sam", Email: "sam@example.com", PasswordHash: "h", IsActive: true,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{
		Username: "sam", Email: "other@example.com", PasswordHash: "h", IsActive: true,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.Create(ctx, &domain.User{
		Username: "other", Email: "sam@example.com", PasswordHash: "h", IsActive: true,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserGetMissing(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
