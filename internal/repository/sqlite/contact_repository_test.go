package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/domain"
)

func newSubmission(name string) *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:    name,
		Phone:   "021-555-0101",
		Email:   name + "@example.com",
		Message: "I would like a quote for a survey.",
	}
}

func TestContactCreateDefaultsToNew(t *testing.T) {
	t.Parallel()

	repo := NewContactRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	sub := newSubmission("alex")
	sub.IPAddress = "203.0.113.9"
	sub.UserAgent = "curl/8.0"

	id, err := repo.Create(ctx, sub)
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusNew, got.Status)
	assert.Equal(t, "203.0.113.9", got.IPAddress)
	assert.Equal(t, "curl/8.0", got.UserAgent)
	assert.False(t, got.SubmittedAt.IsZero())
}

func TestContactCreateValidation(t *testing.T) {
	t.Parallel()

	repo := NewContactRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	bad := newSubmission("alex")
	bad.Message = "too short"
	_, err := repo.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = newSubmission("alex")
	bad.Phone = "123"
	_, err = repo.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactStatusFlow(t *testing.T) {
	t.Parallel()

	repo := NewContactRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	id, err := repo.Create(ctx, newSubmission("dana"))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, id, domain.ContactStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusReplied, updated.Status)

	_, err = repo.UpdateStatus(ctx, id, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = repo.UpdateStatus(ctx, 999, domain.ContactStatusRead)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactListByStatus(t *testing.T) {
	t.Parallel()

	repo := NewContactRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	first, err := repo.Create(ctx, newSubmission("one"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newSubmission("two"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, first, domain.ContactStatusArchived)
	require.NoError(t, err)

	archived, err := repo.List(ctx, domain.ContactFilter{Status: domain.ContactStatusArchived})
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "one", archived[0].Name)

	all, err := repo.List(ctx, domain.ContactFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	limited, err := repo.List(ctx, domain.ContactFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestContactDelete(t *testing.T) {
	t.Parallel()

	repo := NewContactRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	id, err := repo.Create(ctx, newSubmission("gone"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrNotFound)

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
