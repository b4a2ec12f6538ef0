package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/domain"
)

func TestCompanyInfoLazyCreate(t *testing.T) {
	t.Parallel()

	repo := NewCompanyInfoRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	info, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, info.Name)
	require.Positive(t, info.ID)

	// Second read returns the same row, not another blank one.
	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, info.ID, again.ID)
}

func TestCompanyInfoUpdate(t *testing.T) {
	t.Parallel()

	repo := NewCompanyInfoRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	name := "Acme Geomatics"
	year := 2004
	updated, err := repo.Update(ctx, domain.CompanyInfoPatch{Name: &name, FoundedYear: &year})
	require.NoError(t, err)
	assert.Equal(t, "Acme Geomatics", updated.Name)
	assert.Equal(t, 2004, updated.FoundedYear)

	city := "Tehran"
	updated, err = repo.Update(ctx, domain.CompanyInfoPatch{AddressCity: &city})
	require.NoError(t, err)
	assert.Equal(t, "Acme Geomatics", updated.Name)
	assert.Equal(t, "Tehran", updated.AddressCity)

	bad := "not-an-email"
	_, err = repo.Update(ctx, domain.CompanyInfoPatch{Email: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatisticsSeedsDefaults(t *testing.T) {
	t.Parallel()

	repo := NewStatisticsRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	stats, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1000, stats.AnnualProjects)
	assert.Equal(t, 9, stats.ServiceTypes)
	assert.Equal(t, 90, stats.Employees)
	assert.Equal(t, 100, stats.SatisfiedClients)
}

func TestStatisticsUpdate(t *testing.T) {
	t.Parallel()

	repo := NewStatisticsRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	employees := 120
	updated, err := repo.Update(ctx, domain.StatisticsPatch{Employees: &employees})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.Employees)
	assert.Equal(t, 1000, updated.AnnualProjects)

	negative := -1
	_, err = repo.Update(ctx, domain.StatisticsPatch{Employees: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
