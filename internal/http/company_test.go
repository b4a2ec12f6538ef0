package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/cache"
)

func TestCompanyInfo(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, cache.NewNoop())
	admin := env.registerUser(t, "admin")

	// First read lazily creates a blank singleton.
	rec := env.do(t, http.MethodGet, "/api/company-info", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[companyInfoResponse](t, rec).Name)

	rec = env.do(t, http.MethodPut, "/api/admin/company-info", gin.H{
		"name":         "Acme Geomatics",
		"founded_year": 2004,
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[companyInfoResponse](t, rec)
	assert.Equal(t, "Acme Geomatics", updated.Name)
	assert.Equal(t, 2004, updated.FoundedYear)

	// Partial update keeps existing values.
	rec = env.do(t, http.MethodPut, "/api/admin/company-info", gin.H{
		"address_city": "Tehran",
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	updated = decode[companyInfoResponse](t, rec)
	assert.Equal(t, "Acme Geomatics", updated.Name)
	assert.Equal(t, "Tehran", updated.AddressCity)

	rec = env.do(t, http.MethodPut, "/api/admin/company-info", gin.H{
		"email": "not-an-email",
	}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/admin/company-info", gin.H{"name": "X"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStatistics(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, cache.NewNoop())
	admin := env.registerUser(t, "admin")

	rec := env.do(t, http.MethodGet, "/api/statistics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[statisticsResponse](t, rec)
	assert.Equal(t, 1000, stats.AnnualProjects)
	assert.Equal(t, 9, stats.ServiceTypes)
	assert.Equal(t, 90, stats.Employees)
	assert.Equal(t, 100, stats.SatisfiedClients)

	rec = env.do(t, http.MethodPut, "/api/admin/statistics", gin.H{
		"employees": 120,
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	stats = decode[statisticsResponse](t, rec)
	assert.Equal(t, 120, stats.Employees)
	assert.Equal(t, 1000, stats.AnnualProjects)

	rec = env.do(t, http.MethodPut, "/api/admin/statistics", gin.H{
		"employees": -5,
	}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
