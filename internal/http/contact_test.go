package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/cache"
)

func TestContactSubmission(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, cache.NewNoop())

	body := gin.H{
		"name":    "Dana",
		"phone":   "021-555-0101",
		"email":   "dana@example.com",
		"message": "Please send a quote for a topographic survey.",
	}
	rec := env.do(t, http.MethodPost, "/api/contact", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[contactResponse](t, rec)
	assert.Equal(t, "new", created.Status)
	assert.NotEmpty(t, created.IPAddress)

	// Validation failures.
	bad := gin.H{"name": "Dana", "phone": "021-555-0101", "email": "dana@example.com", "message": "short"}
	rec = env.do(t, http.MethodPost, "/api/contact", bad, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	bad = gin.H{"name": "Dana", "phone": "1", "email": "dana@example.com", "message": "long enough message"}
	rec = env.do(t, http.MethodPost, "/api/contact", bad, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactAdminFlow(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, cache.NewNoop())
	admin := env.registerUser(t, "admin")

	body := gin.H{
		"name":    "Dana",
		"phone":   "021-555-0101",
		"email":   "dana@example.com",
		"message": "Please send a quote for a topographic survey.",
	}
	rec := env.do(t, http.MethodPost, "/api/contact", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	// Submissions are admin-only.
	rec = env.do(t, http.MethodGet, "/api/admin/contact-submissions", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/admin/contact-submissions", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]contactResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].Status)

	// Reading the detail flips new to read.
	rec = env.do(t, http.MethodGet, "/api/admin/contact-submissions/1", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "read", decode[contactResponse](t, rec).Status)

	rec = env.do(t, http.MethodPatch, "/api/admin/contact-submissions/1/status", gin.H{
		"status": "replied",
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "replied", decode[contactResponse](t, rec).Status)

	rec = env.do(t, http.MethodPatch, "/api/admin/contact-submissions/1/status", gin.H{
		"status": "bogus",
	}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/admin/contact-submissions?status=replied", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]contactResponse](t, rec), 1)

	rec = env.do(t, http.MethodGet, "/api/admin/contact-submissions?status=wrong", nil, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Paging bounds.
	rec = env.do(t, http.MethodGet, "/api/admin/contact-submissions?limit=200", nil, admin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/admin/contact-submissions?limit=201", nil, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/admin/contact-submissions?limit=0", nil, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/admin/contact-submissions/1", nil, admin)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/admin/contact-submissions/1", nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
