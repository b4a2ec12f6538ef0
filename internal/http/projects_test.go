package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/cache"
)

func TestProjectFilters(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, cache.NewNoop())
	admin := env.registerUser(t, "admin")

	rec := env.do(t, http.MethodPost, "/api/projects", gin.H{
		"title_en":    "Metro Station Survey",
		"category":    "infrastructure",
		"is_featured": true,
		"sort_order":  2,
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/projects", gin.H{
		"title_en":   "Office Tower Model",
		"category":   "buildings",
		"sort_order": 1,
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/projects", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[[]projectResponse](t, rec)
	require.Len(t, all, 2)
	// sort_order ascending.
	assert.Equal(t, "Office Tower Model", all[0].TitleEN)

	rec = env.do(t, http.MethodGet, "/api/projects?featured=true", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	featured := decode[[]projectResponse](t, rec)
	require.Len(t, featured, 1)
	assert.Equal(t, "Metro Station Survey", featured[0].TitleEN)

	rec = env.do(t, http.MethodGet, "/api/projects?category=buildings", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]projectResponse](t, rec), 1)

	rec = env.do(t, http.MethodGet, "/api/projects?featured=maybe", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
