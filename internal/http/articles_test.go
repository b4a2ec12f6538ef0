package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/cache"
)

func createArticle(t *testing.T, env *testEnv, token, slug string, published bool, tags string) articleResponse {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/api/articles", gin.H{
		"title_en":     "Title " + slug,
		"slug":         slug,
		"summary_en":   "Summary",
		"content_en":   "Content body",
		"tags":         tags,
		"is_published": published,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[articleResponse](t, rec)
}

func TestArticleListAndDetail(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, cache.NewNoop())
	admin := env.registerUser(t, "admin")

	createArticle(t, env, admin, "published-post", true, "bim, gis")
	createArticle(t, env, admin, "draft-post", false, "")

	rec := env.do(t, http.MethodGet, "/api/articles", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]articleResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "published-post", list[0].Slug)

	// Detail by slug bumps views on every read.
	rec = env.do(t, http.MethodGet, "/api/articles/published-post", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[articleResponse](t, rec)
	assert.EqualValues(t, 1, first.Views)
	assert.Equal(t, []string{"bim", "gis"}, first.Tags)

	rec = env.do(t, http.MethodGet, "/api/articles/published-post", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decode[articleResponse](t, rec).Views)

	// Detail by numeric id too.
	rec = env.do(t, http.MethodGet, "/api/articles/1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "published-post", decode[articleResponse](t, rec).Slug)

	rec = env.do(t, http.MethodGet, "/api/articles/no-such-slug", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArticleTagsEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, cache.NewNoop())
	admin := env.registerUser(t, "admin")

	createArticle(t, env, admin, "a", true, "bim, gis")
	createArticle(t, env, admin, "b", true, "gis, drones")
	createArticle(t, env, admin, "c", false, "hidden")

	rec := env.do(t, http.MethodGet, "/api/articles/tags/all", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"bim", "drones", "gis"}, decode[[]string](t, rec))
}

func TestArticleSlugConflictAndFilters(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, cache.NewNoop())
	admin := env.registerUser(t, "admin")

	createArticle(t, env, admin, "dup", true, "one")

	rec := env.do(t, http.MethodPost, "/api/articles", gin.H{
		"title_en":     "Other",
		"slug":         "dup",
		"summary_en":   "Summary",
		"content_en":   "Content body",
		"is_published": true,
	}, admin)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/articles?tag=one", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]articleResponse](t, rec), 1)

	rec = env.do(t, http.MethodGet, "/api/articles?tag=absent", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]articleResponse](t, rec))

	rec = env.do(t, http.MethodGet, "/api/articles?limit=0", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/articles?limit=100", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/articles?skip=-1", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArticleUpdatePublishFlip(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, cache.NewNoop())
	admin := env.registerUser(t, "admin")

	created := createArticle(t, env, admin, "flip-me", false, "")

	rec := env.do(t, http.MethodGet, "/api/articles", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]articleResponse](t, rec))

	rec = env.do(t, http.MethodPut, "/api/articles/1", gin.H{
		"is_published": true,
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[articleResponse](t, rec)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, created.Slug, updated.Slug)

	rec = env.do(t, http.MethodGet, "/api/articles", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]articleResponse](t, rec), 1)
}
