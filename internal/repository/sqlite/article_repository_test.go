package sqlite

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

func newArticle(slug string, published bool) *domain.Article {
	return &domain.Article{
		TitleEN:     "Title " + slug,
		Slug:        slug,
		SummaryEN:   "Summary",
		ContentEN:   "Content body",
		IsPublished: published,
	}
}

func articleRepo(t *testing.T) repository.ArticleRepository {
	t.Helper()

	repo := NewArticleRepository(openTestDB(t))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestArticleGetBySlugOrID(t *testing.T) {
	t.Parallel()

	repo := articleRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, newArticle("hello-world", true))
	require.NoError(t, err)

	bySlug, err := repo.GetBySlugOrID(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, id, bySlug.ID)

	byID, err := repo.GetBySlugOrID(ctx, strconv.FormatInt(id, 10))
	require.NoError(t, err)
	assert.Equal(t, "hello-world", byID.Slug)

	_, err = repo.GetBySlugOrID(ctx, "missing-slug")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticleSlugConflict(t *testing.T) {
	t.Parallel()

	repo := articleRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newArticle("dup", true))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newArticle("dup", true))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestArticleListPublishedOnly(t *testing.T) {
	t.Parallel()

	repo := articleRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newArticle("published", true))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newArticle("draft", false))
	require.NoError(t, err)

	list, err := repo.List(ctx, domain.ArticleFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "published", list[0].Slug)
}

func TestArticleListFilters(t *testing.T) {
	t.Parallel()

	repo := articleRepo(t)
	ctx := context.Background()

	a := newArticle("bim-news", true)
	a.Tags = "bim, technology"
	a.Category = "news"
	_, err := repo.Create(ctx, a)
	require.NoError(t, err)

	b := newArticle("survey-notes", true)
	b.Tags = "surveying"
	b.Category = "notes"
	_, err = repo.Create(ctx, b)
	require.NoError(t, err)

	byTag, err := repo.List(ctx, domain.ArticleFilter{Tag: "technology"})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "bim-news", byTag[0].Slug)

	byCategory, err := repo.List(ctx, domain.ArticleFilter{Category: "notes"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "survey-notes", byCategory[0].Slug)

	paged, err := repo.List(ctx, domain.ArticleFilter{Limit: 1, Skip: 1})
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestArticleListTags(t *testing.T) {
	t.Parallel()

	repo := articleRepo(t)
	ctx := context.Background()

	a := newArticle("one", true)
	a.Tags = "bim, gis"
	_, err := repo.Create(ctx, a)
	require.NoError(t, err)

	b := newArticle("two", true)
	b.Tags = "gis, drones"
	_, err = repo.Create(ctx, b)
	require.NoError(t, err)

	draft := newArticle("three", false)
	draft.Tags = "hidden"
	_, err = repo.Create(ctx, draft)
	require.NoError(t, err)

	tags, err := repo.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bim", "drones", "gis"}, tags)
}

func TestArticleIncrementViews(t *testing.T) {
	t.Parallel()

	repo := articleRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, newArticle("counted", true))
	require.NoError(t, err)

	require.NoError(t, repo.IncrementViews(ctx, id))
	require.NoError(t, repo.IncrementViews(ctx, id))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Views)

	assert.ErrorIs(t, repo.IncrementViews(ctx, 999), domain.ErrNotFound)
}

func TestArticleUpdatePatch(t *testing.T) {
	t.Parallel()

	repo := articleRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, newArticle("patchable", false))
	require.NoError(t, err)

	published := true
	updated, err := repo.Update(ctx, id, domain.ArticlePatch{IsPublished: &published})
	require.NoError(t, err)

	assert.True(t, updated.IsPublished)
	assert.Equal(t, "patchable", updated.Slug)
	assert.Equal(t, "Title patchable", updated.TitleEN)
}
