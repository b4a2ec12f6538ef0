package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"company-cms/internal/cache"
	"company-cms/internal/domain"
)

const resourceArticles = "articles"

const (
	articleDefaultLimit = 10
	articleMaxLimit     = 50
)

type createArticleRequest struct {
	TitleEN     string `json:"title_en"`
	TitleFA     string `json:"title_fa"`
	Slug        string `json:"slug"`
	SummaryEN   string `json:"summary_en"`
	SummaryFA   string `json:"summary_fa"`
	ContentEN   string `json:"content_en"`
	ContentFA   string `json:"content_fa"`
	Tags        string `json:"tags"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	IsPublished bool   `json:"is_published"`
}

type updateArticleRequest struct {
	TitleEN     *string `json:"title_en"`
	TitleFA     *string `json:"title_fa"`
	Slug        *string `json:"slug"`
	SummaryEN   *string `json:"summary_en"`
	SummaryFA   *string `json:"summary_fa"`
	ContentEN   *string `json:"content_en"`
	ContentFA   *string `json:"content_fa"`
	Tags        *string `json:"tags"`
	Category    *string `json:"category"`
	Author      *string `json:"author"`
	IsPublished *bool   `json:"is_published"`
}

type articleResponse struct {
	ID          int64    `json:"id"`
	TitleEN     string   `json:"title_en"`
	TitleFA     string   `json:"title_fa"`
	Slug        string   `json:"slug"`
	SummaryEN   string   `json:"summary_en"`
	SummaryFA   string   `json:"summary_fa"`
	ContentEN   string   `json:"content_en"`
	ContentFA   string   `json:"content_fa"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Author      string   `json:"author"`
	IsPublished bool     `json:"is_published"`
	Views       int64    `json:"views"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	tags := a.TagList()
	if tags == nil {
		tags = []string{}
	}
	return articleResponse{
		ID:          a.ID,
		TitleEN:     a.TitleEN,
		TitleFA:     a.TitleFA,
		Slug:        a.Slug,
		SummaryEN:   a.SummaryEN,
		SummaryFA:   a.SummaryFA,
		ContentEN:   a.ContentEN,
		ContentFA:   a.ContentFA,
		ImageURL:    a.ImageURL,
		Tags:        tags,
		Category:    a.Category,
		Author:      a.Author,
		IsPublished: a.IsPublished,
		Views:       a.Views,
		CreatedAt:   timeRFC3339(a.CreatedAt),
		UpdatedAt:   timeRFC3339(a.UpdatedAt),
	}
}

func (h *Handler) registerArticleRoutes(api *gin.RouterGroup) {
	api.GET("/articles", h.listArticles)
	api.GET("/articles/:idOrSlug", h.getArticle)
	// gin's tree cannot mix a static "tags" segment with :idOrSlug, so the
	// /articles/tags/all route rides the wildcard and guards the param.
	api.GET("/articles/:idOrSlug/all", h.listArticleTags)

	admin := api.Group("/articles", h.requireAdmin())
	admin.POST("", h.createArticle)
	admin.PUT("/:idOrSlug", h.updateArticle)
	admin.DELETE("/:idOrSlug", h.deleteArticle)
	admin.POST("/:idOrSlug/upload-image", h.uploadArticleImage)
}

func (h *Handler) listArticles(c *gin.Context) {
	filter := domain.ArticleFilter{
		Tag:      c.Query("tag"),
		Category: c.Query("category"),
		Limit:    articleDefaultLimit,
	}
	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
			return
		}
		filter.Skip = skip
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > articleMaxLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
			return
		}
		filter.Limit = limit
	}

	fetch := func() (any, error) {
		items, err := h.deps.Articles.List(c.Request.Context(), filter)
		if err != nil {
			return nil, err
		}
		out := make([]articleResponse, 0, len(items))
		for i := range items {
			out = append(out, toArticleResponse(&items[i]))
		}
		return out, nil
	}

	// Only the default first page is cached.
	if filter.Tag != "" || filter.Category != "" || filter.Skip != 0 || filter.Limit != articleDefaultLimit {
		payload, err := fetch()
		if err != nil {
			h.respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
		return
	}
	h.cached(c, cache.CollectionKey(resourceArticles), articleCacheTTL, fetch)
}

func (h *Handler) listArticleTags(c *gin.Context) {
	if c.Param("idOrSlug") != "tags" {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	key := cache.CollectionKey(resourceArticles) + ":tags"
	h.cached(c, key, articleCacheTTL, func() (any, error) {
		tags, err := h.deps.Articles.ListTags(c.Request.Context())
		if err != nil {
			return nil, err
		}
		if tags == nil {
			tags = []string{}
		}
		return tags, nil
	})
}

// getArticle resolves by id or slug and bumps the view counter. The detail
// read deliberately skips the cache so every hit counts.
func (h *Handler) getArticle(c *gin.Context) {
	a, err := h.deps.Articles.GetBySlugOrID(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		h.respondErr(c, err)
		return
	}

	if err := h.deps.Articles.IncrementViews(c.Request.Context(), a.ID); err != nil {
		h.deps.Logger.Warnf("increment views for article %d: %v", a.ID, err)
	} else {
		a.Views++
	}

	c.JSON(http.StatusOK, toArticleResponse(a))
}

func (h *Handler) createArticle(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article := domain.Article{
		TitleEN:     req.TitleEN,
		TitleFA:     req.TitleFA,
		Slug:        req.Slug,
		SummaryEN:   req.SummaryEN,
		SummaryFA:   req.SummaryFA,
		ContentEN:   req.ContentEN,
		ContentFA:   req.ContentFA,
		Tags:        req.Tags,
		Category:    req.Category,
		Author:      req.Author,
		IsPublished: req.IsPublished,
	}
	if err := article.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	id, err := h.deps.Articles.Create(c.Request.Context(), &article)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	created, err := h.deps.Articles.Get(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Collection(c.Request.Context(), resourceArticles)
	c.JSON(http.StatusCreated, toArticleResponse(created))
}

func (h *Handler) updateArticle(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	var req updateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.ArticlePatch{
		TitleEN:     req.TitleEN,
		TitleFA:     req.TitleFA,
		Slug:        req.Slug,
		SummaryEN:   req.SummaryEN,
		SummaryFA:   req.SummaryFA,
		ContentEN:   req.ContentEN,
		ContentFA:   req.ContentFA,
		Tags:        req.Tags,
		Category:    req.Category,
		Author:      req.Author,
		IsPublished: req.IsPublished,
	}

	updated, err := h.deps.Articles.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Entity(c.Request.Context(), resourceArticles, id)
	c.JSON(http.StatusOK, toArticleResponse(updated))
}

func (h *Handler) deleteArticle(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}
	if err := h.deps.Articles.Delete(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	h.deps.Inval.Entity(c.Request.Context(), resourceArticles, id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) uploadArticleImage(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}
	h.uploadImage(c, h.deps.Articles, resourceArticles, id)
}

// Admin article routes share the :idOrSlug segment with the public detail
// route but accept numeric ids only.
func parseArticleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("idOrSlug"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
