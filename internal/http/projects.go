package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"company-cms/internal/cache"
	"company-cms/internal/domain"
)

const resourceProjects = "projects"

type createProjectRequest struct {
	TitleEN       string `json:"title_en"`
	TitleFA       string `json:"title_fa"`
	DescriptionEN string `json:"description_en"`
	DescriptionFA string `json:"description_fa"`
	ArchiveURL    string `json:"archive_url"`
	IframeURL     string `json:"iframe_url"`
	Category      string `json:"category"`
	SortOrder     int    `json:"sort_order"`
	IsFeatured    bool   `json:"is_featured"`
}

type updateProjectRequest struct {
	TitleEN       *string `json:"title_en"`
	TitleFA       *string `json:"title_fa"`
	DescriptionEN *string `json:"description_en"`
	DescriptionFA *string `json:"description_fa"`
	ArchiveURL    *string `json:"archive_url"`
	IframeURL     *string `json:"iframe_url"`
	Category      *string `json:"category"`
	SortOrder     *int    `json:"sort_order"`
	IsFeatured    *bool   `json:"is_featured"`
}

type projectResponse struct {
	ID            int64  `json:"id"`
	TitleEN       string `json:"title_en"`
	TitleFA       string `json:"title_fa"`
	DescriptionEN string `json:"description_en"`
	DescriptionFA string `json:"description_fa"`
	ImageURL      string `json:"image_url"`
	ArchiveURL    string `json:"archive_url"`
	IframeURL     string `json:"iframe_url"`
	Category      string `json:"category"`
	SortOrder     int    `json:"sort_order"`
	IsFeatured    bool   `json:"is_featured"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:            p.ID,
		TitleEN:       p.TitleEN,
		TitleFA:       p.TitleFA,
		DescriptionEN: p.DescriptionEN,
		DescriptionFA: p.DescriptionFA,
		ImageURL:      p.ImageURL,
		ArchiveURL:    p.ArchiveURL,
		IframeURL:     p.IframeURL,
		Category:      p.Category,
		SortOrder:     p.SortOrder,
		IsFeatured:    p.IsFeatured,
		CreatedAt:     timeRFC3339(p.CreatedAt),
		UpdatedAt:     timeRFC3339(p.UpdatedAt),
	}
}

func (h *Handler) registerProjectRoutes(api *gin.RouterGroup) {
	api.GET("/projects", h.listProjects)
	api.GET("/projects/:id", h.getProject)

	admin := api.Group("/projects", h.requireAdmin())
	admin.POST("", h.createProject)
	admin.PUT("/:id", h.updateProject)
	admin.DELETE("/:id", h.deleteProject)
	admin.POST("/:id/upload-image", h.uploadProjectImage)
}

func (h *Handler) listProjects(c *gin.Context) {
	filter := domain.ProjectFilter{Category: c.Query("category")}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be a boolean"})
			return
		}
		filter.Featured = &featured
	}

	fetch := func() (any, error) {
		items, err := h.deps.Projects.List(c.Request.Context(), filter)
		if err != nil {
			return nil, err
		}
		out := make([]projectResponse, 0, len(items))
		for i := range items {
			out = append(out, toProjectResponse(&items[i]))
		}
		return out, nil
	}

	if filter.Category != "" || filter.Featured != nil {
		payload, err := fetch()
		if err != nil {
			h.respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
		return
	}
	h.cached(c, cache.CollectionKey(resourceProjects), contentCacheTTL, fetch)
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.cached(c, cache.Key(resourceProjects, id), contentCacheTTL, func() (any, error) {
		p, err := h.deps.Projects.Get(c.Request.Context(), id)
		if err != nil {
			return nil, err
		}
		return toProjectResponse(p), nil
	})
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project := domain.Project{
		TitleEN:       req.TitleEN,
		TitleFA:       req.TitleFA,
		DescriptionEN: req.DescriptionEN,
		DescriptionFA: req.DescriptionFA,
		ArchiveURL:    req.ArchiveURL,
		IframeURL:     req.IframeURL,
		Category:      req.Category,
		SortOrder:     req.SortOrder,
		IsFeatured:    req.IsFeatured,
	}
	if err := project.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	id, err := h.deps.Projects.Create(c.Request.Context(), &project)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	created, err := h.deps.Projects.Get(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Collection(c.Request.Context(), resourceProjects)
	c.JSON(http.StatusCreated, toProjectResponse(created))
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.ProjectPatch{
		TitleEN:       req.TitleEN,
		TitleFA:       req.TitleFA,
		DescriptionEN: req.DescriptionEN,
		DescriptionFA: req.DescriptionFA,
		ArchiveURL:    req.ArchiveURL,
		IframeURL:     req.IframeURL,
		Category:      req.Category,
		SortOrder:     req.SortOrder,
		IsFeatured:    req.IsFeatured,
	}

	updated, err := h.deps.Projects.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Entity(c.Request.Context(), resourceProjects, id)
	c.JSON(http.StatusOK, toProjectResponse(updated))
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deps.Projects.Delete(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	h.deps.Inval.Entity(c.Request.Context(), resourceProjects, id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) uploadProjectImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.uploadImage(c, h.deps.Projects, resourceProjects, id)
}
