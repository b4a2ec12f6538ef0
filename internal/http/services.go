package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company-cms/internal/cache"
	"company-cms/internal/domain"
)

const resourceServices = "services"

type createServiceRequest struct {
	TitleEN       string `json:"title_en"`
	TitleFA       string `json:"title_fa"`
	Title         string `json:"title"`
	DescriptionEN string `json:"description_en"`
	DescriptionFA string `json:"description_fa"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	SoftwareTools string `json:"software_tools"`
}

type updateServiceRequest struct {
	TitleEN       *string `json:"title_en"`
	TitleFA       *string `json:"title_fa"`
	Title         *string `json:"title"`
	DescriptionEN *string `json:"description_en"`
	DescriptionFA *string `json:"description_fa"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	SoftwareTools *string `json:"software_tools"`
}

type serviceResponse struct {
	ID            int64  `json:"id"`
	TitleEN       string `json:"title_en"`
	TitleFA       string `json:"title_fa"`
	Title         string `json:"title"`
	DescriptionEN string `json:"description_en"`
	DescriptionFA string `json:"description_fa"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	ImageURL      string `json:"image_url"`
	SoftwareTools string `json:"software_tools"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func toServiceResponse(s *domain.Service) serviceResponse {
	return serviceResponse{
		ID:            s.ID,
		TitleEN:       s.TitleEN,
		TitleFA:       s.TitleFA,
		Title:         s.Title,
		DescriptionEN: s.DescriptionEN,
		DescriptionFA: s.DescriptionFA,
		Description:   s.Description,
		Category:      s.Category,
		ImageURL:      s.ImageURL,
		SoftwareTools: s.SoftwareTools,
		CreatedAt:     timeRFC3339(s.CreatedAt),
		UpdatedAt:     timeRFC3339(s.UpdatedAt),
	}
}

func toServiceResponses(items []domain.Service) []serviceResponse {
	out := make([]serviceResponse, 0, len(items))
	for i := range items {
		out = append(out, toServiceResponse(&items[i]))
	}
	return out
}

func (h *Handler) registerServiceRoutes(api *gin.RouterGroup) {
	api.GET("/services", h.listServices)
	api.GET("/services/:id", h.getService)

	admin := api.Group("/services", h.requireAdmin())
	admin.POST("", h.createService)
	admin.PUT("/:id", h.updateService)
	admin.DELETE("/:id", h.deleteService)
	admin.POST("/:id/upload-image", h.uploadServiceImage)
}

func (h *Handler) listServices(c *gin.Context) {
	category := c.Query("category")
	fetch := func() (any, error) {
		items, err := h.deps.Services.List(c.Request.Context(), category)
		if err != nil {
			return nil, err
		}
		return toServiceResponses(items), nil
	}

	// Filtered listings bypass the cache; only the full collection is keyed.
	if category != "" {
		payload, err := fetch()
		if err != nil {
			h.respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
		return
	}
	h.cached(c, cache.CollectionKey(resourceServices), contentCacheTTL, fetch)
}

func (h *Handler) getService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.cached(c, cache.Key(resourceServices, id), contentCacheTTL, func() (any, error) {
		s, err := h.deps.Services.Get(c.Request.Context(), id)
		if err != nil {
			return nil, err
		}
		return toServiceResponse(s), nil
	})
}

func (h *Handler) createService(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	svc := domain.Service{
		TitleEN:       req.TitleEN,
		TitleFA:       req.TitleFA,
		Title:         req.Title,
		DescriptionEN: req.DescriptionEN,
		DescriptionFA: req.DescriptionFA,
		Description:   req.Description,
		Category:      req.Category,
		SoftwareTools: req.SoftwareTools,
	}
	svc.Normalize()
	if err := svc.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	id, err := h.deps.Services.Create(c.Request.Context(), &svc)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	created, err := h.deps.Services.Get(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Collection(c.Request.Context(), resourceServices)
	c.JSON(http.StatusCreated, toServiceResponse(created))
}

func (h *Handler) updateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.ServicePatch{
		TitleEN:       req.TitleEN,
		TitleFA:       req.TitleFA,
		Title:         req.Title,
		DescriptionEN: req.DescriptionEN,
		DescriptionFA: req.DescriptionFA,
		Description:   req.Description,
		Category:      req.Category,
		SoftwareTools: req.SoftwareTools,
	}

	updated, err := h.deps.Services.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Entity(c.Request.Context(), resourceServices, id)
	c.JSON(http.StatusOK, toServiceResponse(updated))
}

func (h *Handler) deleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deps.Services.Delete(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	h.deps.Inval.Entity(c.Request.Context(), resourceServices, id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) uploadServiceImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.uploadImage(c, h.deps.Services, resourceServices, id)
}
