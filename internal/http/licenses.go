package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company-cms/internal/cache"
	"company-cms/internal/domain"
)

const resourceLicenses = "licenses"

type createLicenseRequest struct {
	TitleEN        string `json:"title_en"`
	TitleFA        string `json:"title_fa"`
	DescriptionEN  string `json:"description_en"`
	DescriptionFA  string `json:"description_fa"`
	IssueDate      string `json:"issue_date"`
	IssueAuthority string `json:"issue_authority"`
}

type updateLicenseRequest struct {
	TitleEN        *string `json:"title_en"`
	TitleFA        *string `json:"title_fa"`
	DescriptionEN  *string `json:"description_en"`
	DescriptionFA  *string `json:"description_fa"`
	IssueDate      *string `json:"issue_date"`
	IssueAuthority *string `json:"issue_authority"`
}

type licenseResponse struct {
	ID             int64  `json:"id"`
	TitleEN        string `json:"title_en"`
	TitleFA        string `json:"title_fa"`
	DescriptionEN  string `json:"description_en"`
	DescriptionFA  string `json:"description_fa"`
	ImageURL       string `json:"image_url"`
	IssueDate      string `json:"issue_date"`
	IssueAuthority string `json:"issue_authority"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func toLicenseResponse(l *domain.License) licenseResponse {
	return licenseResponse{
		ID:             l.ID,
		TitleEN:        l.TitleEN,
		TitleFA:        l.TitleFA,
		DescriptionEN:  l.DescriptionEN,
		DescriptionFA:  l.DescriptionFA,
		ImageURL:       l.ImageURL,
		IssueDate:      l.IssueDate,
		IssueAuthority: l.IssueAuthority,
		CreatedAt:      timeRFC3339(l.CreatedAt),
		UpdatedAt:      timeRFC3339(l.UpdatedAt),
	}
}

func (h *Handler) registerLicenseRoutes(api *gin.RouterGroup) {
	api.GET("/licenses", h.listLicenses)
	api.GET("/licenses/:id", h.getLicense)

	admin := api.Group("/licenses", h.requireAdmin())
	admin.POST("", h.createLicense)
	admin.PUT("/:id", h.updateLicense)
	admin.DELETE("/:id", h.deleteLicense)
	admin.POST("/:id/upload-image", h.uploadLicenseImage)
}

func (h *Handler) listLicenses(c *gin.Context) {
	h.cached(c, cache.CollectionKey(resourceLicenses), contentCacheTTL, func() (any, error) {
		items, err := h.deps.Licenses.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		out := make([]licenseResponse, 0, len(items))
		for i := range items {
			out = append(out, toLicenseResponse(&items[i]))
		}
		return out, nil
	})
}

func (h *Handler) getLicense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.cached(c, cache.Key(resourceLicenses, id), contentCacheTTL, func() (any, error) {
		l, err := h.deps.Licenses.Get(c.Request.Context(), id)
		if err != nil {
			return nil, err
		}
		return toLicenseResponse(l), nil
	})
}

func (h *Handler) createLicense(c *gin.Context) {
	var req createLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lic := domain.License{
		TitleEN:        req.TitleEN,
		TitleFA:        req.TitleFA,
		DescriptionEN:  req.DescriptionEN,
		DescriptionFA:  req.DescriptionFA,
		IssueDate:      req.IssueDate,
		IssueAuthority: req.IssueAuthority,
	}
	if err := lic.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	id, err := h.deps.Licenses.Create(c.Request.Context(), &lic)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	created, err := h.deps.Licenses.Get(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Collection(c.Request.Context(), resourceLicenses)
	c.JSON(http.StatusCreated, toLicenseResponse(created))
}

func (h *Handler) updateLicense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.LicensePatch{
		TitleEN:        req.TitleEN,
		TitleFA:        req.TitleFA,
		DescriptionEN:  req.DescriptionEN,
		DescriptionFA:  req.DescriptionFA,
		IssueDate:      req.IssueDate,
		IssueAuthority: req.IssueAuthority,
	}

	updated, err := h.deps.Licenses.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Entity(c.Request.Context(), resourceLicenses, id)
	c.JSON(http.StatusOK, toLicenseResponse(updated))
}

func (h *Handler) deleteLicense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deps.Licenses.Delete(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	h.deps.Inval.Entity(c.Request.Context(), resourceLicenses, id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) uploadLicenseImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.uploadImage(c, h.deps.Licenses, resourceLicenses, id)
}
