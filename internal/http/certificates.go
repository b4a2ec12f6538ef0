package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company-cms/internal/cache"
	"company-cms/internal/domain"
)

const resourceCertificates = "certificates"

type createCertificateRequest struct {
	TitleEN       string `json:"title_en"`
	TitleFA       string `json:"title_fa"`
	DescriptionEN string `json:"description_en"`
	DescriptionFA string `json:"description_fa"`
	IssueDate     string `json:"issue_date"`
	ExpiryDate    string `json:"expiry_date"`
}

type updateCertificateRequest struct {
	TitleEN       *string `json:"title_en"`
	TitleFA       *string `json:"title_fa"`
	DescriptionEN *string `json:"description_en"`
	DescriptionFA *string `json:"description_fa"`
	IssueDate     *string `json:"issue_date"`
	ExpiryDate    *string `json:"expiry_date"`
}

type certificateResponse struct {
	ID            int64  `json:"id"`
	TitleEN       string `json:"title_en"`
	TitleFA       string `json:"title_fa"`
	DescriptionEN string `json:"description_en"`
	DescriptionFA string `json:"description_fa"`
	ImageURL      string `json:"image_url"`
	IssueDate     string `json:"issue_date"`
	ExpiryDate    string `json:"expiry_date"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func toCertificateResponse(cert *domain.Certificate) certificateResponse {
	return certificateResponse{
		ID:            cert.ID,
		TitleEN:       cert.TitleEN,
		TitleFA:       cert.TitleFA,
		DescriptionEN: cert.DescriptionEN,
		DescriptionFA: cert.DescriptionFA,
		ImageURL:      cert.ImageURL,
		IssueDate:     cert.IssueDate,
		ExpiryDate:    cert.ExpiryDate,
		CreatedAt:     timeRFC3339(cert.CreatedAt),
		UpdatedAt:     timeRFC3339(cert.UpdatedAt),
	}
}

func (h *Handler) registerCertificateRoutes(api *gin.RouterGroup) {
	api.GET("/certificates", h.listCertificates)
	api.GET("/certificates/:id", h.getCertificate)

	admin := api.Group("/certificates", h.requireAdmin())
	admin.POST("", h.createCertificate)
	admin.PUT("/:id", h.updateCertificate)
	admin.DELETE("/:id", h.deleteCertificate)
	admin.POST("/:id/upload-image", h.uploadCertificateImage)
}

func (h *Handler) listCertificates(c *gin.Context) {
	h.cached(c, cache.CollectionKey(resourceCertificates), contentCacheTTL, func() (any, error) {
		items, err := h.deps.Certs.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		out := make([]certificateResponse, 0, len(items))
		for i := range items {
			out = append(out, toCertificateResponse(&items[i]))
		}
		return out, nil
	})
}

func (h *Handler) getCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.cached(c, cache.Key(resourceCertificates, id), contentCacheTTL, func() (any, error) {
		cert, err := h.deps.Certs.Get(c.Request.Context(), id)
		if err != nil {
			return nil, err
		}
		return toCertificateResponse(cert), nil
	})
}

func (h *Handler) createCertificate(c *gin.Context) {
	var req createCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cert := domain.Certificate{
		TitleEN:       req.TitleEN,
		TitleFA:       req.TitleFA,
		DescriptionEN: req.DescriptionEN,
		DescriptionFA: req.DescriptionFA,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
	}
	if err := cert.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	id, err := h.deps.Certs.Create(c.Request.Context(), &cert)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	created, err := h.deps.Certs.Get(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Collection(c.Request.Context(), resourceCertificates)
	c.JSON(http.StatusCreated, toCertificateResponse(created))
}

func (h *Handler) updateCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.CertificatePatch{
		TitleEN:       req.TitleEN,
		TitleFA:       req.TitleFA,
		DescriptionEN: req.DescriptionEN,
		DescriptionFA: req.DescriptionFA,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
	}

	updated, err := h.deps.Certs.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Entity(c.Request.Context(), resourceCertificates, id)
	c.JSON(http.StatusOK, toCertificateResponse(updated))
}

func (h *Handler) deleteCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deps.Certs.Delete(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	h.deps.Inval.Entity(c.Request.Context(), resourceCertificates, id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) uploadCertificateImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.uploadImage(c, h.deps.Certs, resourceCertificates, id)
}
