package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company-cms/internal/cache"
	"company-cms/internal/domain"
)

const (
	resourceCompanyInfo = "company-info"
	resourceStatistics  = "statistics"
)

type companyInfoRequest struct {
	Name           *string `json:"name"`
	DescriptionEN  *string `json:"description_en"`
	DescriptionFA  *string `json:"description_fa"`
	FoundedYear    *int    `json:"founded_year"`
	Headquarters   *string `json:"headquarters"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	AddressCity    *string `json:"address_city"`
	AddressCountry *string `json:"address_country"`
	TotalEmployees *int    `json:"total_employees"`
}

type companyInfoResponse struct {
	Name           string `json:"name"`
	DescriptionEN  string `json:"description_en"`
	DescriptionFA  string `json:"description_fa"`
	FoundedYear    int    `json:"founded_year"`
	Headquarters   string `json:"headquarters"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	AddressCity    string `json:"address_city"`
	AddressCountry string `json:"address_country"`
	TotalEmployees int    `json:"total_employees"`
	UpdatedAt      string `json:"updated_at"`
}

func toCompanyInfoResponse(info *domain.CompanyInfo) companyInfoResponse {
	return companyInfoResponse{
		Name:           info.Name,
		DescriptionEN:  info.DescriptionEN,
		DescriptionFA:  info.DescriptionFA,
		FoundedYear:    info.FoundedYear,
		Headquarters:   info.Headquarters,
		Phone:          info.Phone,
		Email:          info.Email,
		AddressCity:    info.AddressCity,
		AddressCountry: info.AddressCountry,
		TotalEmployees: info.TotalEmployees,
		UpdatedAt:      timeRFC3339(info.UpdatedAt),
	}
}

type statisticsRequest struct {
	AnnualProjects   *int `json:"annual_projects"`
	ServiceTypes     *int `json:"service_types"`
	Employees        *int `json:"employees"`
	SatisfiedClients *int `json:"satisfied_clients"`
}

type statisticsResponse struct {
	AnnualProjects   int    `json:"annual_projects"`
	ServiceTypes     int    `json:"service_types"`
	Employees        int    `json:"employees"`
	SatisfiedClients int    `json:"satisfied_clients"`
	UpdatedAt        string `json:"updated_at"`
}

func toStatisticsResponse(stats *domain.Statistics) statisticsResponse {
	return statisticsResponse{
		AnnualProjects:   stats.AnnualProjects,
		ServiceTypes:     stats.ServiceTypes,
		Employees:        stats.Employees,
		SatisfiedClients: stats.SatisfiedClients,
		UpdatedAt:        timeRFC3339(stats.UpdatedAt),
	}
}

func (h *Handler) registerCompanyRoutes(api *gin.RouterGroup) {
	api.GET("/company-info", h.getCompanyInfo)
	api.GET("/statistics", h.getStatistics)

	admin := api.Group("/admin", h.requireAdmin())
	admin.PUT("/company-info", h.updateCompanyInfo)
	admin.PUT("/statistics", h.updateStatistics)
}

func (h *Handler) getCompanyInfo(c *gin.Context) {
	h.cached(c, cache.CollectionKey(resourceCompanyInfo), singletonCacheTTL, func() (any, error) {
		info, err := h.deps.Company.Get(c.Request.Context())
		if err != nil {
			return nil, err
		}
		return toCompanyInfoResponse(info), nil
	})
}

func (h *Handler) updateCompanyInfo(c *gin.Context) {
	var req companyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.CompanyInfoPatch{
		Name:           req.Name,
		DescriptionEN:  req.DescriptionEN,
		DescriptionFA:  req.DescriptionFA,
		FoundedYear:    req.FoundedYear,
		Headquarters:   req.Headquarters,
		Phone:          req.Phone,
		Email:          req.Email,
		AddressCity:    req.AddressCity,
		AddressCountry: req.AddressCountry,
		TotalEmployees: req.TotalEmployees,
	}
	if err := patch.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	info, err := h.deps.Company.Update(c.Request.Context(), patch)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Collection(c.Request.Context(), resourceCompanyInfo)
	c.JSON(http.StatusOK, toCompanyInfoResponse(info))
}

func (h *Handler) getStatistics(c *gin.Context) {
	h.cached(c, cache.CollectionKey(resourceStatistics), singletonCacheTTL, func() (any, error) {
		stats, err := h.deps.Stats.Get(c.Request.Context())
		if err != nil {
			return nil, err
		}
		return toStatisticsResponse(stats), nil
	})
}

func (h *Handler) updateStatistics(c *gin.Context) {
	var req statisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.StatisticsPatch{
		AnnualProjects:   req.AnnualProjects,
		ServiceTypes:     req.ServiceTypes,
		Employees:        req.Employees,
		SatisfiedClients: req.SatisfiedClients,
	}
	if err := patch.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	stats, err := h.deps.Stats.Update(c.Request.Context(), patch)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Collection(c.Request.Context(), resourceStatistics)
	c.JSON(http.StatusOK, toStatisticsResponse(stats))
}
