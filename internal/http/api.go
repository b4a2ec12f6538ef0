// Package http wires the REST API routes to domain services and repositories.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"company-cms/internal/auth"
	"company-cms/internal/cache"
	"company-cms/internal/domain"
	"company-cms/internal/repository"
	"company-cms/internal/service"
)

// Cache TTLs per resource family. Articles churn faster than the rest.
const (
	contentCacheTTL   = time.Hour
	singletonCacheTTL = 2 * time.Hour
	articleCacheTTL   = 30 * time.Minute
)

// Deps collects everything the handler needs; constructed once in main.
type Deps struct {
	Auth     service.AuthService
	Tokens   *auth.TokenService
	Contact  service.ContactService
	Media    *service.MediaService
	Services repository.ServiceRepository
	Team     repository.TeamRepository
	Certs    repository.CertificateRepository
	Licenses repository.LicenseRepository
	Projects repository.ProjectRepository
	Articles repository.ArticleRepository
	Company  repository.CompanyInfoRepository
	Stats    repository.StatisticsRepository
	Cache    cache.Store
	Inval    *cache.Invalidator
	Logger   *logrus.Logger
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	deps Deps
}

func NewHandler(deps Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, allowOrigins []string) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.register)
			authGroup.POST("/login", h.login)
			authGroup.GET("/me", h.requireUser(), h.currentUser)
		}

		h.registerServiceRoutes(api)
		h.registerTeamRoutes(api)
		h.registerCertificateRoutes(api)
		h.registerLicenseRoutes(api)
		h.registerProjectRoutes(api)
		h.registerArticleRoutes(api)
		h.registerContactRoutes(api)
		h.registerCompanyRoutes(api)
	}
}

// respondErr maps the shared error taxonomy onto status codes. Anything
// unclassified is an internal error: logged in full, returned opaque.
func (h *Handler) respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.deps.Logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// cached serves a public GET through the cache store: hit → raw bytes,
// miss → fetch, marshal, best-effort Set. Store errors only downgrade to a
// fetch, they never fail the request.
func (h *Handler) cached(c *gin.Context, key string, ttl time.Duration, fetch func() (any, error)) {
	ctx := c.Request.Context()

	if data, err := h.deps.Cache.Get(ctx, key); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		return
	} else if !errors.Is(err, cache.ErrMiss) {
		h.deps.Logger.Warnf("cache get %s: %v", key, err)
	}

	payload, err := fetch()
	if err != nil {
		h.respondErr(c, err)
		return
	}

	if data, err := json.Marshal(payload); err == nil {
		if err := h.deps.Cache.Set(ctx, key, data, ttl); err != nil {
			h.deps.Logger.Warnf("cache set %s: %v", key, err)
		}
	}
	c.JSON(http.StatusOK, payload)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// uploadImage handles the shared multipart upload flow for every resource
// family that carries an image.
func (h *Handler) uploadImage(c *gin.Context, repo service.ImageUpdater, resource string, id int64) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		h.respondErr(c, err)
		return
	}
	defer src.Close()

	url, err := h.deps.Media.UploadImage(c.Request.Context(), repo, resource, id, file.Filename, src)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Entity(c.Request.Context(), resource, id)
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

func timeRFC3339(t time.Time) string {
	return t.Format(time.RFC3339)
}
