package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"company-cms/internal/auth"
	"company-cms/internal/cache"
	"company-cms/internal/config"
	apphttp "company-cms/internal/http"
	"company-cms/internal/mail"
	"company-cms/internal/repository/sqlite"
	"company-cms/internal/service"
	"company-cms/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	serviceRepo := sqlite.NewServiceRepository(db)
	teamRepo := sqlite.NewTeamRepository(db)
	certRepo := sqlite.NewCertificateRepository(db)
	licenseRepo := sqlite.NewLicenseRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	articleRepo := sqlite.NewArticleRepository(db)
	contactRepo := sqlite.NewContactRepository(db)
	companyRepo := sqlite.NewCompanyInfoRepository(db)
	statsRepo := sqlite.NewStatisticsRepository(db)

	inits := []interface {
		Init(ctx context.Context) error
	}{
		userRepo, serviceRepo, teamRepo, certRepo, licenseRepo,
		projectRepo, articleRepo, contactRepo, companyRepo, statsRepo,
	}
	for _, repo := range inits {
		if err := repo.Init(ctx); err != nil {
			logger.Fatalf("init repository: %v", err)
		}
	}

	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	if tokenTTL <= 0 {
		tokenTTL = auth.DefaultTokenTTL
	}
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, tokenTTL)
	authService := service.NewAuthService(userRepo, tokens)

	mailer := buildMailer(cfg, logger)
	contactService := service.NewContactService(contactRepo, mailer, logger)

	storageSvc, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}
	mediaService := service.NewMediaService(storageSvc)

	store := cache.NewNoop()
	invalidator := cache.NewInvalidator(store, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := apphttp.NewHandler(apphttp.Deps{
		Auth:     authService,
		Tokens:   tokens,
		Contact:  contactService,
		Media:    mediaService,
		Services: serviceRepo,
		Team:     teamRepo,
		Certs:    certRepo,
		Licenses: licenseRepo,
		Projects: projectRepo,
		Articles: articleRepo,
		Company:  companyRepo,
		Stats:    statsRepo,
		Cache:    store,
		Inval:    invalidator,
		Logger:   logger,
	})
	router.Use(handler.RequestLogger())
	handler.RegisterRoutes(router, cfg.CORS.AllowOrigins)

	// Local uploads are served straight from disk; S3 objects carry their
	// own public URLs.
	if cfg.Storage.Bucket == "" {
		router.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildMailer(cfg config.Config, logger *logrus.Logger) mail.Mailer {
	if cfg.SMTP.Host == "" {
		logger.Info("smtp not configured, contact notifications disabled")
		return mail.Noop{}
	}
	mailer, err := mail.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port,
		cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, cfg.SMTP.AdminEmail)
	if err != nil {
		logger.Warnf("setup smtp mailer: %v, contact notifications disabled", err)
		return mail.Noop{}
	}
	logger.Infof("smtp mailer configured for %s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	return mailer
}

func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Service, error) {
	if cfg.Storage.Bucket == "" {
		logger.Infof("using local uploads dir %s", cfg.Uploads.Dir)
		return storage.NewLocalService(cfg.Uploads.Dir, cfg.Uploads.BaseURL), nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3Service(client, cfg.Storage.Bucket, cfg.Storage.KeyPrefix, cfg.Storage.PublicURL), nil
}
