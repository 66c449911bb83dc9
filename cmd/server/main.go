package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/bojietech/storefront/internal/application/cart"
	catalogapp "github.com/bojietech/storefront/internal/application/catalog"
	contentapp "github.com/bojietech/storefront/internal/application/content"
	i18napp "github.com/bojietech/storefront/internal/application/i18n"
	identityapp "github.com/bojietech/storefront/internal/application/identity"
	"github.com/bojietech/storefront/internal/infrastructure/auth"
	"github.com/bojietech/storefront/internal/infrastructure/cache"
	"github.com/bojietech/storefront/internal/infrastructure/config"
	"github.com/bojietech/storefront/internal/infrastructure/i18n"
	"github.com/bojietech/storefront/internal/infrastructure/logger"
	"github.com/bojietech/storefront/internal/infrastructure/persistence"
	"github.com/bojietech/storefront/internal/infrastructure/storage"
	"github.com/bojietech/storefront/internal/interfaces/http/handler"
	"github.com/bojietech/storefront/internal/interfaces/http/middleware"
	"github.com/bojietech/storefront/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	inquiryRepo := persistence.NewGormInquiryRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	carouselRepo := persistence.NewGormCarouselRepository(db.DB)
	featuredRepo := persistence.NewGormFeaturedProductRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)

	// Visitor state lives in Redis; both stores degrade to in-memory
	// when Redis is unreachable so the storefront stays browsable
	cartStore, err := cache.NewCartStoreFactory(cfg.Redis, cache.WithLogger(log)).CreateStore()
	if err != nil {
		log.Fatal("Failed to create cart store", zap.Error(err))
	}

	languageStore := newLanguageStore(cfg.Redis, log)

	// Translation bundle and JWT
	bundle, err := i18n.NewBundle(cfg.I18n.DefaultLanguage, cfg.I18n.Languages, log)
	if err != nil {
		log.Fatal("Failed to load translation bundle", zap.Error(err))
	}
	jwtService := auth.NewJWTService(cfg.JWT)

	imageStorage, err := storage.NewLocalImageStorage(cfg.Uploads, log)
	if err != nil {
		log.Fatal("Failed to prepare uploads directory", zap.Error(err))
	}

	// Application services
	browseService := catalogapp.NewBrowseService(productRepo, log)
	productService := catalogapp.NewProductService(productRepo)
	cartService := cartapp.NewCartService(cartStore, productRepo, log)
	inquiryService := cartapp.NewInquiryService(cartStore, inquiryRepo, log)
	contentService := contentapp.NewContentService(carouselRepo, featuredRepo, settingsRepo, productRepo, log)
	languageService := i18napp.NewLanguageService(bundle, languageStore, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)

	// HTTP engine and middleware chain
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}
	engine.Use(middleware.ResolveLanguage(languageService))

	// Uploaded product and carousel images are served straight off disk
	engine.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)

	adminGuard := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/admin/auth/login",
			"/api/v1/admin/auth/refresh",
		},
		Logger: log,
	})

	r := router.NewRouter(engine, router.WithAdminMiddleware(adminGuard))
	r.RegisterPublic(
		handler.NewSystemHandler(),
		handler.NewCatalogHandler(browseService),
		handler.NewCartHandler(cartService, inquiryService),
		handler.NewContentHandler(contentService),
		handler.NewI18nHandler(languageService),
	)
	r.RegisterAdmin(
		handler.NewAuthHandler(authService),
		handler.NewProductAdminHandler(productService),
		handler.NewInquiryAdminHandler(inquiryService),
		handler.NewContentAdminHandler(contentService),
		handler.NewUploadHandler(imageStorage),
	)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}

// newLanguageStore pings Redis once and picks the in-memory fallback
// when it is unreachable. Preferences in the fallback do not survive a
// restart, which only costs returning visitors one language switch.
func newLanguageStore(cfg config.RedisConfig, log *zap.Logger) i18napp.LanguageStore {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable, falling back to in-memory language store", zap.Error(err))
		_ = client.Close()
		return cache.NewInMemoryLanguageStore()
	}
	return cache.NewRedisLanguageStoreWithClient(client)
}
