package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"herbalMart/app/echo-server/router"
	productService "herbalMart/business/product"
	"herbalMart/business/recommend"
	userService "herbalMart/business/user"
	"herbalMart/internal/middleware"
	psqlRepo "herbalMart/internal/repository/postgres"
	redisRepo "herbalMart/internal/repository/redis"
	"herbalMart/internal/rest"
	"herbalMart/pkg/config"
	"herbalMart/pkg/database"
	redisdb "herbalMart/pkg/database/redis"
	"herbalMart/pkg/logger"
	"herbalMart/pkg/metrics"
	"herbalMart/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting HerbalMart", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init repo
	productsRepo := psqlRepo.NewProductRepository(db)
	usersRepo := psqlRepo.NewUserRepository(db)

	// Catalog source for the scoring engine; wrapped in a Redis snapshot
	// cache when Redis is configured.
	var catalogRepo recommend.CatalogRepository = productsRepo
	var cacheInvalidator productService.CacheInvalidator

	if cfg.Redis.RedisHost != "" {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer func() {
			_ = redisdb.CloseRedisClient(redisClient)
		}()

		cache := redisRepo.NewCatalogCache(
			redisClient,
			productsRepo,
			time.Duration(cfg.Recommend.CatalogCacheTTL)*time.Second,
		)
		catalogRepo = cache
		cacheInvalidator = cache

		logger.Info("Catalog cache enabled", "ttl_seconds", cfg.Recommend.CatalogCacheTTL)
	}

	// Init service
	engine := recommend.NewEngine(recommend.DefaultWeights())
	recommendSvc := recommend.NewService(catalogRepo, usersRepo, engine, cfg.Recommend.PrefsTokenKey)
	productSvc := productService.NewProductService(productsRepo, cacheInvalidator)
	userSvc := userService.NewUserService(usersRepo)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendSvc)
	productHandler := rest.NewProductHandler(productSvc)
	userHandler := rest.NewUserHandler(userSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	authRequired := middleware.AuthMiddleware()
	authOptional := middleware.OptionalAuth()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupRecommendationRoutes(api, recommendHandler, authOptional)
	router.SetupMetricsRoute(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
