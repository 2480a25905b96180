package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/quill/audit"
	"github.com/dev-mohitbeniwal/quill/auth"
	"github.com/dev-mohitbeniwal/quill/config"
	"github.com/dev-mohitbeniwal/quill/controller"
	"github.com/dev-mohitbeniwal/quill/db"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/middleware"
	"github.com/dev-mohitbeniwal/quill/model"
	pdp_dao "github.com/dev-mohitbeniwal/quill/pdp/dao"
	"github.com/dev-mohitbeniwal/quill/pdp/engine"
	"github.com/dev-mohitbeniwal/quill/router"
	"github.com/dev-mohitbeniwal/quill/service"
	"github.com/dev-mohitbeniwal/quill/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger(cfg.Log.Dir)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Neo4j
	driver, closeNeo4j, err := db.NewNeo4jDriver(ctx, cfg.Neo4j)
	if err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer closeNeo4j()

	// Initialize Redis
	redisClient, closeRedis, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer closeRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	// Credentials
	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("Failed to initialize password hasher", zap.Error(err))
	}
	codec, err := auth.NewCodec(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenLifetime())
	if err != nil {
		logger.Fatal("Failed to initialize token codec", zap.Error(err))
	}

	// Initialize services and utilities
	auditRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.AuditIndex)
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	services, err := service.InitializeServices(
		driver,
		redisClient,
		audit.NewService(auditRepository),
		util.NewValidationUtil(),
		util.NewContentSanitizer(),
		util.NewCacheService(redisClient, cfg.Cache.TTL),
		util.NewNotificationService(),
		eventBus,
		hasher,
		codec,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	if err := services.Bootstrap.Run(ctx, cfg.Bootstrap); err != nil {
		logger.Fatal("Failed to bootstrap roles and superuser", zap.Error(err))
	}

	// Access control
	roles := pdp_dao.NewRoleLookupDAO(driver)
	access := controller.Access{
		Authenticated: middleware.Authenticate(codec, services.Auth),
		Editor:        middleware.RequireRoles(engine.NewRoleGuard(roles, model.RoleAdmin, model.RoleEditor)),
		Admin:         middleware.RequireRoles(engine.NewRoleGuard(roles, model.RoleAdmin)),
	}

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	controllers := controller.InitializeControllers(services, access)
	handler := router.SetupRouter(
		controllers,
		db.NewRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Per),
		cfg.RateLimit.Requests,
		cfg.RateLimit.Per,
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: handler,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let in-flight notifications finish before the stores close
	eventBus.Wait()
	logger.Info("Server exiting")
}
