package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codecraft-labs/codecraft-backend/internal/backing"
	"github.com/codecraft-labs/codecraft-backend/internal/catalog"
	"github.com/codecraft-labs/codecraft-backend/internal/config"
	"github.com/codecraft-labs/codecraft-backend/internal/handlers"
	"github.com/codecraft-labs/codecraft-backend/internal/middleware"
	"github.com/codecraft-labs/codecraft-backend/internal/routes"
	"github.com/codecraft-labs/codecraft-backend/internal/store"
	"github.com/codecraft-labs/codecraft-backend/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	env := config.AppConfig.Environment
	logger.Init(env)
	logger.Info().Str("environment", env).Msg("Starting CodeCraft Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Connect the backing store. It is the durability layer, so an
	// unreachable backing is fatal (unlike the catalog below).
	backingStore, err := newBackingStore()
	if err != nil {
		logger.Fatal().Err(err).Str("backend", config.AppConfig.StoreBackend).Msg("Failed to connect backing store")
	}
	defer backingStore.Close()

	// 2. Load the built-in catalog (fail-open: an empty catalog still
	// serves the contribution surface).
	builtins := catalog.Load(config.AppConfig.CatalogPath)

	// 3. Initialize the contribution store from the persisted document.
	contribStore := store.New(context.Background(), backingStore, config.AppConfig.StoreKey)
	logger.Info().Int("contributions", contribStore.Count()).Msg("Contribution store loaded")

	// 4. Setup Router
	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// 5. Register Routes
	contributionHandler := handlers.NewContributionHandler(contribStore)
	topicHandler := handlers.NewTopicHandler(builtins, contribStore)

	api := r.Group("/api")
	{
		routes.RegisterContributionRoutes(api, contributionHandler)
		routes.RegisterTopicRoutes(api, topicHandler)
	}

	// Health check with backing store status
	r.GET("/health", func(c *gin.Context) {
		backingStatus := "ok"
		if _, err := backingStore.Get(c.Request.Context(), config.AppConfig.StoreKey); err != nil && err != backing.ErrNotFound {
			backingStatus = "error"
		}

		status := "ok"
		if backingStatus != "ok" {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status": status,
			"checks": gin.H{
				"backing": backingStatus,
			},
			"topics":        builtins.Len(),
			"contributions": contribStore.Count(),
		})
	})

	// 6. Start Server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Msg("API server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server stopped")
}

// newBackingStore picks the configured backing implementation.
func newBackingStore() (backing.Store, error) {
	cfg := config.AppConfig
	switch cfg.StoreBackend {
	case "postgres":
		return backing.NewSQLStore(cfg.DatabaseURL)
	case "memory":
		logger.Warn().Msg("Using in-memory backing store; contributions will not survive a restart")
		return backing.NewMemoryStore(), nil
	default:
		return backing.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	}
}
