// ABOUTME: Main entry point for the PulseFeed API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulsefeed-api/api"
	"pulsefeed-api/api/handlers"
	"pulsefeed-api/core/content"
	"pulsefeed-api/core/interfaces"
	"pulsefeed-api/core/state"
	"pulsefeed-api/infrastructure/cache/memory"
	"pulsefeed-api/infrastructure/cache/redis"
	"pulsefeed-api/infrastructure/cache/sqlite"
	stdhttp "pulsefeed-api/infrastructure/http/standard"
	logruslogger "pulsefeed-api/infrastructure/logger/logrus"
	stdlogger "pulsefeed-api/infrastructure/logger/standard"
	"pulsefeed-api/infrastructure/storage/cachestore"
	"pulsefeed-api/pkg/config"
	"pulsefeed-api/pkg/featureflags"
)

// themeLogger is the server-side theme hook; it records dark-mode switches
// so they show up in the request flow
type themeLogger struct {
	logger interfaces.Logger
}

func (t *themeLogger) ApplyTheme(darkMode bool) {
	t.logger.Info("Theme changed", map[string]interface{}{
		"darkMode": darkMode,
	})
}

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	var logger interfaces.Logger
	switch cfg.Log.Backend {
	case "standard":
		logger = stdlogger.NewStandardLogger()
	default:
		logger = logruslogger.NewLogger(cfg.Log.Level)
	}

	logger.Info("Starting PulseFeed API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	flags := featureflags.NewEnvManager("")
	ctx := context.Background()

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		} else {
			cache = sqliteCache
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container. With caching disabled the aggregation
	// layer sees no cache; preferences still persist through the backend.
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}
	if !flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		deps.Cache = nil
		logger.Info("Aggregation caching disabled", nil)
	}

	// Create the news client; absent key or a disabled flag means every
	// aggregation resolves from the curated datasets
	var newsClient *content.NewsAPIClient
	if flags.IsEnabled(ctx, featureflags.LiveNewsEnabled) && cfg.NewsAPI.APIKey != "" {
		newsClient = content.NewNewsAPIClient(content.NewsAPIConfig{
			BaseURL:  cfg.NewsAPI.BaseURL,
			APIKey:   cfg.NewsAPI.APIKey,
			Country:  cfg.NewsAPI.Country,
			PageSize: cfg.NewsAPI.PageSize,
		}, deps)
	} else {
		logger.Info("Live news disabled, serving curated content only", nil)
	}

	// Create services and state
	contentService := content.NewContentService(deps, newsClient)

	prefStore := cachestore.NewPreferenceStore(cache, cfg.Storage.PreferencesKey)
	store := state.NewStore(ctx, deps, prefStore)
	store.Preferences.SetThemeApplier(&themeLogger{logger: logger})

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:        logger,
		EnableMetrics: flags.IsEnabled(ctx, featureflags.MetricsEnabled),
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimitRPS = cfg.RateLimit.RequestsPerSecond
		apiConfig.RateLimitBurst = cfg.RateLimit.Burst
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	contentHandler := handlers.NewContentHandler(contentService, store, flags)
	contentHandler.RegisterRoutes(humaAPI)

	preferencesHandler := handlers.NewPreferencesHandler(store)
	preferencesHandler.RegisterRoutes(humaAPI)

	uiHandler := handlers.NewUIHandler(store)
	uiHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
