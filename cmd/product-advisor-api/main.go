// Package main provides the Product Advisor API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tokopintar/product-advisor/internal/advisor"
	"github.com/tokopintar/product-advisor/internal/cache"
	"github.com/tokopintar/product-advisor/internal/catalog"
	"github.com/tokopintar/product-advisor/internal/config"
	"github.com/tokopintar/product-advisor/internal/genai"
	"github.com/tokopintar/product-advisor/internal/intent"
	"github.com/tokopintar/product-advisor/internal/observability"
)

func main() {
	// Load configuration
	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("catalog", cfg.Catalog.Path).
		Str("model", cfg.GenAI.Model).
		Msg("Starting Product Advisor API")

	// Load the catalog once, before accepting traffic. The blocking file I/O
	// is acceptable here: it happens exactly once and the result is shared
	// read-only by all requests.
	cat := catalog.NewLoader(logger, cfg.Catalog.Path).Load()
	if cat.UsedFallback {
		logger.Warn().Msg("Serving the built-in fallback catalog")
	}

	// Answer cache: redis when configured, in-memory otherwise. A redis
	// connection failure downgrades to memory rather than refusing to start.
	var cacheClient cache.Client
	if cfg.Cache.Driver == "redis" {
		redisClient, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, falling back to memory cache")
			cacheClient = cache.NewMemoryClient(cfg.Cache.MaxEntries)
		} else {
			cacheClient = redisClient
		}
	} else {
		cacheClient = cache.NewMemoryClient(cfg.Cache.MaxEntries)
	}
	defer cacheClient.Close()

	generator, err := genai.NewClient(genai.Config{
		APIKey:  cfg.GenAI.APIKey,
		Model:   cfg.GenAI.Model,
		BaseURL: cfg.GenAI.BaseURL,
		Timeout: cfg.GenAI.Timeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create GenAI client")
	}

	adv := advisor.New(logger, cat, intent.NewExtractor(logger), generator, cacheClient, advisor.Config{
		MaxResults:   cfg.Advisor.MaxResults,
		CacheAnswers: cfg.Advisor.CacheAnswers,
		CacheTTL:     cfg.Cache.TTL,
	})

	router := NewRouter(logger, adv, cat, RouterConfig{
		RequestTimeout: cfg.Server.ReadTimeout,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt or error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}
