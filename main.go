package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"property-returns/config"
	httpLayer "property-returns/http"
	"property-returns/repository"
	"property-returns/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	cache, closeCache := newCache(cfg)
	defer func() {
		if err := closeCache(); err != nil {
			log.Printf("[Cache] Error closing cache: %v", err)
		}
	}()

	analysisService := service.NewAnalysisService(cache, cfg.ServiceOptions())
	analysisHandler := httpLayer.NewAnalysisHandler(analysisService)
	loanHandler := httpLayer.NewLoanHandler(analysisService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	limited := func(h http.HandlerFunc) http.Handler {
		return httpLayer.RateLimitMiddleware(rateLimiter, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/property/analyze", limited(analysisHandler.Analyze))
	mux.Handle("/property/scenarios", limited(analysisHandler.Scenarios))
	mux.Handle("/property/sensitivity", limited(analysisHandler.Sensitivity))
	mux.Handle("/property/loan", limited(loanHandler.SummarizeLoan))
	mux.HandleFunc("/property/types", analysisHandler.PropertyTypes)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.RequestIDMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newCache uses Redis when REDIS_ADDR is set and reachable, a bounded
// in-memory cache otherwise. The returned func releases the cache.
func newCache(cfg config.Config) (repository.CacheRepository, func() error) {
	if cfg.RedisAddr == "" {
		memory := repository.NewMemoryCache(cfg.CacheMaxEntries, cfg.CacheTTL)
		return memory, memory.Close
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("[Cache] Warning: redis at %s unavailable (%v), using in-memory cache", cfg.RedisAddr, err)
		if err := redisCache.Close(); err != nil {
			log.Printf("[Cache] Error closing redis client: %v", err)
		}
		memory := repository.NewMemoryCache(cfg.CacheMaxEntries, cfg.CacheTTL)
		return memory, memory.Close
	}
	return redisCache, redisCache.Close
}
