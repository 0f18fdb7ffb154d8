package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"car-emi/config"
	httpLayer "car-emi/http"
	"car-emi/repository"
	"car-emi/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		log.Printf("Using Redis cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	scheduleRepo := repository.NewScheduleRepositoryMemory()

	scheduleService := service.NewScheduleService(scheduleRepo, cache, cfg.CacheTTL)
	scheduleHandler := httpLayer.NewScheduleHandler(scheduleService)

	quoteService := service.NewQuoteService(scheduleService)
	quoteHandler := httpLayer.NewQuoteHandler(quoteService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/emi/installment",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.CalculateInstallment),
		),
	)

	mux.Handle(
		"/emi/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.CalculateSchedule),
		),
	)

	mux.Handle(
		"/emi/quote",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(quoteHandler.CalculateQuote),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("EMI API listening on http://localhost:%s", cfg.Port)
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
