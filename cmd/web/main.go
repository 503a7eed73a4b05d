package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospitalcompare/internal/adapters/providers/location"
	"hospitalcompare/internal/adapters/session"
	"hospitalcompare/internal/api/handlers"
	"hospitalcompare/internal/api/routes"
	"hospitalcompare/internal/application/services"
	"hospitalcompare/internal/domain/providers"
	"hospitalcompare/internal/infrastructure/clients/hospitalapi"
	redisclient "hospitalcompare/internal/infrastructure/clients/redis"
	"hospitalcompare/internal/infrastructure/observability"
	"hospitalcompare/pkg/config"
)

func main() {

	// Load configuration

	cfg, err := config.Load()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.Log.ServiceName, cfg.Log.Environment)
	logger := observability.GetLogger()

	ctx := context.Background()

	// Initialize the backend API client

	apiClient := hospitalapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	logger.Info().Str("base_url", cfg.API.BaseURL).Msg("hospital API client initialized")

	// Initialize the session store

	var sessionStore providers.SessionStore
	switch cfg.Session.Backend {
	case "redis":
		redisClient, err := redisclient.NewClient(&cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer redisClient.Close()

		sessionStore, err = session.NewRedisStore(ctx, redisClient, cfg.Session.RedisKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load session from Redis")
		}
		logger.Info().Str("key", cfg.Session.RedisKey).Msg("Redis session store initialized")
	case "memory":
		sessionStore = session.NewMemoryStore()
		logger.Info().Msg("in-memory session store initialized, session will not survive restarts")
	default:
		fileStore, err := session.NewFileStore(cfg.Session.FilePath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize file session store")
		}
		sessionStore = fileStore
		logger.Info().Str("path", cfg.Session.FilePath).Msg("file session store initialized")
	}

	// Initialize the device location provider

	var locationProvider providers.LocationProvider
	if cfg.Location.Provider == "static" {
		locationProvider = location.NewStaticProvider(cfg.Location.Latitude, cfg.Location.Longitude)
	} else {
		locationProvider = location.NewUnavailableProvider()
	}

	// Initialize application services

	searchService := services.NewSearchService(apiClient, locationProvider)
	bookingFlow := services.NewBookingFlow(apiClient, sessionStore)
	reviewsService := services.NewReviewsService(apiClient)
	authService := services.NewAuthService(apiClient, sessionStore)
	appointmentsService := services.NewAppointmentsService(apiClient, sessionStore)

	// Initialize handlers

	searchHandler := handlers.NewSearchHandler(searchService)
	bookingHandler := handlers.NewBookingHandler(bookingFlow, searchService)
	reviewsHandler := handlers.NewReviewsHandler(reviewsService)
	authHandler := handlers.NewAuthHandler(authService, sessionStore)
	appointmentsHandler := handlers.NewAppointmentsHandler(appointmentsService)

	// Set up router

	router := routes.NewRouter(
		searchHandler,
		bookingHandler,
		reviewsHandler,
		authHandler,
		appointmentsHandler,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
