// File: wayfare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfare/config"
	"wayfare/handlers"
	"wayfare/middleware"
	"wayfare/routes"
	"wayfare/services/amadeus"
	"wayfare/services/availability"
	"wayfare/services/images"
	ai "wayfare/services/intelligence"
	"wayfare/services/options"
	"wayfare/services/trip"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream adapters.
	amadeusClient := amadeus.NewClient(
		config.AppConfig.AmadeusClientID,
		config.AppConfig.AmadeusClientSecret,
		config.AppConfig.AmadeusEnv,
	)
	if !amadeusClient.Configured() {
		logger.Warn("Amadeus credentials missing; flight and hotel search run on deterministic fallback data")
	}
	imageClient := images.NewUnsplashClient(config.AppConfig.UnsplashAccessKey)

	// Services.
	aiSvc := ai.NewGeminiService(config.AppConfig.GeminiAPIKey)
	availabilitySvc := &availability.DefaultService{
		Flights: amadeusClient,
		Hotels:  amadeusClient,
	}
	optionsSvc := &options.DefaultService{
		Flights: amadeusClient,
		Hotels:  amadeusClient,
		AI:      aiSvc,
		Images:  imageClient,
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	sessionStore := trip.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	tripSvc := &trip.DefaultService{
		Store:        sessionStore,
		AI:           aiSvc,
		Availability: availabilitySvc,
		Options:      optionsSvc,
	}

	chatHandler := handlers.NewChatHandler(tripSvc)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilitySvc)
	optionsHandler := handlers.NewOptionsHandler(optionsSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatMessageHandler:    chatHandler.MessageHandler,
		ChatActionHandler:     chatHandler.ActionHandler,
		ChatTranscriptHandler: chatHandler.TranscriptHandler,
		ChatResetHandler:      chatHandler.ResetHandler,

		QuickAvailabilityHandler: availabilityHandler.QuickAvailabilityHandler,

		GenerateOptionsHandler: optionsHandler.GenerateOptionsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
