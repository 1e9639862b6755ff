package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plastic-world/internal/admin"
	"plastic-world/internal/advice"
	"plastic-world/internal/auth"
	"plastic-world/internal/checkout"
	"plastic-world/internal/config"
	"plastic-world/internal/handler"
	"plastic-world/internal/router"
	"plastic-world/internal/settings"
	"plastic-world/internal/social"
	"plastic-world/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("shop", cfg.Shop.Name).Msg("starting storefront API server")

	// Application state: seeded catalogue, empty cart and order history.
	st := store.New(store.SeedCatalogue(), logger)

	// Persisted social credentials and the Graph posting client.
	settingsStore := settings.NewStore(cfg.Settings.SocialCredentialsFile, logger)
	socialClient := social.NewClient(cfg.Social.GraphEndpoint, settingsStore, logger)

	// Admin authentication: static credential pair, in-memory sessions.
	sessions := auth.NewSessionStore()
	authenticator := auth.NewStaticAuthenticator(cfg.Admin.Username, cfg.Admin.Password, sessions, logger)

	// Outbound collaborators.
	channel := checkout.NewWhatsAppChannel(cfg.Shop.WhatsAppNumber, logger)
	adviceClient := advice.NewClient(advice.Config{
		Endpoint:    cfg.Advice.Endpoint,
		APIKey:      cfg.Advice.APIKey,
		Model:       cfg.Advice.Model,
		Temperature: cfg.Advice.Temperature,
	}, logger)

	// Initialize services
	checkoutService := checkout.NewService(st, channel, cfg.Shop.Name, logger)
	adminService := admin.NewService(st, socialClient, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(st, logger)
	cartHandler := handler.NewCartHandler(st, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	adviceHandler := handler.NewAdviceHandler(adviceClient, st, logger)
	adminHandler := handler.NewAdminHandler(adminService, st, authenticator, settingsStore, socialClient, logger)

	// Initialize router
	mux := router.New(productHandler, cartHandler, checkoutHandler, adviceHandler, adminHandler, sessions, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
