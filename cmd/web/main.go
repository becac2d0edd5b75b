package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"currency-wallet-web/config"
	"currency-wallet-web/internal/adapter/backend"
	"currency-wallet-web/internal/adapter/session"
	"currency-wallet-web/internal/adapter/web/handler"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/internal/i18n"
	"currency-wallet-web/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Backend.BaseURL).
		Msg("Starting Currency Wallet Web")

	ctx := context.Background()

	// Backend API client — the only place application state lives.
	client := backend.New(cfg.Backend, log)
	healthCheckers := []ports.HealthChecker{backend.NewHealthCheck(client)}

	// Session store: stateless signed cookie by default, Redis when
	// configured.
	var sessions ports.SessionStore
	switch cfg.Session.Store {
	case "redis":
		rdb, err := session.NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, cfg.Session)
		healthCheckers = append(healthCheckers, session.NewHealthCheck(rdb))
	default:
		sessions, err = session.NewCookieStore(cfg.Session)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize session store")
		}
	}

	bundle := i18n.New(cfg.I18n.DefaultLanguage)

	// Setup Gin router with all routes
	router := handler.SetupRouter(handler.RouterDeps{
		Auth:           client,
		Profile:        client,
		Accounts:       client,
		Transfer:       client,
		Exchange:       client,
		Currency:       client,
		Payments:       client,
		Admin:          client,
		Sessions:       sessions,
		Bundle:         bundle,
		LangCookie:     cfg.Session.LanguageCookie,
		SecureCookies:  cfg.Session.SecureCookies,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
