package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	appauth "github.com/jw6ventures/leaddesk/internal/auth"
	"github.com/jw6ventures/leaddesk/internal/config"
	"github.com/jw6ventures/leaddesk/internal/crm"
	httpserver "github.com/jw6ventures/leaddesk/internal/http"
)

func main() {
	log.Println("Starting LeadDesk server...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := crm.New(cfg.API.BaseURL, cfg.API.Timeout)
	sessionManager := appauth.NewSessionManager(cfg)
	authService := appauth.NewService(api, sessionManager)

	r := httpserver.NewRouter(cfg, api, sessionManager, authService)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
