// Package main runs the loan decision engine HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"loan-decision-engine/internal/config"
	"loan-decision-engine/internal/handlers"
	"loan-decision-engine/internal/metrics"
	"loan-decision-engine/internal/services/engine"
	"loan-decision-engine/internal/utils"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := utils.InitLogger(cfg.LogLevel, cfg.Stage); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	m := metrics.New()
	decisionEngine := engine.New(cfg)
	decisionHandler := handlers.NewDecisionHandler(decisionEngine, m)

	// Setup routes
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())
	decisionHandler.Register(r)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTPTimeout,
		WriteTimeout:      cfg.HTTPTimeout,
	}

	go func() {
		utils.GetLogger().Info("starting HTTP server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("stage", cfg.Stage),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.GetLogger().Fatal("server failed", zap.Error(err))
		}
	}()

	// Block until interrupted, then drain in-flight requests
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	utils.GetLogger().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.GetLogger().Error("shutdown failed", zap.Error(err))
	}
}
