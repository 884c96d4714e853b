package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"lawgate/internal/auth/handler"
	"lawgate/internal/auth/service"
	"lawgate/internal/auth/store/blob"
	"lawgate/internal/auth/store/license"
	"lawgate/internal/auth/store/user"
	"lawgate/internal/jwttoken"
	"lawgate/internal/platform/config"
	"lawgate/internal/platform/health"
	"lawgate/internal/platform/httpserver"
	"lawgate/internal/platform/logger"
	"lawgate/internal/platform/metrics"
	"lawgate/internal/platform/supabase"
	httptransport "lawgate/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal/auth packages.
func main() {
	// Local development reads a .env file; in deployment the variables
	// come from the process environment and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing lawgate",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"license_bucket", cfg.LicenseBucket,
	)

	supaClient := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey)

	users := user.NewSupabaseStore(supaClient)
	licenses := license.NewSupabaseStore(supaClient)
	blobs := blob.NewSupabaseStore(supaClient, cfg.LicenseBucket)

	jwtService := jwttoken.NewJWTService(cfg.JWTSecret, cfg.JWTExpiresIn)

	m := metrics.New()
	authService := service.NewService(users, licenses, blobs, jwtService,
		service.WithLogger(log),
		service.WithMetrics(m),
	)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("supabase", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return supaClient.Ping(ctx)
	})

	router := httptransport.NewRouter(
		handler.New(authService, log),
		healthHandler,
		jwttoken.NewJWTServiceAdapter(jwtService),
		m,
		log,
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	if err := httpserver.Shutdown(srv, 10*time.Second); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
