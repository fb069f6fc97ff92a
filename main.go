package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/msomdec/userdir/internal/config"
	"github.com/msomdec/userdir/internal/handler"
	"github.com/msomdec/userdir/internal/repository/sqlite"
	"github.com/msomdec/userdir/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		slog.Error("invalid LOG_LEVEL", "value", cfg.Log.Level)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	db, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	verifier, err := service.NewBasicVerifier(cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.BcryptCost)
	if err != nil {
		slog.Error("build credential verifier", "error", err)
		os.Exit(1)
	}

	userService := service.NewUserService(db.Users())

	if cfg.Seed {
		if err := userService.SeedSampleData(context.Background()); err != nil {
			slog.Error("seed sample data", "error", err)
			os.Exit(1)
		}
		slog.Info("sample data seeded")
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.NewUserHandler(userService, verifier))

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler.RequestLogger(handler.SecurityHeaders(mux)),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
