package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sbilibin2017/library-api/internal/config"
	"github.com/sbilibin2017/library-api/internal/logger"
	"github.com/sbilibin2017/library-api/internal/repositories"
	"github.com/sbilibin2017/library-api/internal/router"
	"github.com/sbilibin2017/library-api/internal/services"
	"github.com/sbilibin2017/library-api/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const shutdownTimeout = 10 * time.Second

// @title Library API
// @version 1.0.0
// @description CRUD service for a book catalogue guarded by a static bearer token
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger and database, serves HTTP and shuts down
// gracefully on SIGINT/SIGTERM or when ctx is cancelled.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel, "environment", cfg.Environment)

	db, err := storage.Connect(ctx, storage.Options{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnectTimeout:  cfg.ConnectTimeout,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.Migrate(ctx, db); err != nil {
		return err
	}

	bookService := services.NewBookService(
		repositories.NewBookReadRepository(db),
		repositories.NewBookWriteRepository(db),
	)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.New(bookService, router.Options{
			Environment: cfg.Environment,
			Production:  cfg.IsProduction(),
			StaticToken: cfg.StaticToken,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("shutdown signal received, stopping HTTP server")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
		return err
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
