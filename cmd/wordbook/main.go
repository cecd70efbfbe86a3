package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordbook/internal/config"
	"wordbook/internal/database"
	"wordbook/internal/handler"
	"wordbook/internal/repository/sqlstore"
	"wordbook/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting wordbook", zap.String("env", cfg.Env))

	// Open connection pool
	db, err := database.Open(context.Background(), cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repository and service
	wordService := service.NewWordService(
		sqlstore.NewWordRepo(db, sqlstore.DialectFor(cfg.Database.Driver)),
	)

	// Initialize handler
	h := handler.NewHandler(wordService, db, cfg.Server, logger)

	// Bind before serving so a taken port fails startup
	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		logger.Fatal("Failed to bind listener", zap.String("addr", cfg.Addr()), zap.Error(err))
	}

	srv := &http.Server{
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(logger),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("addr", listener.Addr().String()))
		serveErr <- srv.Serve(listener)
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", zap.Error(err))
		}
		return
	case <-sigChan:
	}

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down server", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newLogger picks the zap preset for the environment
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
