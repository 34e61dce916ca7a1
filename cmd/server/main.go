package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/graphql"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/pkg/logger"
)

func main() {
	// A missing backend key is fatal at start-up
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := logger.New(cfg.Log.Level)
	if cfg.Log.File != "" {
		var closer io.Closer
		log, closer = logger.NewRotating(cfg.Log.Level, logger.FileOptions{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		})
		defer closer.Close()
	}
	slog.SetDefault(log)

	log.Info("starting product edge server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"backend", cfg.Backend.URL,
		"log_level", cfg.Log.Level,
	)

	client := graphql.NewClient(cfg.Backend.URL, cfg.Backend.APIKey, nil, log)
	productRepo := repository.NewGraphQLProductRepository(client, log)
	productService := service.NewProductService(productRepo)

	productHandler := handlers.NewProductHandler(productService, log)
	healthHandler := handlers.NewHealthHandler(client.Endpoint(), log)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(cfg, productHandler, healthHandler, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}
