package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/annazecevic/band-service/config"
	"github.com/annazecevic/band-service/handler"
	"github.com/annazecevic/band-service/logger"
	"github.com/annazecevic/band-service/repository"
	"github.com/annazecevic/band-service/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.LoadConfig(envFile)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(logger.Config{
		ServiceName: handler.ServiceName,
		Environment: cfg.Environment,
		LogFilePath: cfg.LogFilePath,
		HMACKey:     cfg.LogHMACKey,
		MaxSizeMB:   cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAgeDays:  cfg.LogMaxAgeDays,
	})
	defer logger.GetLogger().Close()

	logger.Info(logger.EventServiceStartup, "Band service starting", logger.Fields(
		"port", cfg.ServerPort,
		"environment", cfg.Environment,
	))

	repo, err := repository.NewBandRepository(repository.SeedBands())
	if err != nil {
		logger.Error(logger.EventGeneral, "Seed data rejected", logger.Fields("error", err.Error()))
		return err
	}
	svc := service.NewBandService(repo)

	bands, err := svc.ListBands(ctx)
	if err != nil {
		return err
	}
	logger.Info(logger.EventSeedLoaded, "Seed data loaded", logger.Fields("bands", len(bands)))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, limiter, err := newRouter(cfg, svc)
	if err != nil {
		return err
	}
	defer limiter.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(logger.EventServiceStartup, "Server starting", logger.Fields("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error(logger.EventGeneral, "Failed to start server", logger.Fields("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(logger.EventServiceShutdown, "Shutting down", logger.Fields("timeout", cfg.ShutdownTimeout.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(logger.EventServiceShutdown, "Graceful shutdown failed", logger.Fields("error", err.Error()))
		return err
	}

	logger.Info(logger.EventServiceShutdown, "Server stopped", nil)
	return nil
}
