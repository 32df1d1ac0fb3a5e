package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brandkit-studio/brandkit-backend/config"
	"github.com/brandkit-studio/brandkit-backend/internal/bootstrap"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/audit"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/events"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/llm"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/repository"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/service"
	"github.com/brandkit-studio/brandkit-backend/internal/logging"
	"github.com/brandkit-studio/brandkit-backend/internal/storage/postgres"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)
	for _, w := range cfg.Warnings {
		logger.Warn("config fallback", zap.String("detail", w))
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	registry, err := loadRegistry(cfg.LLM.ProfilesFile)
	if err != nil {
		return err
	}
	prof, err := registry.Get(cfg.LLM.Profile)
	if err != nil {
		return err
	}

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      postgres.DSN(&cfg.Database),
		MaxConns: int32(cfg.Database.MaxConns),
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("database connected")

	var publisher events.Publisher = events.Noop{}
	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		publisher = events.NewRedisPublisher(rdb)
		logger.Info("event publishing enabled", zap.String("redis_addr", cfg.Redis.Addr))
	}

	gen, err := llm.New(ctx, llm.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
		Timeout:  cfg.LLM.Timeout,
	})
	if err != nil {
		return err
	}

	projects := repository.NewProjectRepository(pool)
	kits := repository.NewKitRepository(pool)
	svc := service.NewBrandKitService(projects, kits, gen, prof, publisher)

	var auditor *audit.Scheduler
	if cfg.Audit.Schedule != "" {
		auditor = audit.NewScheduler(projects, logger)
		if err := auditor.Start(cfg.Audit.Schedule); err != nil {
			return err
		}
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Profile:     prof.Name,
		CORSOrigins: cfg.Server.CORSOrigins,
		Logger:      logger,
		DB:          pool,
		Stats:       svc,
		Service:     svc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("profile", prof.Name),
			zap.String("provider", cfg.LLM.Provider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-sigCtx.Done():
		logger.Info("shutting down")
	}

	// Generation calls can take a while; give in-flight requests the provider timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout)
	defer cancel()

	if auditor != nil {
		auditor.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
