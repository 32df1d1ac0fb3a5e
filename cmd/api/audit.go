package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brandkit-studio/brandkit-backend/config"
	"github.com/brandkit-studio/brandkit-backend/internal/bootstrap"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/audit"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/repository"
	"github.com/brandkit-studio/brandkit-backend/internal/logging"
	"github.com/brandkit-studio/brandkit-backend/internal/storage/postgres"
)

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Count projects that never received a brand kit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg := config.FromEnv()

			logger, err := logging.New(cfg.App.LogLevel, cfg.App.Environment)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			for _, w := range cfg.Warnings {
				logger.Warn("config fallback", zap.String("detail", w))
			}

			pool, err := bootstrap.OpenDB(cmd.Context(), bootstrap.DBOptions{
				DSN:      postgres.DSN(&cfg.Database),
				MaxConns: 1,
			})
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := audit.NewScheduler(repository.NewProjectRepository(pool), logger).RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "orphaned projects: %d\n", n)
			return nil
		},
	}
}
