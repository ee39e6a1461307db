package main

import (
	"context"
	"database/sql"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doctrack/internal/database"
	"doctrack/internal/database/migration"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}
	cmd.AddCommand(
		migrateSubcommand("up", "Apply all pending migrations", func(ctx context.Context, db *sql.DB, log *zap.Logger, host string) error {
			return migration.EnsureMigrated(ctx, db, log, host)
		}),
		migrateSubcommand("down", "Roll back the latest migration", func(ctx context.Context, db *sql.DB, log *zap.Logger, _ string) error {
			return migration.Down(ctx, db, log)
		}),
		migrateSubcommand("status", "Print migration status", func(ctx context.Context, db *sql.DB, log *zap.Logger, _ string) error {
			return migration.Status(ctx, db, log)
		}),
	)
	return cmd
}

func migrateSubcommand(use, short string, run func(context.Context, *sql.DB, *zap.Logger, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if !cfg.Database.Enabled() {
				return errors.New("DB_HOST is not set; migrations only apply to PostgreSQL")
			}
			db, err := database.NewPostgres(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			return run(cmd.Context(), db, log, cfg.Database.Host)
		},
	}
}
