package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doctrack/internal/config"
	"doctrack/internal/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "doctrack",
		Short:        "Document tracking API",
		SilenceUsage: true,
	}
	cmd.AddCommand(newServeCmd(), newMigrateCmd())
	return cmd
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.AppConfig, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log, nil
}
