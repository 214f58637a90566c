package main

import (
	"fmt"
	"os"

	"farm_manager/internal/config"
	"farm_manager/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Farm operations management API",
	Long: `Manages gardens, harvests, inventory, care activities, labor,
customers and orders for a small farm, and reports monthly statistics.

Configuration is read from .env, config/config.yaml and the environment.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the process logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.AppEnv == "development")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}
