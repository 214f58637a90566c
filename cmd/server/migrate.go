package main

import (
	"farm_manager/internal/database"
	"farm_manager/internal/logger"
	"farm_manager/internal/migrations"

	"github.com/spf13/cobra"
)

var seedData bool

// migrateCmd brings the schema up to date without starting the server.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Creates or updates every table. With --seed it also creates the admin
account from ADMIN_EMAIL/ADMIN_PASSWORD and the default inventory categories.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&seedData, "seed", false, "Insert default data after migrating")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	db, err := database.Initialize(cfg.DatabaseURL, logger.GormLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := migrations.RunMigrations(db, log); err != nil {
		return err
	}
	if !seedData {
		return nil
	}
	return migrations.Seed(db, migrations.SeedOptions{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}, log)
}
