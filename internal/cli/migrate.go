package cli

import (
	"errors"
	"fmt"

	"talent_bridge_backend/pkg/database"
	"talent_bridge_backend/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the submission ledger schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cfg.Database.Enabled {
				return errors.New("database.enabled is false; nothing to migrate")
			}
			logger.InitLogger(cfg)
			defer logger.Log.Sync()

			db, err := database.InitDB(&cfg.Database, false)
			if err != nil {
				return fmt.Errorf("connect %s: %w", cfg.Database.Driver, err)
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Ledger schema is up to date (%s)\n", cfg.Database.Driver)
			return nil
		},
	}
}
