package cli

import (
	"talent_bridge_backend/internal/app"

	"github.com/spf13/cobra"
)

func NewServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server until SIGINT or SIGTERM. Pending survey saves are
drained before the process exits. The ledger schema is migrated on start
outside release mode, or always with --migrate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dir, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.ForceMigrate = migrate

			application, err := app.NewApp(cfg, dir)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "migrate the ledger schema even in release mode")

	return cmd
}
