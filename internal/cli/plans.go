package cli

import (
	"fmt"

	"talent_bridge_backend/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage the individual plan files",
	}
	cmd.AddCommand(newPlansSyncCommand())
	return cmd
}

func newPlansSyncCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Upload plan PDFs to the configured storage",
		Long: `Upload every <locale>/<PlanName>.pdf file below --dir (locale is ar or en)
to the configured plan storage, overwriting existing objects.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			storage, err := service.NewStorageProvider(&cfg.Storage)
			if err != nil {
				return err
			}
			plans := service.NewPlanService(storage, cfg.Storage.DefaultLocale)

			keys, err := plans.Sync(cmd.Context(), dir)
			if err != nil {
				return fmt.Errorf("sync plans: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(keys) == 0 {
				color.New(color.FgYellow).Fprintf(out, "No plan files found under %s\n", dir)
				return nil
			}
			for _, k := range keys {
				fmt.Fprintf(out, "  %s\n", k)
			}
			color.New(color.FgGreen).Fprintf(out, "Uploaded %d plan file(s) to %s storage\n", len(keys), cfg.Storage.Type)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "plans", "directory with ar/ and en/ subdirectories")

	return cmd
}
