// Package cli is the command line entry point: the HTTP server plus a few
// operator commands that reuse the same configuration.
package cli

import (
	"talent_bridge_backend/internal/config"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

const defaultConfigDir = "configs"

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "talent-bridge",
		Short: "Twice-exceptional screening backend",
		Long: `Talent Bridge serves the bilingual screening questionnaires, runs the
assessment flow, classifies the results and forwards them to the survey
storage API.`,
		Version:      Version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("config", defaultConfigDir, "directory holding config.yaml")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewScoreCommand())
	cmd.AddCommand(NewPlansCommand())

	return cmd
}

func Execute() error {
	return NewRootCommand().Execute()
}

func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	dir, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, "", err
	}
	return cfg, dir, nil
}
