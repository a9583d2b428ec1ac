package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the config search path
and the difficulty preset are applied.

Config search order:
  --config <path>
  ~/.space-arcade/configs/space.yaml
  ./configs/space.yaml
  built-in defaults

Examples:
  space config
  space config --difficulty hard
  space config --defaults > ~/.space-arcade/configs/space.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
