package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective coins configuration as YAML",
	Long: `Print the configuration a session would use after applying the search
order: --config, ~/.coinrush/configs/coins.yaml, ./configs/coins.yaml, then
the built-in defaults. The output is a valid config file.`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
