package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective analysis configuration",
	Long: `Print the analysis configuration after applying --config over the
defaults. The YAML output is a valid config file to start from.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if outputJSON {
			return outputResult(cmd.OutOrStdout(), cfg, outputFile, true)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		if outputFile != "" {
			return saveToFile(outputFile, data)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
