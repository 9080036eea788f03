package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/config"
)

// configCmd prints the effective configuration after all layers are merged.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration that a conversion would use, after merging
defaults, the config file, CSV2TEX_* environment variables and flags.

The output is valid csv2tex.yaml content.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		w := cmd.OutOrStdout()
		if cfg.ConfigFile != "" {
			fmt.Fprintf(w, "# loaded from %s\n", cfg.ConfigFile)
		}
		_, err = w.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	config.RegisterFlags(configCmd.Flags())
}
