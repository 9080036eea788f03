// =============================================================================
// CSV to LaTeX Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which runs the conversion
// pipeline once: load the CSV, render the LaTeX block, write the file.
//
// COMMAND USAGE:
//   csv2tex convert [flags]
//
// EXIT STATUS:
//   0 on success; 1 if the input is missing, cannot be parsed, or the output
//   cannot be written.
//
// =============================================================================

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/converter"
)

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the input CSV file to a LaTeX table",
	Long: `The convert command reads the input CSV, renders it as a LaTeX tabular
block, and writes it to the output path, replacing any existing content.

The output file is left untouched if the input is missing or malformed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	config.RegisterFlags(convertCmd.Flags())
}

// runConvert loads the configuration from cmd's flags and runs one conversion.
func runConvert(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := converter.NewLogger(os.Stderr, cfg.Verbose)
	if cfg.ConfigFile != "" {
		logger.Debug("using config file", "path", cfg.ConfigFile)
	}

	conv := converter.New(cfg, logger, cmd.OutOrStdout())
	_, err = conv.Run(cmd.Context())
	return err
}
