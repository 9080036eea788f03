// =============================================================================
// CSV to LaTeX Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command without a subcommand performs a conversion, so a bare `csv2tex`
// behaves like the original export script.
//
// COBRA CLI STRUCTURE:
//   rootCmd (csv2tex)          converts using defaults, config and flags
//   ├── convertCmd (csv2tex convert)
//   ├── configCmd  (csv2tex config)
//   └── versionCmd (csv2tex version)
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// Empty means csv2tex.yaml or csv2tex.yml in the working directory, if present.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "csv2tex",
	Short: "CSV to LaTeX Converter - Turn a CSV file into a LaTeX tabular for \\input{}",
	Long: `csv2tex reads a CSV file, converts it into a LaTeX tabular block, and
writes the result to a .tex file for inclusion in a document.

With no flags and no config file it reads Sources/csv_files/brief.csv and
writes annotated_bib/table_output.tex, with a zero-based row-index column.

Configuration precedence (highest first):
  flags > CSV2TEX_* environment variables > csv2tex.yaml > defaults

Example Usage:
  csv2tex                                     # Convert using defaults
  csv2tex -i data.csv -o table.tex --index=false
  csv2tex convert --caption "Results" --label tab:results
  csv2tex config                              # Show the effective configuration`,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
// Any error is printed to stderr and the process exits with status 1.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to the configuration file (default csv2tex.yaml if present)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)

	// The root command converts too, so it accepts the same flags as convert.
	config.RegisterFlags(rootCmd.Flags())
}
