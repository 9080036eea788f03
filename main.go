// =============================================================================
// CSV to LaTeX Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the csv2tex CLI application. It delegates
// command execution to the cmd package.
//
// USAGE:
//   csv2tex                 - Convert the configured CSV file to LaTeX
//   csv2tex convert         - Same as above, as an explicit subcommand
//   csv2tex config          - Print the effective configuration
//   csv2tex version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Parsing, rendering, configuration, orchestration
//   - pkg/           : File utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/cmd"
)

func main() {
	cmd.Execute()
}
