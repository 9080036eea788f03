// =============================================================================
// CSV to LaTeX Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command. It prints a single line that
// identifies the csv2tex build, suitable for bug reports:
//
//   csv2tex v1.2.0 (commit 3f2c1ab, go1.24.11 linux/amd64)
//
// Local builds report "dev" and "none" unless ldflags are given.
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version and Commit are stamped by release builds:
//
//	go build -ldflags "-X github.com/ginjaninja78/CSV-to-LaTeX-conversion/cmd.Version=v1.2.0 \
//	  -X github.com/ginjaninja78/CSV-to-LaTeX-conversion/cmd.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = "none"
)

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the csv2tex version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionLine())
	},
}

// versionLine formats the build identity of the running binary.
func versionLine() string {
	return fmt.Sprintf("csv2tex %s (commit %s, %s %s/%s)",
		Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
