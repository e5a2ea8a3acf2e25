// Command bespokefit inspects the artifacts of a bespoke fitting run:
// force-field files, the changes a run made to them, and the pre-built
// reference-data collection workflows.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openforcefield/bespoke-fit/slogger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:          "bespokefit",
	Short:        "Inspect bespoke force-field fitting artifacts",
	SilenceUsage: true,
}

func getLogger() slogger.Logger {
	return slogger.New(slogger.LevelFromString(logLevel))
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
