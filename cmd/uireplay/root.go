package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uireplay",
	Short: "uireplay replays captured interaction logs against a running editor",
	Long: `uireplay re-executes a recorded interaction log (interaction-log-*.jsonl)
against a running document editor instance over its remote debugging port,
reproducing the original session for regression testing and debugging.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
