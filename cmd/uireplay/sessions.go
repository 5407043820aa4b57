package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osvk/uireplay/internal/cli"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show the logical sessions of a log (split at seq resets)",
	Long: `Groups the log's records at points where seq resets, which usually marks a
capture restart. This is a debugging aid only: 'run' always replays the full
file in line order, without truncating to the latest session.`,
	Run: func(cmd *cobra.Command, args []string) {
		logPath, _ := cmd.Flags().GetString("log")
		if err := cli.Sessions(os.Stdout, logPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().String("log", "", "Path to the interaction log (default: latest interaction-log-*.jsonl in cwd)")
}
