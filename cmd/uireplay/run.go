package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osvk/uireplay/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay an interaction log against the running editor",
	Long: `Parses the whole log up front (fail-fast on the first malformed line),
optionally runs the pre-step sequence to open a document cell and the plugin
panel, then executes every record in file order. The first failing record
aborts the replay.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{}
		opts.LogPath, _ = cmd.Flags().GetString("log")
		opts.DryParse, _ = cmd.Flags().GetBool("dry-parse")
		opts.NoPrepare, _ = cmd.Flags().GetBool("no-prepare")
		opts.DebuggerAddress, _ = cmd.Flags().GetString("debugger-address")
		opts.SkipRulesPath, _ = cmd.Flags().GetString("skip-rules")

		if v, _ := cmd.Flags().GetBool("continue-on-error"); v {
			fmt.Fprintln(os.Stderr, "warning: --continue-on-error is ignored; replay is always fail-fast")
		}
		if v, _ := cmd.Flags().GetBool("all-sessions"); v {
			fmt.Fprintln(os.Stderr, "warning: --all-sessions is ignored; full file order is already used")
		}

		summary, err := cli.Execute(cmd.Context(), opts)
		if summary != nil {
			cli.RenderSummary(os.Stdout, summary)
		}
		if err != nil {
			if summary == nil {
				fmt.Fprintf(os.Stderr, "replay failed: %v\n", err)
			}
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("log", "", "Path to the interaction log (default: latest interaction-log-*.jsonl in cwd)")
	runCmd.Flags().Bool("dry-parse", false, "Validate the whole log without touching the editor")
	runCmd.Flags().Bool("no-prepare", false, "Skip the pre-step sequence (cell + plugin panel)")
	runCmd.Flags().String("debugger-address", "", "Editor remote debugging address (default from env, 127.0.0.1:9222)")
	runCmd.Flags().String("skip-rules", "", "YAML file with extra skip rules")

	// Accepted for compatibility with older capture tooling; ignored.
	runCmd.Flags().Bool("continue-on-error", false, "")
	runCmd.Flags().Bool("all-sessions", false, "")
	_ = runCmd.Flags().MarkHidden("continue-on-error")
	_ = runCmd.Flags().MarkHidden("all-sessions")

	// Make 'run' the default when no subcommand is given.
	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
