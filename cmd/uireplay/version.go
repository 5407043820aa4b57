package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osvk/uireplay"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of uireplay",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("uireplay version %s\n", strings.TrimSpace(uireplay.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
