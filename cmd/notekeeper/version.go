package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Roger5791/notekeeper"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notekeeper",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notekeeper version %s\n", strings.TrimSpace(notekeeper.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
