package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Roger5791/notekeeper"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the store slot",
	Long:  `Init creates the store file (and its parent directory) with an empty store.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := resolveStorePath()
		if err != nil {
			fatal("Failed to resolve store path", err)
		}

		if _, err := notekeeper.Init(path, notekeeper.WithAutoInit(true)); err != nil {
			fatal("Failed to initialize store", err)
		}

		fmt.Printf("Store initialized: %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
