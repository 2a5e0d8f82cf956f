package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Roger5791/notekeeper"
)

var (
	verbose   bool
	storePath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "A notebook/note store kept in a single JSON slot",
	Long: `notekeeper manages notebooks of titled, timestamped notes.
The whole store lives in one JSON file, is reloaded before every command,
and written back atomically after every change.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the store file (default: config file, then $NOTEKEEPER_STORE)")
}

// openService resolves the store slot and builds a service on it.
func openService(mustExist bool) (*notekeeper.Service, error) {
	path, err := resolveStorePath()
	if err != nil {
		return nil, err
	}

	return notekeeper.New(path,
		notekeeper.WithLogger(slog.Default()),
		notekeeper.WithMustExist(mustExist),
	)
}
