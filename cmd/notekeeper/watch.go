package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream store-change events",
	Long: `Watch prints a line whenever the store file changes on disk,
for example when another notekeeper process saves it. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(true)
		if err != nil {
			fatal("Failed to open store", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Failed to watch store", err)
		}

		for e := range events {
			ts := time.Unix(e.Timestamp, 0).Format(time.RFC3339)
			fmt.Printf("%s  %s\n", ts, e)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
