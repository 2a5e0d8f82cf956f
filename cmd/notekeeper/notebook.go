package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	notebookListJSON  bool
	notebookListMatch string
)

var notebookCmd = &cobra.Command{
	Use:   "notebook",
	Short: "Manage notebooks",
}

var notebookCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a notebook",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(false)
		if err != nil {
			fatal("Failed to open store", err)
		}

		nb, err := svc.CreateNotebook(context.Background(), args[0])
		if err != nil {
			fatal("Failed to create notebook", err)
		}

		fmt.Printf("%s  %s\n", nb.ID, nb.Name)
	},
}

var notebookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notebooks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(true)
		if err != nil {
			fatal("Failed to open store", err)
		}

		notebooks, err := svc.Notebooks(context.Background())
		if err != nil {
			fatal("Failed to list notebooks", err)
		}

		filtered := notebooks[:0:0]
		for _, nb := range notebooks {
			if notebookListMatch != "" {
				ok, err := doublestar.Match(notebookListMatch, nb.Name)
				if err != nil {
					fatal("Invalid match pattern", err)
				}
				if !ok {
					continue
				}
			}
			filtered = append(filtered, nb)
		}

		if notebookListJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, nb := range filtered {
			fmt.Printf("%s  %s (%d notes)\n", nb.ID, nb.Name, len(nb.Notes))
		}
	},
}

var notebookRenameCmd = &cobra.Command{
	Use:   "rename [id] [name]",
	Short: "Rename a notebook",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(true)
		if err != nil {
			fatal("Failed to open store", err)
		}

		nb, err := svc.RenameNotebook(context.Background(), args[0], args[1])
		if err != nil {
			fatal("Failed to rename notebook", err)
		}

		fmt.Printf("%s  %s\n", nb.ID, nb.Name)
	},
}

var notebookDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a notebook and all its notes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(true)
		if err != nil {
			fatal("Failed to open store", err)
		}

		if err := svc.DeleteNotebook(context.Background(), args[0]); err != nil {
			fatal("Failed to delete notebook", err)
		}

		fmt.Printf("Notebook deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(notebookCmd)
	notebookCmd.AddCommand(notebookCreateCmd)
	notebookCmd.AddCommand(notebookListCmd)
	notebookCmd.AddCommand(notebookRenameCmd)
	notebookCmd.AddCommand(notebookDeleteCmd)

	notebookListCmd.Flags().BoolVar(&notebookListJSON, "json", false, "Output in JSON format")
	notebookListCmd.Flags().StringVar(&notebookListMatch, "match", "", "Filter notebooks by name glob")
}
