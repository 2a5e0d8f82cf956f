package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/Roger5791/notekeeper"
)

var (
	noteAddTitle  string
	noteAddText   string
	noteListJSON  bool
	noteListMatch string
	noteEditTitle string
	noteEditText  string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [notebook-id]",
	Short: "Add a note to a notebook",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(true)
		if err != nil {
			fatal("Failed to open store", err)
		}

		note, err := svc.CreateNote(context.Background(), args[0], noteAddTitle, noteAddText)
		if err != nil {
			fatal("Failed to add note", err)
		}

		fmt.Printf("%s  %s\n", note.ID, note.Title)
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list [notebook-id]",
	Short: "List the notes of a notebook, newest first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(true)
		if err != nil {
			fatal("Failed to open store", err)
		}

		notes, err := svc.Notes(context.Background(), args[0])
		if err != nil {
			fatal("Failed to list notes", err)
		}

		filtered := notes[:0:0]
		for _, n := range notes {
			if noteListMatch != "" {
				ok, err := doublestar.Match(noteListMatch, n.Title)
				if err != nil {
					fatal("Invalid match pattern", err)
				}
				if !ok {
					continue
				}
			}
			filtered = append(filtered, n)
		}

		if noteListJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, n := range filtered {
			posted := time.UnixMilli(n.PostedOn).Format("2006-01-02 15:04")
			fmt.Printf("%s  %s  %s\n", n.ID, posted, n.Title)
		}
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show [note-id]",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(true)
		if err != nil {
			fatal("Failed to open store", err)
		}

		note, err := svc.NoteByID(context.Background(), args[0])
		if err != nil {
			fatal("Failed to show note", err)
		}

		posted := time.UnixMilli(note.PostedOn).Format(time.RFC1123)
		fmt.Printf("%s\nNotebook: %s\nPosted:   %s\n\n%s\n", note.Title, note.NotebookID, posted, note.Text)
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [note-id]",
	Short: "Update the title and/or text of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		patch := notekeeper.NotePatch{}
		if cmd.Flags().Changed("title") {
			patch.Title = &noteEditTitle
		}
		if cmd.Flags().Changed("text") {
			patch.Text = &noteEditText
		}
		if patch.Title == nil && patch.Text == nil {
			fmt.Println("Nothing to change: pass --title and/or --text")
			os.Exit(1)
		}

		svc, err := openService(true)
		if err != nil {
			fatal("Failed to open store", err)
		}

		note, err := svc.UpdateNote(context.Background(), args[0], patch)
		if err != nil {
			fatal("Failed to edit note", err)
		}

		fmt.Printf("%s  %s\n", note.ID, note.Title)
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [notebook-id] [note-id]",
	Short: "Delete a note from a notebook",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(true)
		if err != nil {
			fatal("Failed to open store", err)
		}

		remaining, err := svc.DeleteNote(context.Background(), args[0], args[1])
		if err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Note deleted: %s (%d notes remain)\n", args[1], len(remaining))
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)

	noteAddCmd.Flags().StringVarP(&noteAddTitle, "title", "t", "", "Note title")
	noteAddCmd.Flags().StringVar(&noteAddText, "text", "", "Note text")
	noteAddCmd.MarkFlagRequired("title")

	noteListCmd.Flags().BoolVar(&noteListJSON, "json", false, "Output in JSON format")
	noteListCmd.Flags().StringVar(&noteListMatch, "match", "", "Filter notes by title glob")

	noteEditCmd.Flags().StringVarP(&noteEditTitle, "title", "t", "", "New title")
	noteEditCmd.Flags().StringVar(&noteEditText, "text", "", "New text")
}
