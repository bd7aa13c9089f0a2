package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var addFlagBody string

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new note",
	Long: `Creates a new note with the given title.

The body comes from the --body flag, or from stdin when piped.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFlagBody, "body", "", "Note body")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := args[0]

	body := addFlagBody
	if body == "" && !isTerminal(os.Stdin) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read body from stdin: %w", err)
		}
		body = string(data)
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	note, err := store.Add(title, body)
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(noteJSON(note))
	}

	if !flagQuiet {
		fmt.Printf("Note added: %s\n", note.ID)
		fmt.Printf("Title: %s\n", note.Title)
	}

	return nil
}
