package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editFlagTitle string
	editFlagBody  string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a note's title or body",
	Long: `Updates the title and/or body of an existing note and bumps its
updated_at timestamp. At least one of --title or --body is required.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editFlagTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editFlagBody, "body", "", "New body")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	var title, body *string
	if cmd.Flags().Changed("title") {
		title = &editFlagTitle
	}
	if cmd.Flags().Changed("body") {
		body = &editFlagBody
	}

	if title == nil && body == nil {
		return fmt.Errorf("nothing to update: provide --title or --body")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	note, err := store.Update(id, title, body)
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(noteJSON(note))
	}

	if !flagQuiet {
		fmt.Printf("Note updated: %s\n", note.ID)
	}

	return nil
}
