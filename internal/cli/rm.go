package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmFlagForce bool

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Long: `Deletes a note from the store.

Prompts for confirmation when run interactively unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmFlagForce, "force", "f", false, "Delete without confirmation")
}

func runRm(cmd *cobra.Command, args []string) error {
	id := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}

	note, err := store.Get(id)
	if err != nil {
		return err
	}

	if !rmFlagForce {
		if !confirmPrompt(fmt.Sprintf("Delete note %q (%s)?", note.Title, shortID(note.ID))) {
			return fmt.Errorf("aborted")
		}
	}

	if err := store.Delete(id); err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(map[string]interface{}{
			"deleted": true,
			"id":      id,
		})
	}

	if !flagQuiet {
		fmt.Printf("Note deleted: %s\n", id)
	}

	return nil
}
