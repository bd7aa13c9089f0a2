package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Fuabioo/notesmcp/internal/core"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Long: `Lists all notes sorted by last update, newest first.

Outputs a table by default, or JSON with the --json flag.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	notes := store.List()

	if flagJSON {
		// Metadata only, matching the list_notes MCP tool
		output := make([]map[string]interface{}, 0, len(notes))
		for _, n := range notes {
			output = append(output, map[string]interface{}{
				"id":         n.ID,
				"title":      n.Title,
				"created_at": core.FormatTime(n.CreatedAt),
				"updated_at": core.FormatTime(n.UpdatedAt),
			})
		}
		return outputJSON(output)
	}

	// Human-readable table output
	if len(notes) == 0 {
		if !flagQuiet {
			fmt.Println("No notes")
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tUPDATED")

	for _, n := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			shortID(n.ID), n.Title, core.FormatTime(n.UpdatedAt))
	}

	w.Flush()
	return nil
}
