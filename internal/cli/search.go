package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Fuabioo/notesmcp/internal/core"
	"github.com/spf13/cobra"
)

var (
	searchFlagIgnoreCase bool
	searchFlagMax        int
)

var searchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Search note titles and bodies",
	Long: `Searches all notes with a regular expression, matching against
titles and bodies. Results are sorted by last update, newest first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchFlagIgnoreCase, "ignore-case", "i", false, "Case-insensitive search")
	searchCmd.Flags().IntVar(&searchFlagMax, "max", 50, "Maximum notes to show")
}

func runSearch(cmd *cobra.Command, args []string) error {
	pattern := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}

	notes, total, err := store.Search(pattern, searchFlagIgnoreCase, searchFlagMax)
	if err != nil {
		return err
	}

	if flagJSON {
		output := make([]map[string]interface{}, 0, len(notes))
		for _, n := range notes {
			output = append(output, noteJSON(n))
		}
		return outputJSON(map[string]interface{}{
			"notes":         output,
			"total_matches": total,
		})
	}

	if len(notes) == 0 {
		if !flagQuiet {
			fmt.Println("No matches")
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

	if !flagQuiet && total > len(notes) {
		fmt.Printf("Showing %d of %d matches\n", len(notes), total)
	}

	return nil
}
