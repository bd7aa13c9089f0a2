package cli

import (
	"fmt"
	"os"

	"github.com/Fuabioo/notesmcp/internal/core"
	"github.com/spf13/cobra"
)

var readFlagAll bool

var readCmd = &cobra.Command{
	Use:   "read [<id>...]",
	Short: "Read notes by ID",
	Long: `Reads full notes by ID and prints them to stdout.

A single ID prints the note body only, for piping. Multiple IDs or
--all print each note with a header. Unknown IDs are skipped when
reading more than one note.`,
	RunE: runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readFlagAll, "all", false, "Read every note in the store")
}

func runRead(cmd *cobra.Command, args []string) error {
	if !readFlagAll && len(args) == 0 {
		return fmt.Errorf("provide note IDs or --all")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	var notes []*core.Note
	switch {
	case readFlagAll:
		notes = store.All()
	case len(args) == 1:
		note, err := store.Get(args[0])
		if err != nil {
			return err
		}
		notes = []*core.Note{note}
	default:
		notes = store.GetMany(args)
	}

	if flagJSON {
		output := make([]map[string]interface{}, 0, len(notes))
		for _, n := range notes {
			output = append(output, noteJSON(n))
		}
		return outputJSON(output)
	}

	// Single explicit ID: body only, pipe-friendly
	if !readFlagAll && len(args) == 1 {
		fmt.Fprint(os.Stdout, notes[0].Body)
		if notes[0].Body != "" && notes[0].Body[len(notes[0].Body)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}

	for i, n := range notes {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s  %s  (updated %s)\n", shortID(n.ID), n.Title, core.FormatTime(n.UpdatedAt))
		if n.Body != "" {
			fmt.Println(n.Body)
		}
	}

	return nil
}
