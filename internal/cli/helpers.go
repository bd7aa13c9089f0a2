package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fuabioo/notesmcp/internal/core"
	"github.com/Fuabioo/notesmcp/internal/errors"
	"golang.org/x/term"
)

// loadConfig loads the configuration from the environment, applying the
// --store flag override.
func loadConfig() (*core.Config, error) {
	cfg, err := core.LoadConfig()
	if err != nil {
		return nil, err
	}

	if flagStore != "" {
		abs, err := filepath.Abs(flagStore)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve store path: %w", err)
		}
		cfg.StorePath = abs
	}

	return cfg, nil
}

// openStore opens the note store for CLI commands.
func openStore() (*core.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return core.OpenStore(cfg.StorePath)
}

// outputJSON marshals and prints JSON to stdout.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// noteJSON returns the full JSON representation of a note.
func noteJSON(n *core.Note) map[string]interface{} {
	return map[string]interface{}{
		"id":         n.ID,
		"title":      n.Title,
		"body":       n.Body,
		"created_at": core.FormatTime(n.CreatedAt),
		"updated_at": core.FormatTime(n.UpdatedAt),
	}
}

// isTerminal checks if the given file descriptor is a TTY.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// getExitCode maps error codes to CLI exit codes.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}

	code := errors.Code(err)
	switch code {
	case errors.CodeNoteNotFound:
		return 4 // Note not found
	case errors.CodeTitleRequired, errors.CodeInvalidParams,
		errors.CodeInvalidPattern, errors.CodeInvalidConfig:
		return 2 // Invalid input
	case "":
		// Not a notesmcp error - could be usage error
		return 1 // General error
	default:
		return 1 // General error
	}
}

// printError prints an error to stderr with appropriate formatting.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// confirmPrompt prompts the user for a yes/no confirmation.
// Returns true if user confirms, false otherwise.
func confirmPrompt(message string) bool {
	if !isTerminal(os.Stdin) {
		return false
	}

	fmt.Fprintf(os.Stderr, "%s (y/N): ", message)

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// shortID truncates a note id for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
