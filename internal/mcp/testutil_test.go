package mcp

import (
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// setupTestEnvironment points the server at a store file inside a temp
// directory and clears the transport environment.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	storePath := filepath.Join(t.TempDir(), "notes.json")
	t.Setenv("NOTES_PATH", storePath)
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")

	return storePath
}

// newTestRequest creates a CallToolRequest for testing
func newTestRequest(arguments map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: arguments,
		},
	}
}

// getResultText extracts the text from a CallToolResult for testing
func getResultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := mcp.AsTextContent(result.Content[0]); ok {
		return textContent.Text
	}
	return ""
}
