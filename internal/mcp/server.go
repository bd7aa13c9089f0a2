package mcp

import (
	"fmt"

	"github.com/Fuabioo/notesmcp/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "mcp-notes"
	serverVersion = "0.1.0"
)

// Server wraps the MCP server with the note store and transport config.
type Server struct {
	mcp   *server.MCPServer
	store *core.Store
	cfg   *core.Config
}

// NewServer creates and configures the MCP server with all note tools
// registered, reading configuration from the environment.
func NewServer() (*Server, error) {
	cfg, err := core.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewServerWithConfig(cfg)
}

// NewServerWithConfig creates the MCP server against an explicit config.
func NewServerWithConfig(cfg *core.Config) (*Server, error) {
	store, err := core.OpenStore(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open note store: %w", err)
	}

	s := &Server{
		store: store,
		cfg:   cfg,
	}

	s.mcp = server.NewMCPServer(serverName, serverVersion)
	s.registerTools()

	return s, nil
}

// registerTools registers all note tools on the MCP server.
func (s *Server) registerTools() {
	// list_notes
	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("Lists notes with minimal metadata, sorted by updated_at descending"),
	), s.handleListNotes)

	// read_notes
	s.mcp.AddTool(mcp.NewTool("read_notes",
		mcp.WithDescription("Reads full notes by ID, or every note when all=true"),
		mcp.WithArray("ids",
			mcp.Description("Note IDs to read; ignored when all=true"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithBoolean("all",
			mcp.Description("Read every note in the store (default: false)")),
	), s.handleReadNotes)

	// add_note
	s.mcp.AddTool(mcp.NewTool("add_note",
		mcp.WithDescription("Creates a new note and returns it"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Note title; leading/trailing whitespace is trimmed")),
		mcp.WithString("body",
			mcp.Description("Note body (default: empty)")),
	), s.handleAddNote)

	// update_note
	s.mcp.AddTool(mcp.NewTool("update_note",
		mcp.WithDescription("Updates a note's title and/or body and bumps updated_at"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("ID of the note to update")),
		mcp.WithString("title",
			mcp.Description("New title; omit to keep the current one")),
		mcp.WithString("body",
			mcp.Description("New body; omit to keep the current one")),
	), s.handleUpdateNote)

	// delete_note
	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("Deletes a note by ID"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("ID of the note to delete")),
	), s.handleDeleteNote)

	// search_notes
	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Searches note titles and bodies with a regular expression"),
		mcp.WithString("pattern",
			mcp.Required(),
			mcp.Description("Search pattern (regex)")),
		mcp.WithBoolean("ignore_case",
			mcp.Description("Case-insensitive search (default: false)")),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum notes to return (default: 50)")),
	), s.handleSearchNotes)
}
