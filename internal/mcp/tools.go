package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Fuabioo/notesmcp/internal/core"
	"github.com/Fuabioo/notesmcp/internal/errors"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleListNotes implements list_notes: lists note metadata sorted by
// updated_at descending.
func (s *Server) handleListNotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes := s.store.List()

	responseNotes := make([]map[string]interface{}, 0, len(notes))
	for _, n := range notes {
		responseNotes = append(responseNotes, noteMeta(n))
	}

	response := map[string]interface{}{
		"notes": responseNotes,
	}

	return jsonResult(response), nil
}

// handleReadNotes implements read_notes: reads full notes by ID or all of
// them when all=true.
func (s *Server) handleReadNotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := request.GetBool("all", false)
	ids := request.GetStringSlice("ids", nil)

	var notes []*core.Note
	if all {
		notes = s.store.All()
	} else {
		notes = s.store.GetMany(ids)
	}

	responseNotes := make([]map[string]interface{}, 0, len(notes))
	for _, n := range notes {
		responseNotes = append(responseNotes, noteFull(n))
	}

	response := map[string]interface{}{
		"notes": responseNotes,
	}

	return jsonResult(response), nil
}

// handleAddNote implements add_note: creates a note and returns it.
func (s *Server) handleAddNote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return errorResult(errors.CodeInvalidParams, "title is required"), nil
	}
	body := request.GetString("body", "")

	note, err := s.store.Add(title, body)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(noteFull(note)), nil
}

// handleUpdateNote implements update_note: applies optional title/body
// changes and bumps updated_at.
func (s *Server) handleUpdateNote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return errorResult(errors.CodeInvalidParams, "id is required"), nil
	}

	// Distinguish absent fields from explicitly empty ones
	args := request.GetArguments()
	var title, body *string
	if raw, ok := args["title"]; ok {
		str, ok := raw.(string)
		if !ok {
			return errorResult(errors.CodeInvalidParams, "title must be a string"), nil
		}
		title = &str
	}
	if raw, ok := args["body"]; ok {
		str, ok := raw.(string)
		if !ok {
			return errorResult(errors.CodeInvalidParams, "body must be a string"), nil
		}
		body = &str
	}

	note, err := s.store.Update(id, title, body)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(noteFull(note)), nil
}

// handleDeleteNote implements delete_note: removes a note by ID.
func (s *Server) handleDeleteNote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return errorResult(errors.CodeInvalidParams, "id is required"), nil
	}

	if err := s.store.Delete(id); err != nil {
		return mcpErrorResult(err), nil
	}

	response := map[string]interface{}{
		"deleted": true,
		"id":      id,
	}

	return jsonResult(response), nil
}

// handleSearchNotes implements search_notes: regex search over titles and
// bodies.
func (s *Server) handleSearchNotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := request.RequireString("pattern")
	if err != nil {
		return errorResult(errors.CodeInvalidParams, "pattern is required"), nil
	}
	ignoreCase := request.GetBool("ignore_case", false)
	maxResults := request.GetInt("max_results", 50)

	notes, total, err := s.store.Search(pattern, ignoreCase, maxResults)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	responseNotes := make([]map[string]interface{}, 0, len(notes))
	for _, n := range notes {
		responseNotes = append(responseNotes, noteFull(n))
	}

	response := map[string]interface{}{
		"notes":         responseNotes,
		"total_matches": total,
		"truncated":     total > len(notes),
	}

	return jsonResult(response), nil
}

// Helper functions

// noteMeta returns the metadata view of a note used by list_notes.
func noteMeta(n *core.Note) map[string]interface{} {
	return map[string]interface{}{
		"id":         n.ID,
		"title":      n.Title,
		"created_at": core.FormatTime(n.CreatedAt),
		"updated_at": core.FormatTime(n.UpdatedAt),
	}
}

// noteFull returns the full view of a note including its body.
func noteFull(n *core.Note) map[string]interface{} {
	return map[string]interface{}{
		"id":         n.ID,
		"title":      n.Title,
		"body":       n.Body,
		"created_at": core.FormatTime(n.CreatedAt),
		"updated_at": core.FormatTime(n.UpdatedAt),
	}
}

// mcpErrorResult converts a notesmcp error to an MCP error result.
func mcpErrorResult(err error) *mcp.CallToolResult {
	code := errors.Code(err)
	if code == "" {
		code = "INTERNAL_ERROR"
	}

	return errorResult(code, err.Error())
}

// errorResult creates an MCP error result.
func errorResult(code, message string) *mcp.CallToolResult {
	errorData := map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}

	jsonBytes, err := json.Marshal(errorData)
	if err != nil {
		// Fallback to simple text
		return mcp.NewToolResultText(fmt.Sprintf("Error: %s - %s", code, message))
	}

	return mcp.NewToolResultText(string(jsonBytes))
}

// jsonResult creates an MCP success result from a JSON-serializable object.
func jsonResult(data interface{}) *mcp.CallToolResult {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return errorResult("INTERNAL_ERROR", fmt.Sprintf("failed to marshal response: %s", err))
	}

	return mcp.NewToolResultText(string(jsonBytes))
}
