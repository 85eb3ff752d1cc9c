// Package server assembles the MCP server exposing Apple Notes tools.
package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zach-snell/apple-notes-mcp/internal/notes"
)

// Name and Version identify the server to MCP clients.
const (
	Name    = "apple-notes-mcp"
	Version = "0.2.0"
)

// Options configure the server.
type Options struct {
	// Account scopes note creation to a named Notes account.
	Account string
	// DefaultFolder receives created notes when the caller names none.
	DefaultFolder string
	// ReadOnly withholds create_note and edit_note.
	ReadOnly bool
	// Runner overrides the adapter's osascript subprocess, used by tests.
	Runner notes.Runner
}

// New creates an MCP server with the notes tools registered.
func New(opts Options) *mcp.Server {
	client := notes.New(notes.Options{
		Account:       opts.Account,
		DefaultFolder: opts.DefaultFolder,
		Runner:        opts.Runner,
	})

	s := mcp.NewServer(&mcp.Implementation{Name: Name, Version: Version}, nil)
	registerTools(s, client, opts.ReadOnly)
	return s
}

func registerTools(s *mcp.Server, c *notes.Client, readOnly bool) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_notes",
		Description: "List notes, all folders or one, with folder and timestamps",
	}, c.ListNotesHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_notes",
		Description: "Case-insensitive substring search over note titles and bodies",
	}, c.SearchNotesHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "read_note",
		Description: "Read a note's full body and timestamps by exact title",
	}, c.ReadNoteHandler)

	if readOnly {
		return
	}

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_note",
		Description: "Create a new note, in a named folder or the default one",
	}, c.CreateNoteHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "edit_note",
		Description: "Replace a note's body, or append to it with append=true",
	}, c.EditNoteHandler)
}
