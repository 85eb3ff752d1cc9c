package notes

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/zach-snell/apple-notes-mcp/internal/logging"
)

// Client is the adapter between tool calls and Notes.app. It holds no note
// state: every operation is one synchronous automation call against the live
// host store.
type Client struct {
	run           Runner
	account       string
	defaultFolder string
	log           zerolog.Logger
}

// Options configure a Client. The zero value talks to Notes.app through
// osascript with no account scoping.
type Options struct {
	// Account scopes note creation to a named account (for example
	// "iCloud"). Reads always span all accounts.
	Account string
	// DefaultFolder is used by create_note when the caller gives no
	// folder. Empty means the host's own default folder.
	DefaultFolder string
	// Runner overrides the osascript subprocess, used by tests.
	Runner Runner
	// Logger overrides the default component logger.
	Logger *zerolog.Logger
}

// New creates a Client.
func New(opts Options) *Client {
	log := logging.New("notes")
	if opts.Logger != nil {
		log = *opts.Logger
	}
	run := opts.Runner
	if run == nil {
		run = NewOsascriptRunner(log)
	}
	return &Client{
		run:           run,
		account:       opts.Account,
		defaultFolder: opts.DefaultFolder,
		log:           log,
	}
}

// textResult wraps plain text as a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
