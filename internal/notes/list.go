package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListNotesHandler lists all notes, optionally limited to one folder. A
// folder that does not exist yields an empty listing, not an error.
func (c *Client) ListNotesHandler(ctx context.Context, req *mcp.CallToolRequest, args ListNotesArgs) (*mcp.CallToolResult, ListNotesResult, error) {
	out, err := c.run.Run(ctx, listScript(args.Folder))
	if err != nil {
		return nil, ListNotesResult{}, err
	}
	notes, err := parseSummaries(out)
	if err != nil {
		return nil, ListNotesResult{}, err
	}
	c.log.Debug().Str("folder", args.Folder).Int("count", len(notes)).Msg("list_notes")

	result := ListNotesResult{Notes: notes, Count: len(notes)}
	if len(notes) == 0 {
		return textResult("No notes found"), result, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d notes:\n\n", len(notes))
	for _, n := range notes {
		fmt.Fprintf(&sb, "%s (%s, modified %s)\n", n.Title, n.Folder, n.Modified.Format(stampLayout))
	}
	return textResult(sb.String()), result, nil
}
