package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchNotesHandler does a case-insensitive substring search over note
// titles and bodies. No matches is an empty result, not an error.
func (c *Client) SearchNotesHandler(ctx context.Context, req *mcp.CallToolRequest, args SearchNotesArgs) (*mcp.CallToolResult, SearchNotesResult, error) {
	if args.Query == "" {
		return nil, SearchNotesResult{}, validationf("query is required")
	}

	out, err := c.run.Run(ctx, searchScript(args.Query, args.Folder))
	if err != nil {
		return nil, SearchNotesResult{}, err
	}
	matches, err := parseMatches(out)
	if err != nil {
		return nil, SearchNotesResult{}, err
	}
	c.log.Debug().Str("query", args.Query).Str("folder", args.Folder).Int("count", len(matches)).Msg("search_notes")

	result := SearchNotesResult{Matches: matches, Count: len(matches)}
	if len(matches) == 0 {
		return textResult(fmt.Sprintf("No matches for %q", args.Query)), result, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d matches for %q:\n\n", len(matches), args.Query)
	for _, m := range matches {
		fmt.Fprintf(&sb, "%s (%s): %s\n", m.Title, m.Folder, displaySnippet(m.Snippet))
	}
	return textResult(sb.String()), result, nil
}

// displaySnippet flattens a body snippet onto one line for the text view.
// The structured result keeps the snippet as-is.
func displaySnippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 80 {
		s = s[:80] + "..."
	}
	return s
}
