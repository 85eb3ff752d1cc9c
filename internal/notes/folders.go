package notes

import (
	"context"
	"strconv"
	"strings"
)

// Folders enumerates every folder in the host, across accounts. Used by the
// CLI and by health checks; not exposed as a tool.
func (c *Client) Folders(ctx context.Context) ([]Folder, error) {
	out, err := c.run.Run(ctx, foldersScript())
	if err != nil {
		return nil, err
	}
	return parseFolders(out)
}

// Accounts enumerates every Notes account by name.
func (c *Client) Accounts(ctx context.Context) ([]string, error) {
	out, err := c.run.Run(ctx, accountsScript())
	if err != nil {
		return nil, err
	}
	return parseNames(out)
}

// NoteCount returns the total number of notes. Cheap probe that exercises
// the whole automation path, used by the doctor command.
func (c *Client) NoteCount(ctx context.Context) (int, error) {
	out, err := c.run.Run(ctx, countScript())
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, executionf("unexpected count output %q", out)
	}
	return n, nil
}
