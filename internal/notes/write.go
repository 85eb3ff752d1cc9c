package notes

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateNoteHandler makes a new note. Duplicate titles are allowed, the host
// permits them. With no folder given the note lands in the configured
// default folder, or the host's own default when none is configured.
func (c *Client) CreateNoteHandler(ctx context.Context, req *mcp.CallToolRequest, args CreateNoteArgs) (*mcp.CallToolResult, WriteResult, error) {
	if args.Title == "" {
		return nil, WriteResult{}, validationf("title is required")
	}

	folder := args.Folder
	if folder == "" {
		folder = c.defaultFolder
	}

	out, err := c.run.Run(ctx, createScript(args.Title, args.Body, folder, c.account))
	if err != nil {
		return nil, WriteResult{}, err
	}
	if marker, ok := scriptMarker(out); ok {
		switch marker {
		case markerFolderNotFound:
			return nil, WriteResult{}, folderNotFoundf("no folder named %q", folder)
		default:
			return nil, WriteResult{}, executionf("unexpected script marker %q", marker)
		}
	}

	title, createdIn, err := parseAck(out)
	if err != nil {
		return nil, WriteResult{}, err
	}
	c.log.Debug().Str("title", title).Str("folder", createdIn).Msg("create_note")

	result := WriteResult{Title: title, Folder: createdIn}
	return textResult(fmt.Sprintf("Created %q in %s", title, createdIn)), result, nil
}

// EditNoteHandler rewrites an existing note's body. The default replaces the
// body outright; append concatenates the new content onto the old body. The
// note must already exist.
func (c *Client) EditNoteHandler(ctx context.Context, req *mcp.CallToolRequest, args EditNoteArgs) (*mcp.CallToolResult, WriteResult, error) {
	if args.Title == "" {
		return nil, WriteResult{}, validationf("title is required")
	}

	out, err := c.run.Run(ctx, editScript(args.Title, args.Body, args.Folder, args.Append))
	if err != nil {
		return nil, WriteResult{}, err
	}
	if marker, ok := scriptMarker(out); ok {
		switch marker {
		case markerNotFound:
			return nil, WriteResult{}, notFoundf("no note titled %q%s", args.Title, inFolder(args.Folder))
		default:
			return nil, WriteResult{}, executionf("unexpected script marker %q", marker)
		}
	}

	title, folder, err := parseAck(out)
	if err != nil {
		return nil, WriteResult{}, err
	}
	c.log.Debug().Str("title", title).Str("folder", folder).Bool("append", args.Append).Msg("edit_note")

	result := WriteResult{Title: title, Folder: folder}
	verb := "Updated"
	if args.Append {
		verb = "Appended to"
	}
	return textResult(fmt.Sprintf("%s %q in %s", verb, title, folder)), result, nil
}
