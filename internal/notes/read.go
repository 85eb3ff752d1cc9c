package notes

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReadNoteHandler fetches a note's full body and timestamps by whole title.
// When folder is omitted and the title exists in several folders, the first
// note in host enumeration order is returned; narrowing is the caller's job.
func (c *Client) ReadNoteHandler(ctx context.Context, req *mcp.CallToolRequest, args ReadNoteArgs) (*mcp.CallToolResult, Note, error) {
	if args.Title == "" {
		return nil, Note{}, validationf("title is required")
	}

	out, err := c.run.Run(ctx, readScript(args.Title, args.Folder))
	if err != nil {
		return nil, Note{}, err
	}
	if marker, ok := scriptMarker(out); ok {
		switch marker {
		case markerNotFound:
			return nil, Note{}, notFoundf("no note titled %q%s", args.Title, inFolder(args.Folder))
		default:
			return nil, Note{}, executionf("unexpected script marker %q", marker)
		}
	}

	note, err := parseNote(out)
	if err != nil {
		return nil, Note{}, err
	}
	c.log.Debug().Str("title", note.Title).Str("folder", note.Folder).Int("body_bytes", len(note.Body)).Msg("read_note")

	return textResult(note.Body), *note, nil
}

// inFolder renders the optional folder qualifier for error messages.
func inFolder(folder string) string {
	if folder == "" {
		return ""
	}
	return " in folder \"" + folder + "\""
}
