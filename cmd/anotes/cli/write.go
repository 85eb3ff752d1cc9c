package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/zach-snell/apple-notes-mcp/internal/notes"
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new note",
	Long: `Create a note with the given title. The body comes from --body, or
from stdin when piped. Without --folder the note goes to the configured
default folder, or wherever the host puts new notes.

Examples:
  anotes create "Grocery List" --body "milk, eggs" --folder Shopping
  pbpaste | anotes create "Clipboard dump"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient(cmd)
		ctx := context.Background()

		title := strings.Join(args, " ")
		folder, _ := cmd.Flags().GetString("folder")
		body := readBody(cmd)

		res, _, err := c.CreateNoteHandler(ctx, nil, notes.CreateNoteArgs{
			Title:  title,
			Body:   body,
			Folder: folder,
		})
		if err != nil {
			if notes.IsFolderNotFound(err) {
				fmt.Fprintf(os.Stderr, "No folder named %q. Try 'anotes folders'.\n", folder)
			} else {
				fmt.Fprintf(os.Stderr, "Create failed: %v\n", err)
			}
			os.Exit(1)
		}
		fmt.Println(res.Content[0].(*mcp.TextContent).Text)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [title]",
	Short: "Replace or append to a note's body",
	Long: `Rewrite an existing note. The new content comes from --body, or
from stdin when piped. By default the body is replaced; --append
concatenates onto it instead.

Examples:
  anotes edit "Grocery List" --body "milk, eggs, bread"
  anotes edit "Grocery List" --append --body "
- butter"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient(cmd)
		ctx := context.Background()

		title := strings.Join(args, " ")
		folder, _ := cmd.Flags().GetString("folder")
		appendBody, _ := cmd.Flags().GetBool("append")
		body := readBody(cmd)

		res, _, err := c.EditNoteHandler(ctx, nil, notes.EditNoteArgs{
			Title:  title,
			Body:   body,
			Folder: folder,
			Append: appendBody,
		})
		if err != nil {
			if notes.IsNotFound(err) {
				fmt.Fprintf(os.Stderr, "No note titled %q\n", title)
			} else {
				fmt.Fprintf(os.Stderr, "Edit failed: %v\n", err)
			}
			os.Exit(1)
		}
		fmt.Println(res.Content[0].(*mcp.TextContent).Text)
	},
}

// readBody takes the note body from --body, or from stdin when input is
// piped in and the flag is absent.
func readBody(cmd *cobra.Command) string {
	body, _ := cmd.Flags().GetString("body")
	if body != "" || isatty.IsTerminal(os.Stdin.Fd()) {
		return body
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Reading stdin failed: %v\n", err)
		os.Exit(1)
	}
	return string(data)
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	createCmd.Flags().String("body", "", "Body text for the note")
	createCmd.Flags().String("folder", "", "Folder to create the note in")
	editCmd.Flags().String("body", "", "New body text")
	editCmd.Flags().String("folder", "", "Folder holding the note")
	editCmd.Flags().Bool("append", false, "Concatenate onto the existing body instead of replacing it")
}
