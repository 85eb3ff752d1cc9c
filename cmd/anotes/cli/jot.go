package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/zach-snell/apple-notes-mcp/internal/notes"
)

var jotCmd = &cobra.Command{
	Use:   "jot [optional entry text]",
	Short: "Get today's dated note, optionally appending text to it",
	Long: `Retrieve or create a note titled with today's date (YYYY-MM-DD).

If text is provided as arguments, it is appended to the note as a bullet.
This makes for a lightning-fast quick-capture tool from your terminal.

Examples:
  anotes jot
  anotes jot "Just had a great idea for the new project"`,
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient(cmd)
		ctx := context.Background()

		title := time.Now().Format("2006-01-02")
		folder, _ := cmd.Flags().GetString("folder")
		if folder == "" {
			folder = loadConfig().JotFolder
		}
		entry := strings.Join(args, " ")

		res, _, err := c.ReadNoteHandler(ctx, nil, notes.ReadNoteArgs{Title: title, Folder: folder})
		switch {
		case err == nil && entry == "":
			// Just show today's note.
			fmt.Println(res.Content[0].(*mcp.TextContent).Text)
			return

		case err == nil:
			appendRes, _, err := c.EditNoteHandler(ctx, nil, notes.EditNoteArgs{
				Title:  title,
				Folder: folder,
				Body:   "\n- " + entry,
				Append: true,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Appending to %s failed: %v\n", title, err)
				os.Exit(1)
			}
			fmt.Println(appendRes.Content[0].(*mcp.TextContent).Text)
			return

		case notes.IsNotFound(err):
			body := ""
			if entry != "" {
				body = "- " + entry
			}
			createRes, _, err := c.CreateNoteHandler(ctx, nil, notes.CreateNoteArgs{
				Title:  title,
				Body:   body,
				Folder: folder,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Creating %s failed: %v\n", title, err)
				os.Exit(1)
			}
			fmt.Println(createRes.Content[0].(*mcp.TextContent).Text)
			return

		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(jotCmd)
	jotCmd.Flags().String("folder", "", "Folder for dated notes (default from config)")
}
